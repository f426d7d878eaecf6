package gazette

import (
	"errors"
	"testing"
)

func TestParseEntry(t *testing.T) {
	line := "1234 Road Accident Fund Act (56/1996): Notice text....... 52724 3"
	entry, ok := ParseEntry(line)
	if !ok {
		t.Fatalf("ParseEntry(%q) did not match", line)
	}
	if entry.NoticeNumber != 1234 {
		t.Errorf("notice number = %d, want 1234", entry.NoticeNumber)
	}
	if entry.LawDescription != "Road Accident Fund" {
		t.Errorf("law description = %q", entry.LawDescription)
	}
	if entry.LawNumber == nil || *entry.LawNumber != 56 {
		t.Errorf("law number = %v, want 56", entry.LawNumber)
	}
	if entry.LawYear == nil || *entry.LawYear != 1996 {
		t.Errorf("law year = %v, want 1996", entry.LawYear)
	}
	if entry.GazetteNumber != 52724 {
		t.Errorf("gazette number = %d, want 52724", entry.GazetteNumber)
	}
	if entry.PageNumber != 3 {
		t.Errorf("page number = %d, want 3", entry.PageNumber)
	}
	if entry.NoticeDescription != "Notice text" {
		t.Errorf("notice description = %q", entry.NoticeDescription)
	}
}

func TestParseEntryRejectsMalformedRows(t *testing.T) {
	lines := []string{
		"Invalid line format without proper structure",
		"1234 no dot leaders 52724 3",
		"1234 Gibberish row with no act phrase....... 52724 3",
	}
	for _, line := range lines {
		if _, ok := ParseEntry(line); ok {
			t.Errorf("ParseEntry(%q) matched, want reject", line)
		}
	}
}

func TestParseGazetteDocument(t *testing.T) {
	text := "Header text\n" +
		"1234 Road Accident Fund Act (56/1996): First notice....... 52724 3\n" +
		"5678 Skills Development Act (97/1998): Second notice....... 52724 5"
	entries := ParseGazetteDocument(text)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].NoticeNumber != 1234 || entries[1].NoticeNumber != 5678 {
		t.Errorf("notice numbers = %d, %d", entries[0].NoticeNumber, entries[1].NoticeNumber)
	}
}

func TestFindEntryFirstOccurrenceWins(t *testing.T) {
	// Bilingual gazettes repeat the same notice number; the earliest listed
	// row is the one reported.
	entries := []ParsedEntry{
		{NoticeNumber: 3228, NoticeDescription: "English text", GazetteNumber: 52724},
		{NoticeNumber: 3228, NoticeDescription: "Afrikaanse teks", GazetteNumber: 52724},
	}
	entry, err := findEntry(entries, 3228)
	if err != nil {
		t.Fatalf("findEntry: %v", err)
	}
	if entry.NoticeDescription != "English text" {
		t.Errorf("description = %q, want first occurrence", entry.NoticeDescription)
	}
}

func TestFindEntryNotFound(t *testing.T) {
	_, err := findEntry([]ParsedEntry{{NoticeNumber: 3228}}, 9999)
	var enf *EntryNotFoundError
	if !errors.As(err, &enf) {
		t.Fatalf("err = %v, want EntryNotFoundError", err)
	}
	if enf.NoticeNumber != 9999 {
		t.Errorf("notice number = %d, want 9999", enf.NoticeNumber)
	}
}

func TestParseRListDocument(t *testing.T) {
	text := "header\n" +
		"R. 101 Customs and Excise Act (91/1964): Amendment of Schedule No. 1....... 52724 14\n" +
		"R. 102 Income Tax Act (58/1962): Rate notice....... 52724 18"
	entries := ParseRListDocument(text)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].NoticeNumber != 101 {
		t.Errorf("first notice number = %d, want 101", entries[0].NoticeNumber)
	}
	if entries[0].LawDescription != "Customs and Excise" {
		t.Errorf("first law = %q", entries[0].LawDescription)
	}
	if entries[1].PageNumber != 18 {
		t.Errorf("second page = %d, want 18", entries[1].PageNumber)
	}
}

func TestDecodeRListActWithoutStructuredRows(t *testing.T) {
	// R-list pages sometimes drop the trailing gazette/page pair; the act
	// still comes out of the raw row content.
	text := "R. 101 Customs and Excise Act (91/1964): Amendment of Schedule\n" +
		"R. 102 Income Tax Act (58/1962): Rate notice"
	act, err := DecodeRListAct(text, 101)
	if err != nil {
		t.Fatalf("DecodeRListAct: %v", err)
	}
	assertAct(t, act, actValue("Customs and Excise", 91, 1964))
}

func TestDecodeRListActNotFound(t *testing.T) {
	_, err := DecodeRListAct("R. 101 Row with no act phrase at all", 101)
	var anf *ActNotFoundError
	if !errors.As(err, &anf) {
		t.Fatalf("err = %v, want ActNotFoundError", err)
	}
}
