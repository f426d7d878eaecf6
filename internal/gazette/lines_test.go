package gazette

import (
	"fmt"
	"strings"
	"testing"
)

func TestJoinLogicalLinesSingleLineEntries(t *testing.T) {
	text := "1234 Single line entry....... 52724 3"
	got := JoinLogicalLines(text)
	if len(got) != 1 {
		t.Fatalf("got %d lines, want 1", len(got))
	}
	if !strings.Contains(got[0], "Single line entry") {
		t.Errorf("line = %q", got[0])
	}
}

func TestJoinLogicalLinesWrappedEntry(t *testing.T) {
	text := "1234 First line\ncontinues here....... 52724 3\n5678 Second line....... 52724 5"
	got := JoinLogicalLines(text)
	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(got), got)
	}
	if !strings.Contains(got[0], "First line continues here") {
		t.Errorf("first = %q", got[0])
	}
	if !strings.Contains(got[1], "Second line") {
		t.Errorf("second = %q", got[1])
	}
}

func TestJoinLogicalLinesIndependentEntriesStayIndependent(t *testing.T) {
	const n = 7
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%d Notice number %d text..... 52724 %d\n", 3200+i, 3200+i, i+2)
	}
	got := JoinLogicalLines(b.String())
	if len(got) != n {
		t.Fatalf("got %d lines, want %d", len(got), n)
	}
	for i, line := range got {
		want := fmt.Sprintf("%d Notice number %d text..... 52724 %d", 3200+i, 3200+i, i+2)
		if line != want {
			t.Errorf("line %d = %q, want %q", i, line, want)
		}
	}
}

func TestJoinLogicalLinesWhitespaceNormalized(t *testing.T) {
	text := "1234   Spaced   out\t entry.....   52724   3"
	got := JoinLogicalLines(text)
	if len(got) != 1 {
		t.Fatalf("got %d lines, want 1", len(got))
	}
	if got[0] != "1234 Spaced out entry..... 52724 3" {
		t.Errorf("line = %q", got[0])
	}
}

func TestJoinLogicalLinesYearContinuationAbsorbed(t *testing.T) {
	// The second raw line starts with a 4-digit year and would look like a
	// new entry, but the long dot run and lack of text mark it as the tail
	// of the previous row.
	text := "3228 Draft National Policy for comment, 23 May\n" +
		"2025 ................................. 52724 3\n" +
		"3229 Next notice..... 52724 7"
	got := JoinLogicalLines(text)
	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(got), got)
	}
	if !strings.Contains(got[0], "Draft National Policy") || !strings.Contains(got[0], "2025 ") {
		t.Errorf("first = %q", got[0])
	}
	if !strings.Contains(got[1], "Next notice") {
		t.Errorf("second = %q", got[1])
	}
}

func TestJoinLogicalLinesYearStartIsNewEntryWhenTextual(t *testing.T) {
	// A line starting with a 4-digit number but carrying real words is a
	// genuine new entry, not a continuation.
	text := "3228 First entry without terminator\n" +
		"2025 Regulations regarding administrative matters..... 52724 9"
	got := JoinLogicalLines(text)
	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(got), got)
	}
}

func TestJoinLogicalLinesNoTerminatorLinesAreContinuations(t *testing.T) {
	text := "1234 Entry that never terminates\nplain words\nmore plain words"
	got := JoinLogicalLines(text)
	if len(got) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(got), got)
	}
	if got[0] != "1234 Entry that never terminates plain words more plain words" {
		t.Errorf("line = %q", got[0])
	}
}

func TestJoinLogicalLinesIgnoresLeadingNoise(t *testing.T) {
	text := "Contents Gazette Page No. No. No.\nGENERAL NOTICES\n1234 Real entry..... 52724 3"
	got := JoinLogicalLines(text)
	if len(got) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(got), got)
	}
}
