package gazette

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/weekly-statutes/gazette-tracker/constants"
)

// OCR output of gazette 52724 with pages joined on newlines, as the scanner
// produces it.
const gazette52724 = `Government Gazette Staaiskoerant REPUBLIEKVANSUIDAFRIKA Vol: 719 23 2025 No: 52724 Mei ISSN 1682-5845 2 N:B:The Government Printing Works will not:be held responsible for:the quality of "Hard Copies" or "Electronic Files submitted for publication purposes AIDS HELPLINE: 0800-0123-22 Prevention is the cure May
2 No, 52724 IMPORTANT NOTICE: BE HELD RESPONSIBLE FOR ANY ERRORS THAT MIGHT OCCUR DUE To THE, SUBMISSION OF INCOMPLETE INCORRECT ILLEGIBLE COPY. Contents Gazette Page No. No. No. GENERAL NOTICES ALGEMENE KENNISGEWINGS Sports, Arts and Culture, Department of / Sport; Kuns en Kultuur; Departement van 3228 Draft National Policy on Heritage Memorialisation: Publication of notice to request public comment on-the draft National Policy Framework for Heritage Memorialisation _ 52724 3
government gazette staatskoerant general notices algemene kennisgewings department of sports, arts and culture Draft National Policy Framework for Heritage Memorialisation published for comment`

func passthroughSummarizer() Summarizer {
	return SummarizeFn(func(_ context.Context, text string) (string, error) {
		return text, nil
	})
}

func TestGetNoticeSingleShape(t *testing.T) {
	pages := strings.Split(gazette52724, "\n")
	notice, err := GetNotice(context.Background(), gazette52724, pages, 52724, 3228, passthroughSummarizer())
	if err != nil {
		t.Fatalf("GetNotice: %v", err)
	}

	if notice.NoticeNumber != 3228 {
		t.Errorf("notice number = %d, want 3228", notice.NoticeNumber)
	}
	if notice.GazetteNumber != 52724 {
		t.Errorf("gazette number = %d, want 52724", notice.GazetteNumber)
	}
	if notice.PublishDay != 23 {
		t.Errorf("publish day = %d, want 23", notice.PublishDay)
	}
	if notice.PublishMonthName != "May" {
		t.Errorf("publish month = %q, want May", notice.PublishMonthName)
	}
	if notice.PublishYear != 2025 {
		t.Errorf("publish year = %d, want 2025", notice.PublishYear)
	}
	if notice.PageNumber == nil || *notice.PageNumber != 3 {
		t.Errorf("page number = %v, want 3", notice.PageNumber)
	}
	if notice.ISSN == nil || *notice.ISSN != "1682-5845" {
		t.Errorf("issn = %v, want 1682-5845", notice.ISSN)
	}
	if notice.MajorType != constants.GeneralNotice {
		t.Errorf("major type = %v, want GENERAL_NOTICE", notice.MajorType)
	}
	if notice.MinorType != "Department of Sports, Arts and Culture" {
		t.Errorf("minor type = %q", notice.MinorType)
	}
	if !strings.Contains(notice.Description, "Draft National Policy on Heritage Memorialisation") {
		t.Errorf("description = %q", notice.Description)
	}
}

func TestGetNoticeExchangeControlMinorType(t *testing.T) {
	text := `Government Gazette Staatskoerant Vol: 718 16 2025 No: 52695 ISSN 1682-5845 May
No. 52695 4 appointment of an authorised dealer with limited authority for the purpose of Exchange Control Regulations`
	notice, err := GetNotice(context.Background(), text, strings.Split(text, "\n"), 52695, 3197, passthroughSummarizer())
	if err != nil {
		t.Fatalf("GetNotice: %v", err)
	}
	if notice.MinorType != "Currency and Exchanges ACT 9 of 1933" {
		t.Errorf("minor type = %q", notice.MinorType)
	}
	if notice.MajorType != constants.GeneralNotice {
		t.Errorf("major type = %v", notice.MajorType)
	}
}

func TestGetNoticeLongListShape(t *testing.T) {
	text := `Government Gazette Staatskoerant Vol: 719 23 2025 No: 52724 ISSN 1682-5845 May
3226 Marketing of Agricultural Products Act (47/1996): Levies on citrus fruit....... 52724 20
3227 Skills Development Act (97/1998): Learnership registrations....... 52724 24
3228 Road Accident Fund Act (56/1996): Adjustment of statutory limit....... 52724 30`
	notice, err := GetNotice(context.Background(), text, strings.Split(text, "\n"), 52724, 3228, passthroughSummarizer())
	if err != nil {
		t.Fatalf("GetNotice: %v", err)
	}
	if notice.PageNumber == nil || *notice.PageNumber != 30 {
		t.Errorf("page number = %v, want 30", notice.PageNumber)
	}
	if notice.MinorType != "Road Accident Fund ACT 56 of 1996" {
		t.Errorf("minor type = %q", notice.MinorType)
	}
	if notice.Description != "Adjustment of statutory limit" {
		t.Errorf("description = %q", notice.Description)
	}
}

func TestGetNoticeLongListEntryMissing(t *testing.T) {
	text := `Government Gazette Staatskoerant Vol: 719 23 2025 No: 52724 ISSN 1682-5845 May
3226 Marketing of Agricultural Products Act (47/1996): Levies....... 52724 20
3227 Skills Development Act (97/1998): Registrations....... 52724 24
3229 Road Accident Fund Act (56/1996): Adjustment....... 52724 30`
	_, err := GetNotice(context.Background(), text, nil, 52724, 3228, passthroughSummarizer())
	var enf *EntryNotFoundError
	if !errors.As(err, &enf) {
		t.Fatalf("err = %v, want EntryNotFoundError", err)
	}
}

func TestGetNoticeGazetteMismatch(t *testing.T) {
	text := `Government Gazette Staatskoerant Vol: 719 23 2025 No: 52724 ISSN 1682-5845 May
3226 Marketing of Agricultural Products Act (47/1996): Levies....... 52724 20
3227 Skills Development Act (97/1998): Registrations....... 52724 24
3228 Road Accident Fund Act (56/1996): Adjustment....... 52999 30`
	_, err := GetNotice(context.Background(), text, nil, 52724, 3228, passthroughSummarizer())
	var gme *GazetteMismatchError
	if !errors.As(err, &gme) {
		t.Fatalf("err = %v, want GazetteMismatchError", err)
	}
	if gme.Want != 52724 || gme.Got != 52999 {
		t.Errorf("mismatch = want %d got %d", gme.Want, gme.Got)
	}
}

func TestGetNoticeUnknownMajorType(t *testing.T) {
	_, err := GetNotice(context.Background(), gazette52724, nil, 52724, 5000, passthroughSummarizer())
	var ume *constants.UnknownMajorTypeError
	if !errors.As(err, &ume) {
		t.Fatalf("err = %v, want UnknownMajorTypeError", err)
	}
}

func TestGetNoticeActNotFound(t *testing.T) {
	text := `Government Gazette Staatskoerant Vol: 719 23 2025 No: 52724 ISSN 1682-5845 May
No. 52724 3 unknown department with no act sentence anywhere`
	_, err := GetNotice(context.Background(), text, strings.Split(text, "\n"), 52724, 3228, passthroughSummarizer())
	var anf *ActNotFoundError
	if !errors.As(err, &anf) {
		t.Fatalf("err = %v, want ActNotFoundError", err)
	}
}

func TestGetNoticeMissingMastheadFailsLoudly(t *testing.T) {
	_, err := GetNotice(context.Background(), "Invalid header text without expected format", nil, 52724, 3228, passthroughSummarizer())
	var de *DetectionError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want DetectionError", err)
	}
	if !IsDetectionFailure(err) {
		t.Error("IsDetectionFailure should report true for a DetectionError")
	}
}

func TestGetNoticeSummarizerApplied(t *testing.T) {
	summarizer := SummarizeFn(func(_ context.Context, text string) (string, error) {
		if !strings.Contains(text, "Draft National Policy") {
			t.Errorf("summarizer input = %q", text)
		}
		return "A short summary.", nil
	})
	notice, err := GetNotice(context.Background(), gazette52724, strings.Split(gazette52724, "\n"), 52724, 3228, summarizer)
	if err != nil {
		t.Fatalf("GetNotice: %v", err)
	}
	if notice.Description != "A short summary." {
		t.Errorf("description = %q", notice.Description)
	}
}

func TestIsDetectionFailure(t *testing.T) {
	if IsDetectionFailure(errors.New("dial tcp: connection refused")) {
		t.Error("plain errors are not detection failures")
	}
	for _, err := range []error{
		&DetectionError{Detector: "detect_day"},
		&ActNotFoundError{},
		&EntryNotFoundError{NoticeNumber: 1},
		&GazetteMismatchError{Want: 1, Got: 2},
		&constants.UnknownMajorTypeError{NoticeNumber: 1},
	} {
		if !IsDetectionFailure(err) {
			t.Errorf("IsDetectionFailure(%T) = false", err)
		}
	}
}
