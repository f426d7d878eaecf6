package bulletin

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/weekly-statutes/gazette-tracker/constants"
	"github.com/weekly-statutes/gazette-tracker/internal/gazette"
)

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func heritageNotice() gazette.Notice {
	return gazette.Notice{
		NoticeNumber:     3228,
		GazetteNumber:    52724,
		PublishDay:       23,
		PublishMonthName: "May",
		PublishYear:      2025,
		PageNumber:       intPtr(3),
		ISSN:             strPtr("1682-5845"),
		MajorType:        constants.GeneralNotice,
		MinorType:        "Department of Sports, Arts and Culture",
		Description:      "Draft National Policy Framework for Heritage Memorialisation published for comment",
	}
}

func weekBulletin(notices []gazette.Notice, issues []Issue) Bulletin {
	return Bulletin{
		Number:    21,
		Year:      2025,
		WeekStart: time.Date(2025, 5, 16, 0, 0, 0, 0, time.UTC),
		WeekEnd:   time.Date(2025, 5, 23, 0, 0, 0, 0, time.UTC),
		Notices:   notices,
		Issues:    issues,
	}
}

func TestCitation(t *testing.T) {
	got := Citation(heritageNotice())
	want := "(GenN 3228 in GG 52724 of 23 May 2025) (p3)"
	if got != want {
		t.Errorf("Citation = %q, want %q", got, want)
	}

	n := heritageNotice()
	n.PageNumber = nil
	if got := Citation(n); got != "(GenN 3228 in GG 52724 of 23 May 2025)" {
		t.Errorf("Citation without page = %q", got)
	}

	n.NoticeNumber = 6100
	n.MajorType = constants.GovernmentNotice
	if got := Citation(n); !strings.HasPrefix(got, "(GN 6100 ") {
		t.Errorf("government notice citation = %q", got)
	}
}

func TestRender(t *testing.T) {
	b := weekBulletin([]gazette.Notice{heritageNotice()}, nil)
	out := b.Render()

	wantLines := []string{
		"JUTA'S WEEKLY STATUTES BULLETIN",
		"(Bulletin 21 of 2025 based on Gazettes received during the week 16 to 23 May 2025)",
		"JUTA'S WEEKLY E-MAIL SERVICE",
		"ISSN 1682-5845",
		"PROCLAMATIONS AND NOTICES",
		"Department of Sports, Arts and Culture:",
		"Draft National Policy Framework for Heritage Memorialisation published for comment (GenN 3228 in GG 52724 of 23 May 2025) (p3)",
	}
	pos := 0
	for _, want := range wantLines {
		idx := strings.Index(out[pos:], want)
		if idx < 0 {
			t.Fatalf("output missing %q in order; got:\n%s", want, out)
		}
		pos += idx + len(want)
	}
	if strings.Contains(out, "TECHNICAL ISSUES") {
		t.Error("issues section rendered with no issues")
	}
}

func TestRenderGroupsByMinorType(t *testing.T) {
	first := heritageNotice()
	second := heritageNotice()
	second.NoticeNumber = 3230
	second.Description = "Another heritage notice"
	third := heritageNotice()
	third.NoticeNumber = 3231
	third.MinorType = "Department of Tourism"
	third.Description = "National Astro-Tourism Strategy published for implementation"

	out := weekBulletin([]gazette.Notice{first, third, second}, nil).Render()

	if strings.Count(out, "Department of Sports, Arts and Culture:") != 1 {
		t.Error("minor heading repeated")
	}
	sports := strings.Index(out, "Department of Sports, Arts and Culture:")
	tourism := strings.Index(out, "Department of Tourism:")
	if sports < 0 || tourism < 0 || sports > tourism {
		t.Errorf("headings out of first-appearance order: sports=%d tourism=%d", sports, tourism)
	}
}

func TestRenderIssuesSection(t *testing.T) {
	issues := []Issue{{GazetteNumber: 52725, NoticeNumber: 3240, Reason: "no act information found"}}
	out := weekBulletin([]gazette.Notice{heritageNotice()}, issues).Render()
	if !strings.Contains(out, "NOTICES WITH TECHNICAL ISSUES") {
		t.Fatal("issues section missing")
	}
	if !strings.Contains(out, "Notice 3240 in GG 52725: no act information found") {
		t.Errorf("issue line missing:\n%s", out)
	}
}

func TestWeekSpanAcrossMonths(t *testing.T) {
	b := Bulletin{
		Number:    1,
		Year:      2025,
		WeekStart: time.Date(2025, 5, 30, 0, 0, 0, 0, time.UTC),
		WeekEnd:   time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC),
	}
	out := b.Render()
	if !strings.Contains(out, "30 May to 6 June 2025") {
		t.Errorf("week span missing:\n%s", out)
	}
}

func TestExportXLSX(t *testing.T) {
	b := weekBulletin(
		[]gazette.Notice{heritageNotice()},
		[]Issue{{GazetteNumber: 52725, NoticeNumber: 3240, Reason: "no act information found"}},
	)
	data, err := b.ExportXLSX()
	if err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Notices")
	if err != nil {
		t.Fatalf("read notices sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("notice rows = %d, want header + 1", len(rows))
	}
	if rows[1][0] != "3228" || rows[1][1] != "52724" {
		t.Errorf("notice row = %v", rows[1])
	}
	if rows[1][3] != "GENERAL_NOTICE" {
		t.Errorf("major type cell = %q", rows[1][3])
	}

	issueRows, err := f.GetRows("Issues")
	if err != nil {
		t.Fatalf("read issues sheet: %v", err)
	}
	if len(issueRows) != 2 || issueRows[1][2] != "no act information found" {
		t.Errorf("issue rows = %v", issueRows)
	}
}
