// Package bulletin renders extracted notices into the weekly statutes
// bulletin: a plain-text body in the established house format and an XLSX
// workbook for the editorial pipeline.
package bulletin

import (
	"fmt"
	"strings"
	"time"

	"github.com/weekly-statutes/gazette-tracker/constants"
	"github.com/weekly-statutes/gazette-tracker/internal/gazette"
)

const (
	titleLine   = "JUTA'S WEEKLY STATUTES BULLETIN"
	serviceLine = "JUTA'S WEEKLY E-MAIL SERVICE"
)

// Issue records one notice that failed extraction. The batch generator
// collects these and keeps going; the bulletin prints them so an editor can
// chase the gaps by hand.
type Issue struct {
	GazetteNumber int
	NoticeNumber  int
	Reason        string
}

// Bulletin is one week's issue.
type Bulletin struct {
	Number    int // bulletin sequence within the year
	Year      int
	WeekStart time.Time
	WeekEnd   time.Time

	Notices []gazette.Notice
	Issues  []Issue
}

// Citation renders the parenthetical reference for a notice, e.g.
// "(GenN 3228 in GG 52724 of 23 May 2025) (p3)".
func Citation(n gazette.Notice) string {
	abbr := constants.Abbreviation(n.MajorType)
	cite := fmt.Sprintf("(%s %d in GG %d of %d %s %d)",
		abbr, n.NoticeNumber, n.GazetteNumber, n.PublishDay, n.PublishMonthName, n.PublishYear)
	if n.PageNumber != nil {
		cite += fmt.Sprintf(" (p%d)", *n.PageNumber)
	}
	return cite
}

// weekSpan renders "16 to 23 May 2025", spelling out both months when the
// week straddles a month boundary.
func (b Bulletin) weekSpan() string {
	if b.WeekStart.Month() == b.WeekEnd.Month() {
		return fmt.Sprintf("%d to %d %s %d",
			b.WeekStart.Day(), b.WeekEnd.Day(), b.WeekEnd.Month(), b.WeekEnd.Year())
	}
	return fmt.Sprintf("%d %s to %d %s %d",
		b.WeekStart.Day(), b.WeekStart.Month(),
		b.WeekEnd.Day(), b.WeekEnd.Month(), b.WeekEnd.Year())
}

// Render produces the bulletin body. Notices group under their major-type
// section header and then under their minor-type heading, keeping the order
// in which they were extracted within each group.
func (b Bulletin) Render() string {
	var out strings.Builder
	line := func(s string) {
		out.WriteString(s)
		out.WriteString("\n")
	}

	line(titleLine)
	line("")
	line(fmt.Sprintf("(Bulletin %d of %d based on Gazettes received during the week %s)",
		b.Number, b.Year, b.weekSpan()))
	line("")
	line(serviceLine)
	line("")
	if issn := firstISSN(b.Notices); issn != "" {
		line("ISSN " + issn)
		line("")
	}

	for _, major := range constants.AllMajorTypes() {
		group := noticesOfType(b.Notices, major)
		if len(group) == 0 {
			continue
		}
		line(constants.BulletinHeader(major))
		line("")
		for _, minor := range minorHeadings(group) {
			line(minor + ":")
			line("")
			for _, n := range group {
				if n.MinorType != minor {
					continue
				}
				line(fmt.Sprintf("%s %s", strings.TrimSpace(n.Description), Citation(n)))
				line("")
			}
		}
	}

	if len(b.Issues) > 0 {
		line("NOTICES WITH TECHNICAL ISSUES")
		line("")
		for _, issue := range b.Issues {
			line(fmt.Sprintf("Notice %d in GG %d: %s", issue.NoticeNumber, issue.GazetteNumber, issue.Reason))
		}
		line("")
	}

	return out.String()
}

func firstISSN(notices []gazette.Notice) string {
	for _, n := range notices {
		if n.ISSN != nil {
			return *n.ISSN
		}
	}
	return ""
}

func noticesOfType(notices []gazette.Notice, t constants.MajorType) []gazette.Notice {
	var out []gazette.Notice
	for _, n := range notices {
		if n.MajorType == t {
			out = append(out, n)
		}
	}
	return out
}

// minorHeadings returns the distinct minor-type headings of a group in first
// appearance order, so related notices stay together under one heading.
func minorHeadings(group []gazette.Notice) []string {
	seen := map[string]bool{}
	var order []string
	for _, n := range group {
		if !seen[n.MinorType] {
			seen[n.MinorType] = true
			order = append(order, n.MinorType)
		}
	}
	return order
}
