package gazette

import (
	"regexp"
	"strconv"
	"strings"
)

// One table-of-contents row: notice number, content up to the dot leaders,
// gazette number, page number.
var entryPattern = regexp.MustCompile(`^(\d{3,4})\s+(.+?)\.{3,}\s+(\d+)\s+(\d+)\s*$`)

// An R-list row: "R. " + exactly three digits, then the same row layout.
var rEntryPattern = regexp.MustCompile(`^R\.\s+(\d{3})\s+(.+?)\.{3,}\s+(\d+)\s+(\d+)\s*$`)

// ParseEntry parses one logical line into a ParsedEntry. The law fields come
// from running the Act cascade over the content segment; rows whose content
// carries no recognizable Act phrase yield ok=false and are skipped by the
// document parser (OCR noise rows are expected).
func ParseEntry(logicalLine string) (ParsedEntry, bool) {
	return parseEntryWith(entryPattern, logicalLine)
}

func parseEntryWith(rowPattern *regexp.Regexp, logicalLine string) (ParsedEntry, bool) {
	m := rowPattern.FindStringSubmatch(logicalLine)
	if m == nil {
		return ParsedEntry{}, false
	}

	noticeNumber, _ := strconv.Atoi(m[1])
	content := strings.TrimSpace(m[2])
	gazetteNumber, _ := strconv.Atoi(m[3])
	pageNumber, _ := strconv.Atoi(m[4])

	act, end, ok := matchAct(content)
	if !ok {
		return ParsedEntry{}, false
	}

	return ParsedEntry{
		LogicalLine:       logicalLine,
		NoticeNumber:      noticeNumber,
		LawDescription:    act.Whom,
		LawNumber:         act.Number,
		LawYear:           act.Year,
		GazetteNumber:     gazetteNumber,
		PageNumber:        pageNumber,
		NoticeDescription: actDescription(content, end),
	}, true
}

// ParseGazetteDocument joins the wrapped rows of a long-list document and
// parses each into a ParsedEntry, skipping rows the entry pattern or the Act
// cascade cannot make sense of.
func ParseGazetteDocument(text string) []ParsedEntry {
	var entries []ParsedEntry
	for _, line := range JoinLogicalLines(text) {
		if entry, ok := ParseEntry(line); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// findEntry selects the entry for the requested notice number. Bilingual
// gazettes list the same notice twice; the first occurrence (usually the
// English one) wins.
func findEntry(entries []ParsedEntry, noticeNumber int) (ParsedEntry, error) {
	for _, e := range entries {
		if e.NoticeNumber == noticeNumber {
			return e, nil
		}
	}
	return ParsedEntry{}, &EntryNotFoundError{NoticeNumber: noticeNumber}
}

// joinRListLines is the R-list counterpart of JoinLogicalLines: entries are
// keyed on the "R. NNN " prefix and wrap the same way.
func joinRListLines(text string) []string {
	var logical []string
	lines := strings.Split(text, "\n")

	rStart := regexp.MustCompile(`^R\.\s+\d{3}\s`)

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if !rStart.MatchString(line) {
			i++
			continue
		}

		parts := []string{line}
		foundEnd := dotTerminator.MatchString(line) || bareTerminator.MatchString(line)

		j := i + 1
		for j < len(lines) && !foundEnd {
			next := strings.TrimSpace(lines[j])
			if rStart.MatchString(next) || entryStart.MatchString(next) {
				break
			}
			parts = append(parts, next)
			if dotTerminator.MatchString(next) {
				foundEnd = true
				j++
				break
			}
			j++
		}

		joined := strings.TrimSpace(whitespaceRun.ReplaceAllString(strings.Join(parts, " "), " "))
		if joined != "" {
			logical = append(logical, joined)
		}
		i = j
	}

	return logical
}

// ParseRListDocument parses an R-list document into entries.
func ParseRListDocument(text string) []ParsedEntry {
	var entries []ParsedEntry
	for _, line := range joinRListLines(text) {
		if entry, ok := parseEntryWith(rEntryPattern, line); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// DecodeRListAct decodes the Act for a notice from an R-list page. Rows here
// do not always carry the trailing gazette/page pair, so when no structured
// row matches, the cascade runs over each raw R-line's content directly.
func DecodeRListAct(text string, noticeNumber int) (Act, error) {
	for _, e := range ParseRListDocument(text) {
		if e.NoticeNumber == noticeNumber {
			return Act{Whom: e.LawDescription, Number: e.LawNumber, Year: e.LawYear}, nil
		}
	}

	rLine := regexp.MustCompile(`^R\.\s+(\d{3})\s+(.*)$`)
	for _, line := range strings.Split(text, "\n") {
		m := rLine.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		n, _ := strconv.Atoi(m[1])
		if n != noticeNumber && noticeNumber != 0 {
			continue
		}
		if act, _, ok := matchAct(m[2]); ok {
			return act, nil
		}
	}

	return Act{}, &ActNotFoundError{Snippet: snippet(text)}
}
