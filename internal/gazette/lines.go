package gazette

import (
	"regexp"
	"strings"
)

// The gazette's table of contents lists notices as rows that wrap across one
// to three raw text lines. Joining them back together has two traps: two
// genuinely separate entries must not be merged, and a continuation row that
// happens to start with a 4-digit year (a year-stamped sub-row of dot
// leaders and the trailing gazette/page pair) belongs to the previous entry
// even though it looks like a fresh entry start.

var (
	entryStart = regexp.MustCompile(`^(\d{3,4})\s+`)
	// Dot leaders followed by the gazette number and page number.
	dotTerminator = regexp.MustCompile(`\.{3,}\s+\d+\s+\d+\s*$`)
	// A row that ends in the two trailing integers without any leaders.
	bareTerminator = regexp.MustCompile(`\s+\d+\s+\d+\s*$`)
	longDotRun     = regexp.MustCompile(`\.{10,}`)
	longLetterRun  = regexp.MustCompile(`[A-Za-z]{10,}`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
)

// JoinLogicalLines reconstructs the wrapped table-of-contents rows of a
// long-list document into one string per logical entry, with whitespace runs
// collapsed to single spaces.
func JoinLogicalLines(text string) []string {
	var logical []string
	lines := strings.Split(text, "\n")

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])

		start := entryStart.FindStringSubmatch(line)
		if start == nil {
			i++
			continue
		}

		parts := []string{line}
		foundEnd := dotTerminator.MatchString(line) || bareTerminator.MatchString(line)

		j := i + 1
		for j < len(lines) && !foundEnd {
			next := strings.TrimSpace(lines[j])
			nextStart := entryStart.FindStringSubmatch(next)

			if nextStart != nil {
				if isYearContinuation(next, nextStart) {
					// Disguised continuation; absorb it instead of treating
					// it as a new entry start.
					parts = append(parts, next)
					foundEnd = true
					j++
					break
				}
				// Genuine new entry; stop here.
				break
			}

			// Not a start line: always a continuation of the current entry,
			// never noise to discard.
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

// isYearContinuation recognizes the year-stamped sub-row: a 4-digit leading
// token, a long run of dot leaders, the standard terminator, and no real
// text content.
func isYearContinuation(line string, start []string) bool {
	afterNumber := line[len(start[0]):]
	return LooksLikeYearString(start[1]) &&
		longDotRun.MatchString(afterNumber) &&
		dotTerminator.MatchString(line) &&
		!longLetterRun.MatchString(afterNumber)
}
