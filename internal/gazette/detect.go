package gazette

import (
	"regexp"
	"strconv"
	"strings"
)

// Field detectors. Each is a pure function over document text with its own
// regex contract; on a miss it returns a *DetectionError naming itself and
// quoting the text it failed on, never a silent default. The detectors are
// independent and order-insensitive; the assembler calls each once per
// document.

// The gazette masthead reads like
// "Government Gazette Staatskoerant Vol: 719 23 2025 No: 52724 ...".
// The volume anchor is the only reliable way to find day and year because
// the surrounding OCR output is noisy.
var volAnchor = regexp.MustCompile(`Vol[.:]\s*\d+\s+(\d{1,2})\s+(\d{4})`)

// DetectDay extracts the publication day-of-month (1-31).
func DetectDay(text string) (int, error) {
	m := volAnchor.FindStringSubmatch(text)
	if m == nil {
		return 0, newDetectionError("detect_day", text)
	}
	day, err := strconv.Atoi(m[1])
	if err != nil || day < 1 || day > 31 {
		return 0, newDetectionError("detect_day", m[0])
	}
	return day, nil
}

// DetectYear extracts the publication year (1900-2100) from the same anchor.
func DetectYear(text string) (int, error) {
	m := volAnchor.FindStringSubmatch(text)
	if m == nil {
		return 0, newDetectionError("detect_year", text)
	}
	year, err := strconv.Atoi(m[2])
	if err != nil || year < 1900 || year > 2100 {
		return 0, newDetectionError("detect_year", m[0])
	}
	return year, nil
}

var issnPattern = regexp.MustCompile(`(?i)ISSN\s+(\d{4}-\d{4})`)

// DetectISSN extracts the gazette's ISSN in ####-#### form.
func DetectISSN(text string) (string, error) {
	m := issnPattern.FindStringSubmatch(text)
	if m == nil {
		return "", newDetectionError("detect_issn", text)
	}
	return m[1], nil
}

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var monthPattern = regexp.MustCompile(
	`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december)\b`)

// DetectMonthName returns the first English month name in the text,
// first-letter capitalized regardless of source casing.
func DetectMonthName(text string) (string, error) {
	m := monthPattern.FindStringSubmatch(text)
	if m == nil {
		return "", newDetectionError("detect_month_name", text)
	}
	lower := strings.ToLower(m[1])
	for _, name := range monthNames {
		if strings.ToLower(name) == lower {
			return name, nil
		}
	}
	// Unreachable: the alternation lists exactly the twelve names.
	return "", newDetectionError("detect_month_name", text)
}

// The page number follows the gazette number in headers like
// "No. 52724 3" or, on OCR-mangled pages, "_ 52724 3".
var pageNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`No[.,:]\s*(\d{5})\s*(\d+)`),
	regexp.MustCompile(`_\s*(\d{5})\s*(\d+)`),
}

// DetectPageNumber extracts the page within the gazette where the notice
// appears.
func DetectPageNumber(text string) (int, error) {
	for _, p := range pageNumberPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		page, err := strconv.Atoi(m[2])
		if err != nil || page <= 0 {
			return 0, newDetectionError("detect_page_number", m[0])
		}
		return page, nil
	}
	return 0, newDetectionError("detect_page_number", text)
}

// LooksLikeYearString reports whether s is a bare 4-digit year in
// [1900, 2100]. Used when walking contents lines where a year can be
// mistaken for a gazette number.
func LooksLikeYearString(s string) bool {
	if len(s) != 4 {
		return false
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return year >= 1900 && year <= 2100
}
