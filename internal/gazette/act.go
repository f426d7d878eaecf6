package gazette

import (
	"regexp"
	"strconv"
	"strings"
)

// The Act cascade. Gazette text phrases enabling legislation in at least ten
// distinct ways (English, Afrikaans, several punctuation conventions, and an
// all-caps legacy form), so act detection is an ordered list of
// (pattern, extractor) pairs evaluated in priority order, stopping at the
// first match. The order matters: specific patterns such as the Magistrates'
// Courts literal must win before the generic parenthetical form gets a
// chance to mis-segment the enacting body name. A pattern miss is normal
// control flow, not an error; only exhausting the whole cascade is.

type actPattern struct {
	name    string
	re      *regexp.Regexp
	extract func(groups []string) Act
}

// whomNumberYear is the common extractor: group 1 body, group 2 act number,
// group 3 act year.
func whomNumberYear(groups []string) Act {
	return Act{
		Whom:   strings.TrimSpace(groups[1]),
		Number: atoiPtr(groups[2]),
		Year:   atoiPtr(groups[3]),
	}
}

func atoiPtr(s string) *int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

var actCascade = []actPattern{
	{
		// Literal special case, both apostrophe variants. Pinning the body
		// name keeps the generic form below from swallowing preceding words.
		name:    "magistrates_courts",
		re:      regexp.MustCompile(`(?i)(Magistrates['’] Courts)\s+Act\s*\((\d+)/(\d{4})\)`),
		extract: whomNumberYear,
	},
	{
		// "Road Accident Fund Act (56/1996)"
		name:    "english_parenthetical",
		re:      regexp.MustCompile(`(?i)(.+?)\s+Act\s*\((\d+)/(\d{4})\)`),
		extract: whomNumberYear,
	},
	{
		// "Currency and Exchanges-Act; 1933 (Act No: 9 of 1933)"
		name:    "semicolon",
		re:      regexp.MustCompile(`(?i)(.+?)-Act;\s*\d{4}\s*\(Act\s*No[:.]?\s*(\d+)\s+of\s+(\d{4})\)`),
		extract: whomNumberYear,
	},
	{
		// "Skills Development Act, No. 97 of 1998"
		name:    "no_qualified",
		re:      regexp.MustCompile(`(?i)(.+?)\s+Act,\s*No\.?\s*(\d+)\s+of\s+(\d{4})`),
		extract: whomNumberYear,
	},
	{
		// "Skills Development Act, 97 of 1998"
		name:    "simple_numeric",
		re:      regexp.MustCompile(`(?i)(.+?)\s+Act,\s*(\d+)\s+of\s+(\d{4})`),
		extract: whomNumberYear,
	},
	{
		// "Disaster Management Act, 2002 (Act No. 57 of 2002)"
		name: "year_before_number",
		re:   regexp.MustCompile(`(?i)(.+?)\s+Act,\s*(\d{4})\s*\((?:Act\s+)?No\.?\s*(\d+)\s+of\s+\d{4}\)`),
		extract: func(groups []string) Act {
			return Act{
				Whom:   strings.TrimSpace(groups[1]),
				Number: atoiPtr(groups[3]),
				Year:   atoiPtr(groups[2]),
			}
		},
	},
	{
		// "Fertilizers Act (Act No. 36 of 1947)" / "(No. 36 of 1947)"
		name:    "act_no_parenthetical",
		re:      regexp.MustCompile(`(?i)(.+?)\s+Act\s*\((?:Act\s+)?No\.?\s*(\d+)\s+of\s+(\d{4})\)`),
		extract: whomNumberYear,
	},
	{
		// Afrikaans prefix form: "Wet op Landdroshowe (28/2011)". The "Wet"
		// prefix stays part of the body name.
		name: "afrikaans_wet_prefix",
		re:   regexp.MustCompile(`(?i)\bWet\s+(.+?)\s*\((\d+)/(\d{4})\)`),
		extract: func(groups []string) Act {
			return Act{
				Whom:   "Wet " + strings.TrimSpace(groups[1]),
				Number: atoiPtr(groups[2]),
				Year:   atoiPtr(groups[3]),
			}
		},
	},
	{
		// Afrikaans suffix form without parentheses: "Vaardigheidsontwikkelingswet, No. 97 van 1998"
		name:    "afrikaans_wet_suffix",
		re:      regexp.MustCompile(`(?i)(\S.*?wet),\s*No\.?\s*(\d+)\s+van\s+(\d{4})`),
		extract: whomNumberYear,
	},
	{
		// Afrikaans suffix form with parentheses: "Vaardigheidsontwikkelingswet (No. 97 van 1998)"
		name:    "afrikaans_wet_suffix_parens",
		re:      regexp.MustCompile(`(?i)(\S.*?wet)\s*\((?:No\.?\s*)?(\d+)\s+van\s+(\d{4})\)`),
		extract: whomNumberYear,
	},
	{
		// All-caps legacy form, deliberately case-sensitive:
		// "COMPETITION ACT, 1998 (ACT NO: 89 OF 1998)"
		name:    "all_caps_legacy",
		re:      regexp.MustCompile(`([A-Z][A-Z'’&\- ]*?)\s+ACT,\s*\d{4}\s*\(ACT\s*NO[:.]?\s*(\d+)\s+OF\s+(\d{4})\)`),
		extract: whomNumberYear,
	},
}

// matchAct runs the cascade over a content segment. It returns the decoded
// Act and the byte offset where the matched phrase ends, which the entry
// parser uses to recover the trailing notice description.
func matchAct(content string) (Act, int, bool) {
	for _, p := range actCascade {
		loc := p.re.FindStringSubmatchIndex(content)
		if loc == nil {
			continue
		}
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = content[loc[2*i]:loc[2*i+1]]
			}
		}
		return p.extract(groups), loc[1], true
	}
	return Act{}, 0, false
}

// Quoted parenthetical abbreviations such as (“the LTA”) add nothing to the
// description and are stripped.
var quotedAbbrev = regexp.MustCompile(`\s*\(["'“”‘’].*?["'“”‘’]\)\s*`)

// actDescription recovers the notice description: everything after the
// matched Act phrase, with quoted abbreviations removed and leading colons
// trimmed.
func actDescription(content string, end int) string {
	rest := strings.TrimSpace(content[end:])
	rest = strings.TrimSpace(quotedAbbrev.ReplaceAllString(rest, " "))
	return strings.TrimSpace(strings.TrimLeft(rest, ":"))
}

// currencyAndExchanges is the special-cased fallback for notices phrased via
// the old exchange control regulations rather than any Act sentence.
func currencyAndExchanges() Act {
	return Act{Whom: "Currency and Exchanges", Number: intPtr(9), Year: intPtr(1933)}
}

// DecodeAct extracts a law-name/number/year triple from heterogeneous
// phrasings. pages carries per-page text so the fallbacks can consult the
// secondary page; noticeNumber is needed when control delegates to the
// R-list decoder.
func DecodeAct(text string, pages []string, noticeNumber int) (Act, error) {
	if act, _, ok := matchAct(text); ok {
		return act, nil
	}

	if strings.Contains(strings.ToLower(text), "exchange control") {
		return currencyAndExchanges(), nil
	}

	if len(pages) >= 2 {
		secondary := pages[1]
		if strings.Contains(strings.ToLower(secondary), "mineral resources and energy") {
			// Department-only act; no number or year is recoverable.
			return Act{Whom: "Department of Mineral Resources and Energy"}, nil
		}
		if Classify(secondary) == ShapeRList {
			return DecodeRListAct(secondary, noticeNumber)
		}
	}

	return Act{}, &ActNotFoundError{Snippet: snippet(text)}
}
