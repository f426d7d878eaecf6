package gazette

import (
	"fmt"
	"strings"
)

// Some departments publish notices that never cite an Act. These phrases are
// matched (case-insensitively) against the anchor page before the Act cascade
// runs, and short-circuit to a department name.
var departmentPhrases = []struct {
	phrase string
	minor  string
}{
	{"department of sports, arts and culture", "Department of Sports, Arts and Culture"},
	{"national astro-tourism", "Department of Tourism"},
	{"department of transport", "Department of Transport"},
}

// ResolveMinorType determines a notice's minor type: a known department
// phrase when one occurs in the text, otherwise the decoded Act rendered as
// "{Whom} ACT {number} of {year}". Acts decoded from a bare department name
// render as the name alone.
func ResolveMinorType(text string, pages []string, noticeNumber int) (string, error) {
	lower := strings.ToLower(text)
	for _, d := range departmentPhrases {
		if strings.Contains(lower, d.phrase) {
			return d.minor, nil
		}
	}

	act, err := DecodeAct(text, pages, noticeNumber)
	if err != nil {
		return "", err
	}
	return FormatMinorType(act), nil
}

// FormatMinorType renders an Act as a bulletin section heading.
func FormatMinorType(act Act) string {
	if act.Number == nil || act.Year == nil {
		return act.Whom
	}
	return fmt.Sprintf("%s ACT %d of %d", act.Whom, *act.Number, *act.Year)
}
