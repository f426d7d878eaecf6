package gazette

import (
	"regexp"
	"strings"
)

// Shape identifies which extraction strategy applies to a document.
type Shape int

const (
	// ShapeSingle is the explicit default when neither list heuristic fires.
	ShapeSingle Shape = iota
	// ShapeLongList is the gazette table-of-contents layout: many rows, each
	// starting with a bare 3-4 digit notice number.
	ShapeLongList
	// ShapeRList is the "R."-prefixed regulation list layout.
	ShapeRList
)

func (s Shape) String() string {
	switch s {
	case ShapeLongList:
		return "long-list"
	case ShapeRList:
		return "r-list"
	default:
		return "single"
	}
}

var (
	// A row start: a bare 3-4 digit number followed by whitespace or
	// punctuation, not part of a longer number.
	longListLine = regexp.MustCompile(`^\d{3,4}[\s.,:;]`)
	rListLine    = regexp.MustCompile(`^R\. \d{3} `)
)

const longListThreshold = 3

// Classify inspects raw document text and picks the extraction strategy.
// The long-list check counts matching lines anywhere in the document rather
// than requiring them to be consecutive; OCR noise breaks consecutive runs
// unpredictably. This is a heuristic and misclassification on adversarial
// OCR output is tolerated upstream, not treated as fatal here.
func Classify(text string) Shape {
	longLines := 0
	rLines := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if longListLine.MatchString(line) {
			longLines++
		}
		if rListLine.MatchString(line) {
			rLines++
		}
	}
	if longLines >= longListThreshold {
		return ShapeLongList
	}
	if rLines > 1 {
		return ShapeRList
	}
	return ShapeSingle
}
