package gazette

import "fmt"

const snippetLen = 80

// snippet trims text down to something that can be embedded in an error
// message without dumping a whole page of OCR output.
func snippet(text string) string {
	if len(text) <= snippetLen {
		return text
	}
	return text[:snippetLen] + "..."
}

// DetectionError reports that a named field detector found no match or an
// out-of-range value. The detector never falls back to a default silently;
// a wrong date or law name in a legal bulletin is worse than a loud failure.
type DetectionError struct {
	Detector string
	Snippet  string
}

func (e *DetectionError) Error() string {
	return fmt.Sprintf("%s: no match in %q", e.Detector, e.Snippet)
}

func newDetectionError(detector, text string) *DetectionError {
	return &DetectionError{Detector: detector, Snippet: snippet(text)}
}

// ActNotFoundError reports that the Act decoder exhausted its pattern
// cascade and no special case applied.
type ActNotFoundError struct {
	Snippet string
}

func (e *ActNotFoundError) Error() string {
	return fmt.Sprintf("no act information found in the provided text: %q", e.Snippet)
}

// EntryNotFoundError reports that no row in a long-list or R-list document
// matched the requested notice number.
type EntryNotFoundError struct {
	NoticeNumber int
}

func (e *EntryNotFoundError) Error() string {
	return fmt.Sprintf("unable to find details for notice %d", e.NoticeNumber)
}

// GazetteMismatchError reports that a parsed entry's embedded gazette number
// does not equal the one requested by the caller. This is a hard failure,
// never silently corrected.
type GazetteMismatchError struct {
	Want, Got int
}

func (e *GazetteMismatchError) Error() string {
	return fmt.Sprintf("entry gazette number %d does not match requested gazette %d", e.Got, e.Want)
}
