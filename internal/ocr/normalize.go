package ocr

import (
	"regexp"
	"strings"
)

// Tesseract tends to render the gazette's ruled lines and dot leaders as
// runs of pipe/underscore/box characters; strip the obvious noise but keep
// the underscores and dots that the downstream detectors rely on.
var reBoxNoise = regexp.MustCompile(`[|¦│┃]{2,}`)

// Normalize cleans raw extractor output: CRLF to LF, box-drawing noise
// removed, trailing whitespace per line dropped.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = reBoxNoise.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
