package ocr

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// GazetteConfidenceThreshold is the score below which scanned text is
// suspect enough to flag.
const GazetteConfidenceThreshold = 0.60

var (
	reMasthead = regexp.MustCompile(`(?i)government\s+gazette|staatskoerant`)
	reVolume   = regexp.MustCompile(`(?i)vol[.:]\s*\d+`)
	reISSN     = regexp.MustCompile(`(?i)issn\s+\d{4}-\d{4}`)
	reGGNumber = regexp.MustCompile(`(^|\D)5\d{4}(\D|$)`)
)

// heuristicConfidence scores decoded text by the gazette artifacts it
// contains; each masthead marker that survived OCR is a sign the rest of the
// page decoded legibly too.
func heuristicConfidence(txt string) float32 {
	score := float32(0.2) // base
	if reMasthead.MatchString(txt) {
		score += 0.2
	}
	if reVolume.MatchString(txt) {
		score += 0.15
	}
	if reISSN.MatchString(txt) {
		score += 0.15
	}
	if reGGNumber.MatchString(txt) {
		score += 0.1
	}
	if len(txt) > 500 {
		score += 0.1
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// tesseractTSVConfidence runs tesseract in TSV mode and returns mean word
// confidence in 0..1.
func (s *Scanner) tesseractTSVConfidence(ctx context.Context, path string) (float32, []string, error) {
	args := []string{path, "stdout", "-l", s.cfg.TesseractLang}
	if s.cfg.PSM > 0 {
		args = append(args, "--psm", fmt.Sprintf("%d", s.cfg.PSM))
	}
	if s.cfg.OEM > 0 {
		args = append(args, "--oem", fmt.Sprintf("%d", s.cfg.OEM))
	}
	if s.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", s.cfg.TessdataDir)
	}
	args = append(args, "tsv")

	out, errb, err := s.runner.Run(ctx, s.cfg.Tesseract, args...)
	if err != nil {
		return 0, []string{string(errb)}, fmt.Errorf("tesseract TSV: %w", err)
	}

	lines := strings.Split(string(out), "\n")
	var sum, n float64
	for i, ln := range lines {
		if i == 0 || len(ln) == 0 {
			continue // header
		}
		cols := strings.Split(ln, "\t")
		if len(cols) < 12 {
			continue
		}
		confStr := cols[len(cols)-1]
		if confStr == "" || confStr == "-1" {
			continue
		}
		if v, err := strconv.ParseFloat(confStr, 64); err == nil {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, nil, nil
	}
	return float32(sum / n / 100.0), nil, nil
}
