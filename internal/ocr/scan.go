// Package ocr turns gazette PDFs into text. Digitally published gazettes
// carry a usable text layer that pdftotext recovers directly; older scans
// need rasterization through pdftoppm and a tesseract pass per page. Either
// way the result is the full document text plus per-page texts, with page
// breaks carried as form feeds.
package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	DPI           int    // rasterization DPI for scanned gazettes, default 300
	MaxPages      int    // 0 = no limit; gazette metadata lives in the first few pages

	TessdataDir         string
	EnableTSVConfidence bool

	PSM int // 6 works well for the gazette's uniform text blocks
	OEM int // 1 = LSTM; leave 0 to use default

	// CacheDir holds per-file page-text caches keyed by content hash.
	// Empty disables caching.
	CacheDir string

	// MinTextLayerBytes is the threshold below which the pdftotext output is
	// considered an empty text layer and the raster path runs instead.
	MinTextLayerBytes int
}

// ScanResult is the text recovered from one gazette PDF.
type ScanResult struct {
	Text       string
	Pages      []string
	Method     string // "pdf-text" | "pdf-ocr" | "cache"
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32
}

type Scanner struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewScanner(cfg Config, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if cfg.MinTextLayerBytes <= 0 {
		cfg.MinTextLayerBytes = 200
	}
	return &Scanner{cfg: cfg, runner: execRunner{logger: logger}, logger: logger}
}

// Scan extracts the text of a gazette PDF, consulting the page cache first.
func (s *Scanner) Scan(ctx context.Context, path string) (ScanResult, error) {
	start := time.Now()

	cache, hash, err := s.openCache(path)
	if err != nil {
		s.logger.Warn("page cache unavailable", "path", path, "error", err)
	}
	if cache != nil {
		if pages, ok := cache.lookup(hash); ok {
			s.logger.Debug("page cache hit", "path", path, "hash", hash)
			return resultFromPages(pages, "cache", s.cfg.TesseractLang, time.Since(start)), nil
		}
	}

	res, err := s.scanFresh(ctx, path)
	if err != nil {
		return res, err
	}
	res.Duration = time.Since(start)

	if cache != nil {
		if err := cache.store(hash, res.Pages); err != nil {
			s.logger.Warn("page cache write failed", "path", path, "error", err)
		}
	}
	return res, nil
}

func (s *Scanner) scanFresh(ctx context.Context, path string) (ScanResult, error) {
	s.logger.Debug("scanning gazette pdf", "path", path)

	text, warns, err := s.pdfTextLayer(ctx, path)
	if err == nil && len(strings.TrimSpace(text)) >= s.cfg.MinTextLayerBytes {
		res := resultFromText(Normalize(text), "pdf-text", s.cfg.TesseractLang, 0)
		res.Warnings = warns
		res.Confidence = heuristicConfidence(res.Text)
		return res, nil
	}
	if err != nil {
		warns = append(warns, err.Error())
	} else {
		warns = append(warns, "pdf text layer empty, falling back to ocr")
	}

	res, err := s.pdfOCR(ctx, path)
	if err != nil {
		return res, err
	}
	res.Warnings = append(warns, res.Warnings...)
	return res, nil
}

func (s *Scanner) pdfTextLayer(ctx context.Context, path string) (string, []string, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := s.runner.Run(ctx, s.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("pdftotext: %w", err)
	}
	return string(out), nil, nil
}

func (s *Scanner) pdfOCR(ctx context.Context, path string) (ScanResult, error) {
	tmpDir, err := os.MkdirTemp("", "gz-pp-*")
	if err != nil {
		return ScanResult{}, err
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			s.logger.Warn("failed to remove temp dir", "path", tmpDir, "error", err)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := s.runner.Run(ctx, s.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", s.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return ScanResult{Warnings: []string{string(errb)}}, fmt.Errorf("pdftoppm: %w", err)
	}

	// generated pngs are prefix-1.png, prefix-2.png, ...
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if s.cfg.MaxPages > 0 && len(matches) > s.cfg.MaxPages {
		matches = matches[:s.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return ScanResult{Warnings: []string{"pdftoppm produced no images"}}, fmt.Errorf("no pages rendered")
	}

	pages := make([]string, 0, len(matches))
	var warns []string
	var confSum float32
	var confN int
	for _, img := range matches {
		txt, w, err := s.tesseractOCR(ctx, img)
		warns = append(warns, w...)
		if err != nil {
			// A garbled page must not sink the whole gazette; downstream
			// detectors tolerate missing pages.
			warns = append(warns, err.Error())
			pages = append(pages, "")
			continue
		}
		txt = Normalize(txt)
		pages = append(pages, txt)

		if s.cfg.EnableTSVConfidence {
			if c, w2, err2 := s.tesseractTSVConfidence(ctx, img); err2 == nil && c > 0 {
				confSum += c
				confN++
				warns = append(warns, w2...)
			}
		}
	}

	res := resultFromPages(pages, "pdf-ocr", s.cfg.TesseractLang, 0)
	res.Warnings = warns
	heur := heuristicConfidence(res.Text)
	if confN > 0 {
		res.Confidence = 0.7*(confSum/float32(confN)) + 0.3*heur
	} else {
		res.Confidence = heur
	}
	if res.Confidence > 1.0 {
		res.Confidence = 1.0
	}
	return res, nil
}

func (s *Scanner) tesseractOCR(ctx context.Context, path string) (string, []string, error) {
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

	out, errb, err := s.runner.Run(ctx, s.cfg.Tesseract, args...)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}
	return string(out), nil, nil
}

// resultFromText splits full text on form feeds into per-page texts.
func resultFromText(text, method, lang string, dur time.Duration) ScanResult {
	pages := strings.Split(text, "\f")
	for i := range pages {
		pages[i] = strings.TrimSpace(pages[i])
	}
	return ScanResult{
		Text:     text,
		Pages:    pages,
		Method:   method,
		Language: lang,
		Duration: dur,
	}
}

// resultFromPages rejoins per-page texts into the full document text.
func resultFromPages(pages []string, method, lang string, dur time.Duration) ScanResult {
	return ScanResult{
		Text:     strings.Join(pages, "\n\f\n"),
		Pages:    pages,
		Method:   method,
		Language: lang,
		Duration: dur,
	}
}
