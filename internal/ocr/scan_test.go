package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeRunner scripts stdout per binary name.
type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error
	calls   []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, name)
	if err, ok := f.errs[name]; ok {
		return nil, []byte("stubbed failure"), err
	}
	if name == "pdftoppm" {
		// Render two fake page images where the real binary would.
		prefix := args[len(args)-1]
		for i := 1; i <= 2; i++ {
			if err := os.WriteFile(fmt.Sprintf("%s-%d.png", prefix, i), []byte("png"), 0o644); err != nil {
				return nil, nil, err
			}
		}
		return nil, nil, nil
	}
	return []byte(f.outputs[name]), nil, nil
}

func writeTestPDF(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gg52724_23May2025.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.7 fake"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestScanUsesTextLayer(t *testing.T) {
	textLayer := strings.Repeat("Government Gazette Staatskoerant Vol: 719 23 2025 No: 52724 ISSN 1682-5845\n", 5) +
		"\fpage two content here with plenty of text to clear the threshold"
	runner := &fakeRunner{outputs: map[string]string{"pdftotext": textLayer}}

	s := NewScanner(Config{}, nil)
	s.runner = runner

	res, err := s.Scan(context.Background(), writeTestPDF(t))
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if res.Method != "pdf-text" {
		t.Errorf("method = %q, want pdf-text", res.Method)
	}
	if len(res.Pages) != 2 {
		t.Errorf("pages = %d, want 2", len(res.Pages))
	}
	if !strings.Contains(res.Pages[1], "page two content") {
		t.Errorf("page 2 = %q", res.Pages[1])
	}
	if res.Confidence <= 0.5 {
		t.Errorf("confidence = %f, want a masthead-boosted score", res.Confidence)
	}
	for _, call := range runner.calls {
		if call == "tesseract" || call == "pdftoppm" {
			t.Errorf("raster path invoked despite a usable text layer: %v", runner.calls)
		}
	}
}

func TestScanFallsBackToOCR(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"pdftotext": "  \n ", // empty text layer
		"tesseract": "Government Gazette Vol: 719 23 2025",
	}}

	s := NewScanner(Config{}, nil)
	s.runner = runner

	res, err := s.Scan(context.Background(), writeTestPDF(t))
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if res.Method != "pdf-ocr" {
		t.Errorf("method = %q, want pdf-ocr", res.Method)
	}
	if len(res.Pages) != 2 {
		t.Errorf("pages = %d, want 2", len(res.Pages))
	}
	if len(res.Warnings) == 0 {
		t.Error("expected a warning about the empty text layer")
	}
}

func TestScanMaxPages(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"pdftotext": "",
		"tesseract": "page text",
	}}

	s := NewScanner(Config{MaxPages: 1}, nil)
	s.runner = runner

	res, err := s.Scan(context.Background(), writeTestPDF(t))
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(res.Pages) != 1 {
		t.Errorf("pages = %d, want 1", len(res.Pages))
	}
}

func TestScanPageCache(t *testing.T) {
	cacheDir := t.TempDir()
	textLayer := strings.Repeat("Government Gazette Staatskoerant Vol: 719 23 2025 No: 52724 ISSN 1682-5845\n", 5)
	runner := &fakeRunner{outputs: map[string]string{"pdftotext": textLayer}}

	s := NewScanner(Config{CacheDir: cacheDir}, nil)
	s.runner = runner
	path := writeTestPDF(t)

	first, err := s.Scan(context.Background(), path)
	if err != nil {
		t.Fatalf("first scan: %v", err)
	}
	if first.Method != "pdf-text" {
		t.Fatalf("first method = %q", first.Method)
	}

	callsAfterFirst := len(runner.calls)
	second, err := s.Scan(context.Background(), path)
	if err != nil {
		t.Fatalf("second scan: %v", err)
	}
	if second.Method != "cache" {
		t.Errorf("second method = %q, want cache", second.Method)
	}
	if len(runner.calls) != callsAfterFirst {
		t.Errorf("cache hit still invoked binaries: %v", runner.calls[callsAfterFirst:])
	}
	if strings.TrimSpace(second.Pages[0]) == "" {
		t.Error("cached pages lost their content")
	}
}

func TestNormalize(t *testing.T) {
	in := "line one\r\nline two   \n|||| boxed"
	got := Normalize(in)
	if strings.Contains(got, "\r") {
		t.Error("carriage returns survived")
	}
	if strings.Contains(got, "||") {
		t.Error("box noise survived")
	}
	if !strings.Contains(got, "line two\n") {
		t.Errorf("trailing whitespace survived: %q", got)
	}
}
