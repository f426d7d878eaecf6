// Package annotations manages the JSON sidecar files that record, per
// gazette PDF, the confirmed publication date and the notice numbers worth
// extracting. Sidecars are produced by the upload/annotation flow and
// consumed by the batch bulletin generator.
package annotations

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Annotation is one gazette's sidecar: when it was published and which
// notices to pull from it.
type Annotation struct {
	PublicationDate string `json:"publication_date"`
	NoticeNumbers   []int  `json:"notice_numbers"`
}

// Date parses the publication date.
func (a Annotation) Date() (time.Time, error) {
	return time.Parse("2006-01-02", a.PublicationDate)
}

var annotationSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"required":             []any{"publication_date", "notice_numbers"},
	"properties": map[string]any{
		"publication_date": map[string]any{
			"type":    "string",
			"pattern": `^\d{4}-\d{2}-\d{2}$`,
		},
		"notice_numbers": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":    "integer",
				"minimum": 1,
			},
		},
	},
}

// validate checks raw sidecar bytes against the annotation schema.
func validate(data []byte) error {
	b, err := json.Marshal(annotationSchema)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("annotation.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("annotation.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal annotation: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("annotation does not match schema: %w", err)
	}
	return nil
}

// Store holds annotation sidecars in one directory, one JSON file per
// gazette PDF, named after the PDF's base name.
type Store struct {
	Dir string
}

func sidecarName(pdfName string) string {
	base := filepath.Base(pdfName)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".json"
}

// Load reads and validates the sidecar for a gazette PDF.
func (s Store) Load(pdfName string) (Annotation, error) {
	path := filepath.Join(s.Dir, sidecarName(pdfName))
	data, err := os.ReadFile(path)
	if err != nil {
		return Annotation{}, fmt.Errorf("reading annotation %s: %w", path, err)
	}
	if err := validate(data); err != nil {
		return Annotation{}, fmt.Errorf("annotation %s: %w", path, err)
	}
	var a Annotation
	if err := json.Unmarshal(data, &a); err != nil {
		return Annotation{}, fmt.Errorf("decoding annotation %s: %w", path, err)
	}
	return a, nil
}

// Save validates and writes the sidecar for a gazette PDF. An existing
// sidecar is preserved unless overwrite is set; annotators curate notice
// lists by hand and an upload must not wipe that work.
func (s Store) Save(pdfName string, a Annotation, overwrite bool) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("creating annotations dir: %w", err)
	}
	path := filepath.Join(s.Dir, sidecarName(pdfName))
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return nil
		}
	}

	if a.NoticeNumbers == nil {
		a.NoticeNumbers = []int{}
	}
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	if err := validate(data); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// List returns the PDF base names that have a valid sidecar, sorted.
func (s Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("reading annotations dir %s: %w", s.Dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		if _, err := s.Load(e.Name()); err != nil {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}
