package annotations

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	s := Store{Dir: t.TempDir()}

	want := Annotation{PublicationDate: "2025-05-23", NoticeNumbers: []int{3228, 3229}}
	if err := s.Save("gg52724_23May2025.pdf", want, false); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load("gg52724_23May2025.pdf")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load = %+v, want %+v", got, want)
	}

	d, err := got.Date()
	if err != nil {
		t.Fatalf("Date: %v", err)
	}
	if d.Year() != 2025 || d.Month() != 5 || d.Day() != 23 {
		t.Errorf("Date = %v", d)
	}
}

func TestStoreSaveDoesNotOverwrite(t *testing.T) {
	s := Store{Dir: t.TempDir()}

	first := Annotation{PublicationDate: "2025-05-23", NoticeNumbers: []int{3228}}
	if err := s.Save("gg52724.pdf", first, false); err != nil {
		t.Fatal(err)
	}
	second := Annotation{PublicationDate: "2025-05-24", NoticeNumbers: []int{}}
	if err := s.Save("gg52724.pdf", second, false); err != nil {
		t.Fatal(err)
	}

	got, err := s.Load("gg52724.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if got.PublicationDate != "2025-05-23" {
		t.Errorf("annotation was overwritten: %+v", got)
	}

	if err := s.Save("gg52724.pdf", second, true); err != nil {
		t.Fatal(err)
	}
	got, err = s.Load("gg52724.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if got.PublicationDate != "2025-05-24" {
		t.Errorf("overwrite did not apply: %+v", got)
	}
}

func TestLoadRejectsInvalidSidecars(t *testing.T) {
	dir := t.TempDir()
	s := Store{Dir: dir}

	bad := []struct {
		name string
		body string
	}{
		{name: "wrong date format", body: `{"publication_date": "23 May 2025", "notice_numbers": []}`},
		{name: "missing notice numbers", body: `{"publication_date": "2025-05-23"}`},
		{name: "non integer notice", body: `{"publication_date": "2025-05-23", "notice_numbers": ["3228"]}`},
		{name: "zero notice number", body: `{"publication_date": "2025-05-23", "notice_numbers": [0]}`},
		{name: "unknown field", body: `{"publication_date": "2025-05-23", "notice_numbers": [], "extra": 1}`},
		{name: "not json", body: `{broken`},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			if err := os.WriteFile(filepath.Join(dir, "gg1.json"), []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := s.Load("gg1.pdf"); err == nil {
				t.Errorf("Load accepted invalid sidecar: %s", tt.body)
			}
		})
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	s := Store{Dir: dir}

	if err := s.Save("gg52724.pdf", Annotation{PublicationDate: "2025-05-23"}, false); err != nil {
		t.Fatal(err)
	}
	if err := s.Save("gg52695.pdf", Annotation{PublicationDate: "2025-05-16"}, false); err != nil {
		t.Fatal(err)
	}
	// An invalid sidecar is skipped, not fatal.
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"gg52695", "gg52724"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("List = %v, want %v", got, want)
	}
}
