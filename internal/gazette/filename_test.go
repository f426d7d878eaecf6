package gazette

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExtractGazetteNumber(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     int
		wantErr  bool
	}{
		{name: "standard name", filename: "gg52724_23May2025.pdf", want: 52724},
		{name: "number alone", filename: "52724.pdf", want: 52724},
		{name: "full path", filename: "/srv/gazettes/gg52695_16May2025.pdf", want: 52695},
		{name: "slice of longer digit run is not a gazette number", filename: "gg152724.pdf", wantErr: true},
		{name: "no number", filename: "notes.pdf", wantErr: true},
		{name: "wrong leading digit", filename: "gg42724.pdf", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractGazetteNumber(tt.filename)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ExtractGazetteNumber(%q) = %d, want error", tt.filename, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractGazetteNumber(%q): %v", tt.filename, err)
			}
			if got != tt.want {
				t.Errorf("ExtractGazetteNumber(%q) = %d, want %d", tt.filename, got, tt.want)
			}
		})
	}
}

func TestIsValidGazetteFilename(t *testing.T) {
	valid := []string{"gg52724_23May2025.pdf", "52724.PDF"}
	for _, f := range valid {
		if !IsValidGazetteFilename(f) {
			t.Errorf("IsValidGazetteFilename(%q) = false", f)
		}
	}
	invalid := []string{"gg52724.txt", "notes.pdf", "gg152724.pdf"}
	for _, f := range invalid {
		if IsValidGazetteFilename(f) {
			t.Errorf("IsValidGazetteFilename(%q) = true", f)
		}
	}
}

func TestDirLocator(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"gg52724_23May2025.pdf", "gg52695_16May2025.pdf", "README.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("%PDF"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	loc := DirLocator{Dir: dir}

	path, err := loc.Locate(52724)
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if filepath.Base(path) != "gg52724_23May2025.pdf" {
		t.Errorf("Locate = %q", path)
	}

	if _, err := loc.Locate(59999); err == nil {
		t.Error("Locate on an absent gazette should fail")
	}
}
