package ingest

import (
	"path/filepath"
	"testing"
)

func TestWatchable(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"gazette pdf", "/in/gg52724.pdf", "/in/gg52724.pdf"},
		{"annotation sidecar", "/in/gg52724.json", filepath.Join("/in", "gg52724.pdf")},
		{"unrelated pdf", "/in/report.pdf", ""},
		{"unrelated json", "/in/config.json", ""},
		{"directory-looking path", "/in/52724", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := watchable(tt.path); got != tt.want {
				t.Fatalf("watchable(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsHidden(t *testing.T) {
	if !IsHidden("/in/.staging") {
		t.Error("dotted directory not hidden")
	}
	if IsHidden("/in/gg52724.pdf") {
		t.Error("plain file reported hidden")
	}
}

func TestAllowedExt(t *testing.T) {
	if !AllowedExt(".PDF") {
		t.Error("pdf extension rejected")
	}
	if AllowedExt(".png") {
		t.Error("png extension accepted")
	}
}
