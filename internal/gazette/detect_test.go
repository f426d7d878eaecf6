package gazette

import (
	"errors"
	"testing"
)

const masthead = "Government Gazette Staatskoerant REPUBLIEK VAN SUID AFRIKA Vol: 719 23 2025 No: 52724 Mei ISSN 1682-5845 May"

func TestDetectDay(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    int
		wantErr bool
	}{
		{name: "masthead", text: masthead, want: 23},
		{name: "dot separator", text: "Vol. 719 5 2025", want: 5},
		{name: "day out of range", text: "Vol: 719 45 2025", wantErr: true},
		{name: "no anchor", text: "no volume marker here", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectDay(tt.text)
			if tt.wantErr {
				var de *DetectionError
				if !errors.As(err, &de) {
					t.Fatalf("DetectDay(%q) err = %v, want DetectionError", tt.text, err)
				}
				if de.Detector != "detect_day" {
					t.Errorf("detector = %q, want detect_day", de.Detector)
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectDay(%q) unexpected error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("DetectDay(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectYear(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    int
		wantErr bool
	}{
		{name: "masthead", text: masthead, want: 2025},
		{name: "year out of range", text: "Vol: 719 23 2500", wantErr: true},
		{name: "no anchor", text: "nothing", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectYear(tt.text)
			if tt.wantErr {
				var de *DetectionError
				if !errors.As(err, &de) {
					t.Fatalf("DetectYear(%q) err = %v, want DetectionError", tt.text, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectYear(%q) unexpected error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("DetectYear(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectISSN(t *testing.T) {
	got, err := DetectISSN(masthead)
	if err != nil {
		t.Fatalf("DetectISSN: %v", err)
	}
	if got != "1682-5845" {
		t.Errorf("DetectISSN = %q, want 1682-5845", got)
	}

	if got, err := DetectISSN("issn 1234-5678 lowercase"); err != nil || got != "1234-5678" {
		t.Errorf("DetectISSN lowercase = %q, %v", got, err)
	}

	if _, err := DetectISSN("no serial number"); err == nil {
		t.Error("DetectISSN on text without ISSN should fail")
	}
}

func TestDetectMonthName(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		wantErr bool
	}{
		{name: "capitalized", text: "Published 23 May 2025", want: "May"},
		{name: "lowercase", text: "published in may 2025", want: "May"},
		{name: "all caps", text: "GAZETTE OF 12 DECEMBER 2024", want: "December"},
		{name: "first match wins", text: "January notice amended in March", want: "January"},
		{name: "embedded in word is not a month", text: "dismayed maytag", wantErr: true},
		{name: "afrikaans month is not matched", text: "23 Mei 2025", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectMonthName(tt.text)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("DetectMonthName(%q) = %q, want error", tt.text, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectMonthName(%q) unexpected error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("DetectMonthName(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectPageNumber(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    int
		wantErr bool
	}{
		{name: "header form", text: "No. 52724 3", want: 3},
		{name: "underscore form", text: "_ 52724 5", want: 5},
		{name: "header form wins over underscore", text: "No. 52724 3 and _ 52724 9", want: 3},
		{name: "zero page is invalid", text: "No. 52724 0", wantErr: true},
		{name: "no match", text: "No valid format here", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectPageNumber(tt.text)
			if tt.wantErr {
				var de *DetectionError
				if !errors.As(err, &de) {
					t.Fatalf("DetectPageNumber(%q) err = %v, want DetectionError", tt.text, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectPageNumber(%q) unexpected error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("DetectPageNumber(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestLooksLikeYearString(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"2025", true},
		{"1900", true},
		{"2100", true},
		{"1899", false},
		{"2101", false},
		{"523", false},
		{"52724", false},
		{"abcd", false},
	}
	for _, tt := range tests {
		if got := LooksLikeYearString(tt.s); got != tt.want {
			t.Errorf("LooksLikeYearString(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}
