package common

import (
	"strings"
	"testing"
)

func TestGazetteNumber(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		ok    bool
	}{
		{"current range", 52724, true},
		{"lower bound", 50000, true},
		{"upper bound", 59999, true},
		{"too small", 49999, false},
		{"too large", 60000, false},
		{"int32", int32(52724), true},
		{"not an integer", "52724", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GazetteNumber("gazette_number", tt.value)
			if (err == nil) != tt.ok {
				t.Fatalf("GazetteNumber(%v) error = %v, want ok=%v", tt.value, err, tt.ok)
			}
		})
	}
}

func TestNoticeNumber(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		ok    bool
	}{
		{"typical", 3228, true},
		{"minimum", 1, true},
		{"maximum", 9999, true},
		{"zero", 0, false},
		{"five digits", 10000, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NoticeNumber("notice_number", tt.value)
			if (err == nil) != tt.ok {
				t.Fatalf("NoticeNumber(%v) error = %v, want ok=%v", tt.value, err, tt.ok)
			}
		})
	}
}

func TestISODate(t *testing.T) {
	if err := ISODate("date", "2025-05-23"); err != nil {
		t.Fatalf("valid date rejected: %v", err)
	}
	for _, bad := range []string{"23-05-2025", "2025/05/23", "2025-13-01", "not a date"} {
		if err := ISODate("date", bad); err == nil {
			t.Errorf("ISODate(%q) accepted", bad)
		}
	}
}

func TestValidatorCollectsErrors(t *testing.T) {
	v := NewValidator().
		Field("gazette_number", 1, GazetteNumber).
		Field("notice_number", 0, NoticeNumber).
		Field("path", "", Required)
	if !v.HasErrors() {
		t.Fatal("expected errors")
	}
	if got := len(v.Errors()); got != 3 {
		t.Fatalf("got %d errors, want 3", got)
	}
	msg := v.ErrorMessage()
	for _, field := range []string{"gazette_number", "notice_number", "path"} {
		if !strings.Contains(msg, field) {
			t.Errorf("error message missing field %q: %s", field, msg)
		}
	}
}

func TestValidatorNoErrors(t *testing.T) {
	v := NewValidator().
		Field("gazette_number", 52724, GazetteNumber).
		Field("notice_number", 3228, NoticeNumber)
	if v.HasErrors() {
		t.Fatalf("unexpected errors: %s", v.ErrorMessage())
	}
	if err := ValidateAndReturnError(v); err != nil {
		t.Fatalf("ValidateAndReturnError = %v", err)
	}
}
