package constants

import (
	"errors"
	"testing"
)

func TestMajorTypeFromNoticeNumber(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want MajorType
	}{
		{"proclamation low bound", 200, Proclamation},
		{"proclamation high", 299, Proclamation},
		{"board notice low bound", 700, BoardNotice},
		{"board notice mid", 850, BoardNotice},
		{"board notice high", 899, BoardNotice},
		{"general notice low bound", 3000, GeneralNotice},
		{"general notice mid", 3228, GeneralNotice},
		{"general notice high", 3999, GeneralNotice},
		{"government notice low bound", 6000, GovernmentNotice},
		{"government notice mid", 6500, GovernmentNotice},
		{"government notice high", 6999, GovernmentNotice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MajorTypeFromNoticeNumber(tt.n)
			if err != nil {
				t.Fatalf("MajorTypeFromNoticeNumber(%d): %v", tt.n, err)
			}
			if got != tt.want {
				t.Errorf("MajorTypeFromNoticeNumber(%d) = %s, want %s", tt.n, got, tt.want)
			}
		})
	}
}

func TestMajorTypeFromNoticeNumberUnknown(t *testing.T) {
	for _, n := range []int{0, 199, 300, 699, 900, 2999, 4000, 5000, 5999, 7000, 9999, -3} {
		_, err := MajorTypeFromNoticeNumber(n)
		if err == nil {
			t.Errorf("MajorTypeFromNoticeNumber(%d): want error, got none", n)
			continue
		}
		var unknown *UnknownMajorTypeError
		if !errors.As(err, &unknown) {
			t.Errorf("MajorTypeFromNoticeNumber(%d): error %v is not *UnknownMajorTypeError", n, err)
		} else if unknown.NoticeNumber != n {
			t.Errorf("UnknownMajorTypeError.NoticeNumber = %d, want %d", unknown.NoticeNumber, n)
		}
	}
}

// Every in-range number must map to exactly one type: walk the full numeric
// space once and count classifications.
func TestMajorTypeRangesDoNotOverlap(t *testing.T) {
	for n := 0; n < 10000; n++ {
		matches := 0
		for _, r := range noticeNumberRanges {
			if n >= r.Lo && n < r.Hi {
				matches++
			}
		}
		if matches > 1 {
			t.Fatalf("notice number %d matched %d ranges", n, matches)
		}
	}
}

func TestMappingsCoverAllMajorTypes(t *testing.T) {
	for _, mt := range AllMajorTypes() {
		if BulletinHeader(mt) == "" {
			t.Errorf("no bulletin header for %s", mt)
		}
		if Abbreviation(mt) == "" {
			t.Errorf("no abbreviation for %s", mt)
		}
	}
}

func TestAbbreviations(t *testing.T) {
	tests := []struct {
		t    MajorType
		want string
	}{
		{GeneralNotice, "GenN"},
		{GovernmentNotice, "GN"},
		{BoardNotice, "BN"},
		{Proclamation, "Proc"},
	}
	for _, tt := range tests {
		if got := Abbreviation(tt.t); got != tt.want {
			t.Errorf("Abbreviation(%s) = %q, want %q", tt.t, got, tt.want)
		}
	}
}
