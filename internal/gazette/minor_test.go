package gazette

import (
	"errors"
	"testing"
)

func TestResolveMinorTypeDepartmentPhrases(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "sports arts and culture",
			text: "Department of Sports, Arts and Culture notice",
			want: "Department of Sports, Arts and Culture",
		},
		{
			name: "astro tourism",
			text: "National Astro-Tourism initiative",
			want: "Department of Tourism",
		},
		{
			name: "transport",
			text: "Department of Transport regulations",
			want: "Department of Transport",
		},
		{
			name: "phrase matching is case insensitive",
			text: "DEPARTMENT OF TRANSPORT REGULATIONS",
			want: "Department of Transport",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveMinorType(tt.text, nil, 0)
			if err != nil {
				t.Fatalf("ResolveMinorType(%q): %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ResolveMinorType(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestResolveMinorTypeViaActDecoder(t *testing.T) {
	got, err := ResolveMinorType("Road Accident Fund Act (56/1996): Adjustment", nil, 0)
	if err != nil {
		t.Fatalf("ResolveMinorType: %v", err)
	}
	if got != "Road Accident Fund ACT 56 of 1996" {
		t.Errorf("minor type = %q", got)
	}
}

func TestResolveMinorTypeExchangeControl(t *testing.T) {
	// "Currency and Exchanges" is not in the department phrase table; it
	// resolves through the act decoder's special case.
	got, err := ResolveMinorType("Authority for the purpose of Exchange Control", nil, 0)
	if err != nil {
		t.Fatalf("ResolveMinorType: %v", err)
	}
	if got != "Currency and Exchanges ACT 9 of 1933" {
		t.Errorf("minor type = %q", got)
	}
}

func TestResolveMinorTypeNotFound(t *testing.T) {
	_, err := ResolveMinorType("Some random text without act information", nil, 0)
	var anf *ActNotFoundError
	if !errors.As(err, &anf) {
		t.Fatalf("err = %v, want ActNotFoundError", err)
	}
}

func TestFormatMinorType(t *testing.T) {
	if got := FormatMinorType(actValue("Skills Development", 97, 1998)); got != "Skills Development ACT 97 of 1998" {
		t.Errorf("FormatMinorType = %q", got)
	}
	if got := FormatMinorType(Act{Whom: "Department of Mineral Resources and Energy"}); got != "Department of Mineral Resources and Energy" {
		t.Errorf("FormatMinorType department-only = %q", got)
	}
}
