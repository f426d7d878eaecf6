package gazette

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func actValue(whom string, number, year int) Act {
	return Act{Whom: whom, Number: &number, Year: &year}
}

func assertAct(t *testing.T, got, want Act) {
	t.Helper()
	if got.Whom != want.Whom {
		t.Errorf("whom = %q, want %q", got.Whom, want.Whom)
	}
	switch {
	case want.Number == nil:
		if got.Number != nil {
			t.Errorf("number = %d, want nil", *got.Number)
		}
	case got.Number == nil:
		t.Errorf("number = nil, want %d", *want.Number)
	case *got.Number != *want.Number:
		t.Errorf("number = %d, want %d", *got.Number, *want.Number)
	}
	switch {
	case want.Year == nil:
		if got.Year != nil {
			t.Errorf("year = %d, want nil", *got.Year)
		}
	case got.Year == nil:
		t.Errorf("year = nil, want %d", *want.Year)
	case *got.Year != *want.Year:
		t.Errorf("year = %d, want %d", *got.Year, *want.Year)
	}
}

func TestDecodeActCascade(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Act
	}{
		{
			name: "english parenthetical",
			text: "Road Accident Fund Act (56/1996)",
			want: actValue("Road Accident Fund", 56, 1996),
		},
		{
			name: "magistrates courts straight apostrophe",
			text: "By direction under the Magistrates' Courts Act (32/1944)",
			want: actValue("Magistrates' Courts", 32, 1944),
		},
		{
			name: "magistrates courts curly apostrophe",
			text: "Magistrates’ Courts Act (32/1944)",
			want: actValue("Magistrates’ Courts", 32, 1944),
		},
		{
			name: "semicolon form",
			text: "Currency and Exchanges-Act; 1933 (Act No: 9 of 1933)",
			want: actValue("Currency and Exchanges", 9, 1933),
		},
		{
			name: "no qualified form",
			text: "Skills Development Act, No. 97 of 1998",
			want: actValue("Skills Development", 97, 1998),
		},
		{
			name: "simple numeric form",
			text: "National Road Traffic Act, 93 of 1996",
			want: actValue("National Road Traffic", 93, 1996),
		},
		{
			name: "year before number form",
			text: "Disaster Management Act, 2002 (Act No. 57 of 2002)",
			want: actValue("Disaster Management", 57, 2002),
		},
		{
			name: "act no parenthetical",
			text: "Fertilizers, Farm Feeds, Seeds and Remedies Act (Act No. 36 of 1947)",
			want: actValue("Fertilizers, Farm Feeds, Seeds and Remedies", 36, 1947),
		},
		{
			name: "afrikaans wet prefix",
			text: "Wet op Landdroshowe (32/1944)",
			want: actValue("Wet op Landdroshowe", 32, 1944),
		},
		{
			name: "afrikaans wet suffix",
			text: "Vaardigheidsontwikkelingswet, No. 97 van 1998",
			want: actValue("Vaardigheidsontwikkelingswet", 97, 1998),
		},
		{
			name: "afrikaans wet suffix with parentheses",
			text: "Vaardigheidsontwikkelingswet (No. 97 van 1998)",
			want: actValue("Vaardigheidsontwikkelingswet", 97, 1998),
		},
		{
			name: "all caps legacy form",
			text: "COMPETITION ACT, 1998 (ACT NO: 89 OF 1998)",
			want: actValue("COMPETITION", 89, 1998),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeAct(tt.text, nil, 0)
			if err != nil {
				t.Fatalf("DecodeAct(%q): %v", tt.text, err)
			}
			assertAct(t, got, tt.want)
		})
	}
}

func TestDecodeActExchangeControlSpecialCase(t *testing.T) {
	texts := []string{
		"with limited authority for the purpose of Exchange Control Regulations",
		"Authority for the purpose of Exchange Control",
	}
	for _, text := range texts {
		got, err := DecodeAct(text, nil, 0)
		if err != nil {
			t.Fatalf("DecodeAct(%q): %v", text, err)
		}
		assertAct(t, got, actValue("Currency and Exchanges", 9, 1933))
	}
}

func TestDecodeActMineralResourcesSecondaryPage(t *testing.T) {
	pages := []string{
		"cover page with nothing useful",
		"DEPARTMENT OF MINERAL RESOURCES AND ENERGY invitation to comment",
	}
	got, err := DecodeAct("no act sentence on the anchor page", pages, 0)
	if err != nil {
		t.Fatalf("DecodeAct: %v", err)
	}
	assertAct(t, got, Act{Whom: "Department of Mineral Resources and Energy"})
}

func TestDecodeActRListDelegation(t *testing.T) {
	secondary := "R. 101 Customs and Excise Act (91/1964): Amendment of Schedule\n" +
		"R. 102 Income Tax Act (58/1962): Rate notice\n"
	got, err := DecodeAct("anchor page without act text", []string{"cover", secondary}, 102)
	if err != nil {
		t.Fatalf("DecodeAct: %v", err)
	}
	assertAct(t, got, actValue("Income Tax", 58, 1962))
}

func TestDecodeActNotFound(t *testing.T) {
	_, err := DecodeAct("Some random text without act information", nil, 0)
	var anf *ActNotFoundError
	if !errors.As(err, &anf) {
		t.Fatalf("err = %v, want ActNotFoundError", err)
	}
}

func TestDecodeActIdempotent(t *testing.T) {
	text := "Road Accident Fund Act (56/1996): Adjustment of statutory limit"
	first, err := DecodeAct(text, nil, 0)
	if err != nil {
		t.Fatalf("first decode: %v", err)
	}
	second, err := DecodeAct(text, nil, 0)
	if err != nil {
		t.Fatalf("second decode: %v", err)
	}
	if !reflect.DeepEqual(derefAct(first), derefAct(second)) {
		t.Errorf("decode not idempotent: %+v vs %+v", first, second)
	}
}

type flatAct struct {
	whom         string
	number, year int
	hasNum, hasY bool
}

func derefAct(a Act) flatAct {
	f := flatAct{whom: a.Whom}
	if a.Number != nil {
		f.number, f.hasNum = *a.Number, true
	}
	if a.Year != nil {
		f.year, f.hasY = *a.Year, true
	}
	return f
}

func TestDecodeActRoundTrip(t *testing.T) {
	names := []string{"Road Accident Fund", "Skills Development", "South African Weather Service", "Astro-Tourism"}
	for _, name := range names {
		for _, tc := range []struct{ number, year int }{{56, 1996}, {9, 1933}, {108, 2025}} {
			text := fmt.Sprintf("%s Act (%d/%d)", name, tc.number, tc.year)
			got, err := DecodeAct(text, nil, 0)
			if err != nil {
				t.Fatalf("DecodeAct(%q): %v", text, err)
			}
			assertAct(t, got, actValue(name, tc.number, tc.year))
		}
	}
}

func TestActDescription(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "plain trailing description",
			content: "Road Accident Fund Act (56/1996): Adjustment of statutory limit",
			want:    "Adjustment of statutory limit",
		},
		{
			name:    "quoted abbreviation stripped",
			content: `Land Transport Act (5/2009) ("the LTA"): Publication for comment`,
			want:    "Publication for comment",
		},
		{
			name:    "no trailing text",
			content: "Road Accident Fund Act (56/1996)",
			want:    "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, end, ok := matchAct(tt.content)
			if !ok {
				t.Fatalf("matchAct(%q) did not match", tt.content)
			}
			if got := actDescription(tt.content, end); got != tt.want {
				t.Errorf("actDescription = %q, want %q", got, tt.want)
			}
		})
	}
}
