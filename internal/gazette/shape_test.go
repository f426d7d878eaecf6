package gazette

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Shape
	}{
		{
			name: "three numbered lines is a long list",
			text: "Some header text\n1234 First notice\n5678 Second notice\n9012 Third notice\nMore text",
			want: ShapeLongList,
		},
		{
			name: "two numbered lines stays single",
			text: "Some header text\n1234 First notice\n5678 Second notice",
			want: ShapeSingle,
		},
		{
			name: "numbered lines need not be consecutive",
			text: "1234 First notice\nOCR noise in between\n5678 Second notice\nmore noise\n9012 Third notice",
			want: ShapeLongList,
		},
		{
			name: "three digit notice numbers count",
			text: "712 Board notice one\n713 Board notice two\n714 Board notice three",
			want: ShapeLongList,
		},
		{
			name: "five digit numbers do not count",
			text: "52724 not a notice\n52725 not a notice\n52726 not a notice",
			want: ShapeSingle,
		},
		{
			name: "two r lines is an r list",
			text: "header\nR. 101 Customs amendment\nR. 102 Excise amendment",
			want: ShapeRList,
		},
		{
			name: "single r line stays single",
			text: "header\nR. 101 Customs amendment",
			want: ShapeSingle,
		},
		{
			name: "long list wins over r list",
			text: "R. 101 one\nR. 102 two\n1234 a\n5678 b\n9012 c",
			want: ShapeLongList,
		},
		{
			name: "empty text",
			text: "",
			want: ShapeSingle,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShapeString(t *testing.T) {
	if ShapeSingle.String() != "single" || ShapeLongList.String() != "long-list" || ShapeRList.String() != "r-list" {
		t.Error("unexpected Shape string values")
	}
}
