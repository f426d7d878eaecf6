package constants

import "fmt"

// MajorType is the coarse classification of a gazette notice, inferred from
// the numeric range its notice number falls in.
type MajorType string

// Stable values (store these exact strings in DB).
const (
	Proclamation     MajorType = "PROCLAMATION"
	BoardNotice      MajorType = "BOARD_NOTICE"
	GeneralNotice    MajorType = "GENERAL_NOTICE"
	GovernmentNotice MajorType = "GOVERNMENT_NOTICE"
)

var allMajorTypes = []MajorType{
	Proclamation,
	BoardNotice,
	GeneralNotice,
	GovernmentNotice,
}

// AllMajorTypes returns every MajorType value.
func AllMajorTypes() []MajorType {
	out := make([]MajorType, len(allMajorTypes))
	copy(out, allMajorTypes)
	return out
}

// MajorTypeNames returns the stable string values, for enum validation.
func MajorTypeNames() []string {
	out := make([]string, len(allMajorTypes))
	for i, t := range allMajorTypes {
		out[i] = string(t)
	}
	return out
}

// noticeNumberRange is a half-open interval [Lo, Hi).
type noticeNumberRange struct {
	Lo, Hi int
	Type   MajorType
}

// The gazette's numbering convention. Ranges must not overlap.
var noticeNumberRanges = []noticeNumberRange{
	{200, 300, Proclamation},
	{700, 900, BoardNotice},
	{3000, 4000, GeneralNotice},
	{6000, 7000, GovernmentNotice},
}

// MajorTypeFromNoticeNumber classifies a notice number, or returns an
// *UnknownMajorTypeError when the number falls outside every known range.
func MajorTypeFromNoticeNumber(n int) (MajorType, error) {
	for _, r := range noticeNumberRanges {
		if n >= r.Lo && n < r.Hi {
			return r.Type, nil
		}
	}
	return "", &UnknownMajorTypeError{NoticeNumber: n}
}

// UnknownMajorTypeError reports a notice number outside every numbering range.
type UnknownMajorTypeError struct {
	NoticeNumber int
}

func (e *UnknownMajorTypeError) Error() string {
	return fmt.Sprintf("unknown major type for notice number %d", e.NoticeNumber)
}

// bulletinHeaders maps each major type to its bulletin section header.
var bulletinHeaders = map[MajorType]string{
	Proclamation:     "PROCLAMATIONS AND NOTICES",
	BoardNotice:      "PROCLAMATIONS AND NOTICES",
	GeneralNotice:    "PROCLAMATIONS AND NOTICES",
	GovernmentNotice: "PROCLAMATIONS AND NOTICES",
}

// abbreviations maps each major type to the citation abbreviation used in
// bulletin entries, e.g. "GenN 3228 in GG 52724".
var abbreviations = map[MajorType]string{
	Proclamation:     "Proc",
	BoardNotice:      "BN",
	GeneralNotice:    "GenN",
	GovernmentNotice: "GN",
}

// BulletinHeader returns the bulletin section header for t.
func BulletinHeader(t MajorType) string {
	return bulletinHeaders[t]
}

// Abbreviation returns the citation abbreviation for t.
func Abbreviation(t MajorType) string {
	return abbreviations[t]
}

func init() {
	// Refuse to start with an incomplete mapping rather than produce a
	// bulletin with missing headers at render time.
	for _, t := range allMajorTypes {
		if _, ok := bulletinHeaders[t]; !ok {
			panic(fmt.Sprintf("constants: no bulletin header for %s", t))
		}
		if _, ok := abbreviations[t]; !ok {
			panic(fmt.Sprintf("constants: no abbreviation for %s", t))
		}
	}
	for i, a := range noticeNumberRanges {
		if a.Lo >= a.Hi {
			panic(fmt.Sprintf("constants: empty notice number range for %s", a.Type))
		}
		for _, b := range noticeNumberRanges[i+1:] {
			if a.Lo < b.Hi && b.Lo < a.Hi {
				panic(fmt.Sprintf("constants: overlapping notice number ranges %s/%s", a.Type, b.Type))
			}
		}
	}
}
