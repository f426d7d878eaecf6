package gazette

import (
	"context"
	"errors"
	"strings"

	"github.com/weekly-statutes/gazette-tracker/constants"
)

// GetNotice extracts the Notice identified by (gazetteNumber, noticeNumber)
// from OCR'd gazette text. The shape classifier picks the extraction path,
// the field detectors recover the publication metadata, and the description
// is passed through the summarizer before it lands on the record. Extraction
// is all or nothing: on any failure a typed error comes back and no partial
// Notice exists.
func GetNotice(ctx context.Context, text string, pages []string, gazetteNumber, noticeNumber int, summarizer Summarizer) (Notice, error) {
	majorType, err := constants.MajorTypeFromNoticeNumber(noticeNumber)
	if err != nil {
		return Notice{}, err
	}

	day, err := DetectDay(text)
	if err != nil {
		return Notice{}, err
	}
	year, err := DetectYear(text)
	if err != nil {
		return Notice{}, err
	}
	monthName, err := DetectMonthName(text)
	if err != nil {
		return Notice{}, err
	}

	// ISSN is optional on the record; some scans omit or corrupt it.
	var issn *string
	if v, err := DetectISSN(text); err == nil {
		issn = &v
	}

	var (
		pageNumber  *int
		minorType   string
		description string
	)

	switch Classify(text) {
	case ShapeLongList:
		entry, err := selectEntry(ParseGazetteDocument(text), gazetteNumber, noticeNumber)
		if err != nil {
			return Notice{}, err
		}
		pageNumber = intPtr(entry.PageNumber)
		minorType = entryMinorType(entry)
		description = entry.NoticeDescription

	case ShapeRList:
		entry, err := selectEntry(ParseRListDocument(text), gazetteNumber, noticeNumber)
		if err != nil {
			return Notice{}, err
		}
		pageNumber = intPtr(entry.PageNumber)
		minorType = entryMinorType(entry)
		description = entry.NoticeDescription

	default:
		// Single-notice document: the page-number detector can fail on
		// shapes that never print the footer, so its absence is tolerated.
		if p, err := DetectPageNumber(text); err == nil {
			pageNumber = &p
		}
		minorType, err = ResolveMinorType(text, pages, noticeNumber)
		if err != nil {
			return Notice{}, err
		}
		description = text
	}

	if summarizer != nil {
		description, err = summarizer.Summarize(ctx, description)
		if err != nil {
			return Notice{}, err
		}
	}
	description = strings.TrimSpace(description)

	return Notice{
		NoticeNumber:     noticeNumber,
		GazetteNumber:    gazetteNumber,
		PublishDay:       day,
		PublishMonthName: monthName,
		PublishYear:      year,
		PageNumber:       pageNumber,
		ISSN:             issn,
		MajorType:        majorType,
		MinorType:        minorType,
		Description:      description,
	}, nil
}

// selectEntry picks the first entry for the requested notice number and
// checks its embedded gazette number against the caller's. A mismatch is a
// hard failure rather than a silent correction.
func selectEntry(entries []ParsedEntry, gazetteNumber, noticeNumber int) (ParsedEntry, error) {
	entry, err := findEntry(entries, noticeNumber)
	if err != nil {
		return ParsedEntry{}, err
	}
	if entry.GazetteNumber != gazetteNumber {
		return ParsedEntry{}, &GazetteMismatchError{Want: gazetteNumber, Got: entry.GazetteNumber}
	}
	return entry, nil
}

// entryMinorType derives the minor type for a tabular entry: a department
// phrase occurring in the row wins, otherwise the law fields captured from
// the row render as the heading.
func entryMinorType(entry ParsedEntry) string {
	lower := strings.ToLower(entry.LogicalLine)
	for _, d := range departmentPhrases {
		if strings.Contains(lower, d.phrase) {
			return d.minor
		}
	}
	return FormatMinorType(Act{Whom: entry.LawDescription, Number: entry.LawNumber, Year: entry.LawYear})
}

// IsDetectionFailure reports whether err belongs to the extraction error
// taxonomy, as opposed to an infrastructure failure such as the summarizer's
// transport erroring out.
func IsDetectionFailure(err error) bool {
	var (
		de *DetectionError
		ae *ActNotFoundError
		ee *EntryNotFoundError
		ge *GazetteMismatchError
		ue *constants.UnknownMajorTypeError
	)
	return errors.As(err, &de) || errors.As(err, &ae) || errors.As(err, &ee) || errors.As(err, &ge) || errors.As(err, &ue)
}
