// Package gazette implements the gazette-text classification and
// field-extraction engine: given raw OCR or text-layer output from a
// Government Gazette PDF, it decides which document shape it is looking at
// and extracts one structured Notice per (gazette, notice number) pair.
package gazette

import (
	"context"

	"github.com/weekly-statutes/gazette-tracker/constants"
)

// Notice is the canonical output record for one published gazette item.
// A Notice is constructed all-or-nothing by GetNotice; partially valid
// notices do not exist.
type Notice struct {
	NoticeNumber  int
	GazetteNumber int

	// Publication date, decomposed because the source text yields the three
	// parts independently and a partial failure must be attributable to one
	// field.
	PublishDay       int
	PublishMonthName string
	PublishYear      int

	// PageNumber is nil when the document shape cannot recover it reliably.
	PageNumber *int
	// ISSN is nil when the scan omits or corrupts it.
	ISSN *string

	MajorType constants.MajorType
	MinorType string

	// Description is the human-readable notice text, typically summarized
	// from the source passage.
	Description string
}

// Act is the law-name/number/year triple extracted when the minor type
// cannot be determined by a literal phrase match. It lives only long enough
// to build the minor-type string.
type Act struct {
	// Whom is the law's subject, e.g. "Road Accident Fund".
	Whom string
	// Number and Year may be absent for special-cased laws where only the
	// body name is known.
	Number *int
	Year   *int
}

// ParsedEntry is one row of a tabular notice list, reconstructed from a
// logical line.
type ParsedEntry struct {
	LogicalLine       string
	NoticeNumber      int
	LawDescription    string
	LawNumber         *int
	LawYear           *int
	GazetteNumber     int
	PageNumber        int
	NoticeDescription string
}

// Summarizer condenses notice text for the bulletin. Implementations must be
// deterministic enough that repeated calls on identical input are cacheable.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// SummarizeFn adapts a plain function to the Summarizer interface.
type SummarizeFn func(ctx context.Context, text string) (string, error)

func (f SummarizeFn) Summarize(ctx context.Context, text string) (string, error) {
	return f(ctx, text)
}

func intPtr(n int) *int { return &n }
