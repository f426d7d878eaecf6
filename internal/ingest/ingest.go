// Package ingest brings gazette PDFs from the filesystem into the database.
// A file is accepted when its name carries a recognizable gazette number and
// an annotation sidecar supplies the publication date.
package ingest

import (
	"context"
	"time"
)

// IngestionResult is the per-file ingest outcome.
type IngestionResult struct {
	SourcePath    string
	GazetteID     string
	GazetteNumber int
	NoticeNumbers []int
	Deduplicated  bool
	HashHex       string
	IngestedAt    time.Time
	Err           string
}

// DirStats summarizes a directory ingest.
type DirStats struct {
	Scanned      uint32
	Matched      uint32
	Succeeded    uint32
	Deduplicated uint32
	Failed       uint32
}

// Ingestor is the behavior the service depends on.
type Ingestor interface {
	// IngestPath ingests a single gazette PDF.
	IngestPath(ctx context.Context, path string) (IngestionResult, error)
	// IngestDirectory ingests all gazette PDFs under root.
	IngestDirectory(ctx context.Context, root string, skipHidden bool) ([]IngestionResult, DirStats, error)
}
