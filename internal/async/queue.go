package async

import (
	"context"
	"time"
)

// Job is one gazette to process. Extend as needed later (retry, trace, etc).
type Job struct {
	GazetteNumber int
	NoticeNumbers []int
	Force         bool // enqueue even if deduplicated
	SubmittedAt   time.Time
	TraceID       string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
