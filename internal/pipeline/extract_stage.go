package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/weekly-statutes/gazette-tracker/gen/ent"
	"github.com/weekly-statutes/gazette-tracker/internal/bulletin"
	"github.com/weekly-statutes/gazette-tracker/internal/gazette"
	"github.com/weekly-statutes/gazette-tracker/internal/repository"
)

type ExtractStage struct {
	Notices    repository.NoticeRepository
	Jobs       repository.ExtractJobRepository
	Summarizer gazette.Summarizer
	ModelName  string
	Logger     *slog.Logger
}

func NewExtractStage(notices repository.NoticeRepository, jobs repository.ExtractJobRepository, summarizer gazette.Summarizer, modelName string, logger *slog.Logger) *ExtractStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractStage{
		Notices:    notices,
		Jobs:       jobs,
		Summarizer: summarizer,
		ModelName:  modelName,
		Logger:     logger,
	}
}

// Run extracts each annotated notice from the scanned gazette text and stores
// it. A notice that cannot be decoded becomes an Issue instead of failing the
// whole gazette. The job fails only when every notice fails.
func (p *ExtractStage) Run(ctx context.Context, jobID uuid.UUID, g *ent.Gazette, text string, pages []string, noticeNumbers []int) ([]gazette.Notice, []bulletin.Issue, error) {
	var stored []gazette.Notice
	var issues []bulletin.Issue

	for _, n := range noticeNumbers {
		notice, err := gazette.GetNotice(ctx, text, pages, g.GazetteNumber, n, p.Summarizer)
		if err != nil {
			p.Logger.Warn("notice extraction failed",
				"gazette_number", g.GazetteNumber,
				"notice_number", n,
				"detection_failure", gazette.IsDetectionFailure(err),
				"err", err,
			)
			issues = append(issues, bulletin.Issue{
				GazetteNumber: g.GazetteNumber,
				NoticeNumber:  n,
				Reason:        err.Error(),
			})
			continue
		}

		if _, err := p.Notices.Upsert(ctx, g.ID, notice); err != nil {
			return stored, issues, fmt.Errorf("store notice %d: %w", n, err)
		}
		stored = append(stored, notice)
	}

	if len(stored) == 0 && len(noticeNumbers) > 0 {
		msg := fmt.Sprintf("all %d notices failed extraction", len(noticeNumbers))
		_ = p.Jobs.MarkFailure(ctx, jobID, msg)
		return stored, issues, nil
	}
	if err := p.Jobs.MarkExtracted(ctx, jobID, p.ModelName); err != nil {
		return stored, issues, err
	}
	return stored, issues, nil
}
