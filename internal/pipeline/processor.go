// Package pipeline coordinates the two extraction stages: text scan of the
// gazette PDF, then per-notice field extraction into the database.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/weekly-statutes/gazette-tracker/internal/bulletin"
	"github.com/weekly-statutes/gazette-tracker/internal/gazette"
)

type Processor struct {
	Logger  *slog.Logger
	OCR     *OCRStage
	Extract *ExtractStage
}

func NewProcessor(logger *slog.Logger, ocr *OCRStage, extract *ExtractStage) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, OCR: ocr, Extract: extract}
}

// ProcessGazette scans the gazette's PDF (creating/advancing extract_job),
// then decodes and stores each annotated notice.
// Returns the jobID started by the scan stage.
func (p *Processor) ProcessGazette(ctx context.Context, gazetteNumber int, noticeNumbers []int) (uuid.UUID, []gazette.Notice, []bulletin.Issue, error) {
	g, jobID, res, err := p.OCR.Run(ctx, gazetteNumber)
	if err != nil {
		p.Logger.Error("processor.scan.failed", "gazette_number", gazetteNumber, "err", err)
		return jobID, nil, nil, err
	}
	p.Logger.Info("processor.scan.ok",
		"gazette_number", gazetteNumber,
		"job_id", jobID,
		"method", res.Method,
		"pages", len(res.Pages),
		"confidence", res.Confidence,
	)

	stored, issues, err := p.Extract.Run(ctx, jobID, g, res.Text, res.Pages, noticeNumbers)
	if err != nil {
		p.Logger.Error("processor.extract.failed", "job_id", jobID, "err", err)
		return jobID, stored, issues, err
	}
	p.Logger.Info("processor.extract.ok", "job_id", jobID, "stored", len(stored), "issues", len(issues))
	return jobID, stored, issues, nil
}
