package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/weekly-statutes/gazette-tracker/gen/ent"
	"github.com/weekly-statutes/gazette-tracker/internal/ocr"
	"github.com/weekly-statutes/gazette-tracker/internal/repository"
)

// TextScanner is Stage 1: gazette PDF -> text. Satisfied by *ocr.Scanner.
type TextScanner interface {
	Scan(ctx context.Context, path string) (ocr.ScanResult, error)
}

type OCRStage struct {
	Gazettes repository.GazetteRepository
	Jobs     repository.ExtractJobRepository
	Scanner  TextScanner
	Logger   *slog.Logger
}

func NewOCRStage(gazettes repository.GazetteRepository, jobs repository.ExtractJobRepository, scanner TextScanner, logger *slog.Logger) *OCRStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRStage{Gazettes: gazettes, Jobs: jobs, Scanner: scanner, Logger: logger}
}

// Run starts an extract_job for the gazette, extracts its text, and persists
// the result. Notice extraction is NOT called.
func (p *OCRStage) Run(ctx context.Context, gazetteNumber int) (*ent.Gazette, uuid.UUID, ocr.ScanResult, error) {
	row, err := p.Gazettes.GetByNumber(ctx, gazetteNumber)
	if err != nil {
		return nil, uuid.Nil, ocr.ScanResult{}, fmt.Errorf("get gazette %d: %w", gazetteNumber, err)
	}

	job, err := p.Jobs.Start(ctx, row.ID, nil, "PDF")
	if err != nil {
		return row, uuid.Nil, ocr.ScanResult{}, err
	}

	res, err := p.Scanner.Scan(ctx, row.SourcePath)
	if err != nil {
		_ = p.Jobs.MarkFailure(ctx, job.ID, err.Error())
		return row, job.ID, res, err
	}

	if res.Confidence > 0 && res.Confidence < ocr.GazetteConfidenceThreshold {
		p.Logger.Warn("low ocr confidence", "gazette_number", gazetteNumber, "job_id", job.ID, "conf", res.Confidence)
	}

	if err := p.Jobs.MarkOCROK(ctx, job.ID, res.Text, res.Method, res.Confidence); err != nil {
		return row, job.ID, res, err
	}
	return row, job.ID, res, nil
}
