package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/weekly-statutes/gazette-tracker/constants"
	"github.com/weekly-statutes/gazette-tracker/gen/ent"
)

type ExtractJobRepository interface {
	Start(ctx context.Context, gazetteID uuid.UUID, noticeNumber *int, format string) (*ent.ExtractJob, error)
	MarkOCROK(ctx context.Context, jobID uuid.UUID, ocrText, method string, confidence float32) error
	MarkExtracted(ctx context.Context, jobID uuid.UUID, modelName string) error
	MarkFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, log *slog.Logger) ExtractJobRepository {
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) Start(ctx context.Context, gazetteID uuid.UUID, noticeNumber *int, format string) (*ent.ExtractJob, error) {
	job, err := r.ent.ExtractJob.
		Create().
		SetGazetteID(gazetteID).
		SetNillableNoticeNumber(noticeNumber).
		SetFormat(format).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job start failed", "gazette_id", gazetteID, "err", err)
		return nil, err
	}
	r.log.Info("extract_job started", "job_id", job.ID, "gazette_id", gazetteID, "format", format)
	return job, nil
}

func (r *extractJobRepo) MarkOCROK(ctx context.Context, jobID uuid.UUID, ocrText, method string, confidence float32) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetOcrText(ocrText).
		SetOcrMethod(method).
		SetOcrConfidence(confidence).
		SetStatus(string(constants.JobStatusOCROK)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job mark(OCR_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job text extracted", "job_id", jobID, "method", method)
	return nil
}

func (r *extractJobRepo) MarkExtracted(ctx context.Context, jobID uuid.UUID, modelName string) error {
	builder := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusExtractedOK))
	if modelName != "" {
		builder = builder.SetModelName(modelName)
	}
	if _, err := builder.Save(ctx); err != nil {
		r.log.Error("extract_job mark(EXTRACT_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished", "job_id", jobID)
	return nil
}

func (r *extractJobRepo) MarkFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job mark(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job failed", "job_id", jobID, "error", message)
	return nil
}
