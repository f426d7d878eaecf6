package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/weekly-statutes/gazette-tracker/constants"
	"github.com/weekly-statutes/gazette-tracker/gen/ent"
	entgazette "github.com/weekly-statutes/gazette-tracker/gen/ent/gazette"
	entnotice "github.com/weekly-statutes/gazette-tracker/gen/ent/notice"
	"github.com/weekly-statutes/gazette-tracker/internal/gazette"
)

type NoticeRepository interface {
	Upsert(ctx context.Context, gazetteID uuid.UUID, notice gazette.Notice) (*ent.Notice, error)
	Get(ctx context.Context, gazetteNumber, noticeNumber int) (gazette.Notice, error)
	ListByGazette(ctx context.Context, gazetteID uuid.UUID) ([]*ent.Notice, error)
	// ListForWeek returns domain notices for gazettes published in [from, to],
	// ordered by notice number, ready for bulletin assembly.
	ListForWeek(ctx context.Context, from, to time.Time) ([]gazette.Notice, error)
}

type noticeRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewNoticeRepository(client *ent.Client, logger *slog.Logger) NoticeRepository {
	return &noticeRepository{
		client: client,
		logger: logger,
	}
}

// Upsert stores one extracted notice. Re-extracting the same
// (gazette, notice number) pair replaces the stored fields.
func (r *noticeRepository) Upsert(ctx context.Context, gazetteID uuid.UUID, notice gazette.Notice) (*ent.Notice, error) {
	existing, err := r.client.Notice.Query().
		Where(
			entnotice.GazetteID(gazetteID),
			entnotice.NoticeNumber(notice.NoticeNumber),
		).
		Only(ctx)
	if err == nil {
		n, err := existing.Update().
			SetMajorType(string(notice.MajorType)).
			SetMinorType(notice.MinorType).
			SetNillablePage(notice.PageNumber).
			SetDescription(notice.Description).
			Save(ctx)
		if err != nil {
			r.logger.Error("failed to update notice", "gazette_id", gazetteID, "notice_number", notice.NoticeNumber, "error", err)
			return nil, err
		}
		return n, nil
	}
	if !ent.IsNotFound(err) {
		r.logger.Error("failed to query notice", "gazette_id", gazetteID, "notice_number", notice.NoticeNumber, "error", err)
		return nil, err
	}

	n, err := r.client.Notice.Create().
		SetGazetteID(gazetteID).
		SetNoticeNumber(notice.NoticeNumber).
		SetMajorType(string(notice.MajorType)).
		SetMinorType(notice.MinorType).
		SetNillablePage(notice.PageNumber).
		SetDescription(notice.Description).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create notice", "gazette_id", gazetteID, "notice_number", notice.NoticeNumber, "error", err)
		return nil, err
	}
	r.logger.Info("notice stored", "notice_id", n.ID, "gazette_id", gazetteID, "notice_number", notice.NoticeNumber)
	return n, nil
}

func (r *noticeRepository) Get(ctx context.Context, gazetteNumber, noticeNumber int) (gazette.Notice, error) {
	n, err := r.client.Notice.Query().
		Where(
			entnotice.NoticeNumber(noticeNumber),
			entnotice.HasGazetteWith(entgazette.GazetteNumber(gazetteNumber)),
		).
		WithGazette().
		Only(ctx)
	if err != nil {
		return gazette.Notice{}, err
	}
	return toDomainNotice(n)
}

func (r *noticeRepository) ListByGazette(ctx context.Context, gazetteID uuid.UUID) ([]*ent.Notice, error) {
	ns, err := r.client.Notice.Query().
		Where(entnotice.GazetteID(gazetteID)).
		Order(entnotice.ByNoticeNumber()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list notices", "gazette_id", gazetteID, "error", err)
		return nil, err
	}
	return ns, nil
}

func (r *noticeRepository) ListForWeek(ctx context.Context, from, to time.Time) ([]gazette.Notice, error) {
	ns, err := r.client.Notice.Query().
		Where(entnotice.HasGazetteWith(
			entgazette.PublicationDateGTE(from),
			entgazette.PublicationDateLTE(to),
		)).
		WithGazette().
		Order(entnotice.ByNoticeNumber()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list notices for week", "from", from, "to", to, "error", err)
		return nil, err
	}

	result := make([]gazette.Notice, 0, len(ns))
	for _, n := range ns {
		dn, err := toDomainNotice(n)
		if err != nil {
			r.logger.Warn("skipping notice with invalid stored fields", "notice_id", n.ID, "error", err)
			continue
		}
		result = append(result, dn)
	}
	return result, nil
}

// toDomainNotice rebuilds a gazette.Notice from its stored row. The gazette
// edge must be loaded.
func toDomainNotice(n *ent.Notice) (gazette.Notice, error) {
	g := n.Edges.Gazette
	major, err := majorTypeFromString(n.MajorType, n.NoticeNumber)
	if err != nil {
		return gazette.Notice{}, err
	}
	return gazette.Notice{
		NoticeNumber:     n.NoticeNumber,
		GazetteNumber:    g.GazetteNumber,
		PublishDay:       g.PublicationDate.Day(),
		PublishMonthName: g.PublicationDate.Month().String(),
		PublishYear:      g.PublicationDate.Year(),
		PageNumber:       n.Page,
		ISSN:             g.Issn,
		MajorType:        major,
		MinorType:        n.MinorType,
		Description:      n.Description,
	}, nil
}

func majorTypeFromString(s string, noticeNumber int) (constants.MajorType, error) {
	for _, t := range constants.AllMajorTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", &constants.UnknownMajorTypeError{NoticeNumber: noticeNumber}
}
