package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/weekly-statutes/gazette-tracker/gen/ent"
	entgazette "github.com/weekly-statutes/gazette-tracker/gen/ent/gazette"
)

// RegisterGazetteRequest wraps parameters for recording an ingested gazette.
type RegisterGazetteRequest struct {
	GazetteNumber   int
	PublicationDate time.Time
	ISSN            *string
	SourcePath      string
	Filename        string
	ContentHash     []byte
	FileSize        int
}

type GazetteRepository interface {
	Register(ctx context.Context, req *RegisterGazetteRequest) (*ent.Gazette, error)
	GetByNumber(ctx context.Context, gazetteNumber int) (*ent.Gazette, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*ent.Gazette, error)
}

type gazetteRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewGazetteRepository(client *ent.Client, logger *slog.Logger) GazetteRepository {
	return &gazetteRepository{
		client: client,
		logger: logger,
	}
}

// Register creates the gazette row, or refreshes the source metadata when the
// gazette number is already known. Re-ingesting the same PDF is a no-op apart
// from the updated_at bump.
func (r *gazetteRepository) Register(ctx context.Context, req *RegisterGazetteRequest) (*ent.Gazette, error) {
	existing, err := r.client.Gazette.Query().
		Where(entgazette.GazetteNumber(req.GazetteNumber)).
		Only(ctx)
	if err == nil {
		upd := existing.Update().
			SetPublicationDate(req.PublicationDate).
			SetSourcePath(req.SourcePath).
			SetFilename(req.Filename).
			SetContentHash(req.ContentHash).
			SetFileSize(req.FileSize).
			SetNillableIssn(req.ISSN)
		g, err := upd.Save(ctx)
		if err != nil {
			r.logger.Error("failed to refresh gazette", "gazette_number", req.GazetteNumber, "error", err)
			return nil, err
		}
		return g, nil
	}
	if !ent.IsNotFound(err) {
		r.logger.Error("failed to query gazette", "gazette_number", req.GazetteNumber, "error", err)
		return nil, err
	}

	g, err := r.client.Gazette.Create().
		SetGazetteNumber(req.GazetteNumber).
		SetPublicationDate(req.PublicationDate).
		SetSourcePath(req.SourcePath).
		SetFilename(req.Filename).
		SetContentHash(req.ContentHash).
		SetFileSize(req.FileSize).
		SetNillableIssn(req.ISSN).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to register gazette", "gazette_number", req.GazetteNumber, "error", err)
		return nil, err
	}
	r.logger.Info("gazette registered", "gazette_id", g.ID, "gazette_number", req.GazetteNumber)
	return g, nil
}

func (r *gazetteRepository) GetByNumber(ctx context.Context, gazetteNumber int) (*ent.Gazette, error) {
	return r.client.Gazette.Query().
		Where(entgazette.GazetteNumber(gazetteNumber)).
		Only(ctx)
}

func (r *gazetteRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*ent.Gazette, error) {
	gs, err := r.client.Gazette.Query().
		Where(
			entgazette.PublicationDateGTE(from),
			entgazette.PublicationDateLTE(to),
		).
		Order(entgazette.ByGazetteNumber()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list gazettes", "from", from, "to", to, "error", err)
		return nil, err
	}
	return gs, nil
}
