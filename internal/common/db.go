package common

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/weekly-statutes/gazette-tracker/gen/ent"
	"github.com/weekly-statutes/gazette-tracker/internal/repository"
)

// DBResult bundles the opened database handles with their teardown.
type DBResult struct {
	Client  *ent.Client
	Pool    *pgxpool.Pool // nil for SQLite
	Cleanup func()
}

// InitDatabase opens the configured database. When inmem is set, or when
// SQLITE_PATH is configured, it opens SQLite and creates the schema; Postgres
// is assumed to be migrated elsewhere.
func InitDatabase(ctx context.Context, cfg *Config, inmem bool, logger *slog.Logger) (*DBResult, error) {
	if inmem || cfg.Database.SQLitePath != "" {
		path := cfg.Database.SQLitePath
		if inmem {
			path = "file::memory:?cache=shared"
		}
		client, err := repository.OpenSQLite(path, logger)
		if err != nil {
			return nil, err
		}
		if err := client.Schema.Create(ctx); err != nil {
			_ = client.Close()
			return nil, WrapError(err, "create sqlite schema")
		}
		return &DBResult{
			Client: client,
			Cleanup: func() {
				if err := client.Close(); err != nil {
					logger.Error("failed to close ent client", "error", err)
				}
			},
		}, nil
	}

	client, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}
	return &DBResult{
		Client:  client,
		Pool:    pool,
		Cleanup: func() { repository.Close(client, pool, logger) },
	}, nil
}
