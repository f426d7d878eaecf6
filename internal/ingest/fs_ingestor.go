package ingest

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/weekly-statutes/gazette-tracker/internal/annotations"
	"github.com/weekly-statutes/gazette-tracker/internal/gazette"
	"github.com/weekly-statutes/gazette-tracker/internal/repository"
)

// FSIngestor reads gazette PDFs from the local filesystem.
type FSIngestor struct {
	Gazettes    repository.GazetteRepository
	Annotations annotations.Store
	Logger      *slog.Logger
}

func NewFSIngestor(gazettes repository.GazetteRepository, store annotations.Store, logger *slog.Logger) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSIngestor{
		Gazettes:    gazettes,
		Annotations: store,
		Logger:      logger,
	}
}

func (i *FSIngestor) IngestPath(ctx context.Context, path string) (IngestionResult, error) {
	var out IngestionResult

	abs, err := filepath.Abs(path)
	if err != nil {
		return out, fmt.Errorf("abs path: %w", err)
	}
	name := filepath.Base(abs)

	if !gazette.IsValidGazetteFilename(name) {
		return out, fmt.Errorf("not a gazette filename: %q", name)
	}
	num, err := gazette.ExtractGazetteNumber(name)
	if err != nil {
		return out, err
	}

	ann, err := i.Annotations.Load(name)
	if err != nil {
		return out, fmt.Errorf("annotation sidecar: %w", err)
	}
	pubDate, err := ann.Date()
	if err != nil {
		return out, fmt.Errorf("annotation sidecar: %w", err)
	}

	f, err := os.Open(abs)
	if err != nil {
		return out, fmt.Errorf("open: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			i.Logger.Warn("close file failed", "path", abs, "error", err)
		}
	}()

	h := sha256.New()
	size, err := io.Copy(h, f)
	if err != nil {
		return out, fmt.Errorf("hash: %w", err)
	}
	sum := h.Sum(nil)

	dedup := false
	if existing, err := i.Gazettes.GetByNumber(ctx, num); err == nil {
		dedup = bytes.Equal(existing.ContentHash, sum)
	}

	row, err := i.Gazettes.Register(ctx, &repository.RegisterGazetteRequest{
		GazetteNumber:   num,
		PublicationDate: pubDate,
		SourcePath:      abs,
		Filename:        name,
		ContentHash:     sum,
		FileSize:        int(size),
	})
	if err != nil {
		return out, err
	}

	out = IngestionResult{
		SourcePath:    abs,
		GazetteID:     row.ID.String(),
		GazetteNumber: num,
		NoticeNumbers: ann.NoticeNumbers,
		Deduplicated:  dedup,
		HashHex:       hex.EncodeToString(sum),
		IngestedAt:    time.Now().UTC(),
	}
	return out, nil
}

// IngestDirectory walks root, skips hidden entries if requested, and calls
// IngestPath for each gazette PDF. Returns per-file results + aggregate stats.
func (i *FSIngestor) IngestDirectory(
	ctx context.Context,
	root string,
	skipHidden bool,
) ([]IngestionResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root_path is required")
	}

	var results []IngestionResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}
		if !gazette.IsValidGazetteFilename(filepath.Base(path)) {
			return nil
		}
		stats.Matched++

		r, err := i.IngestPath(ctx, path)
		if err != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: err.Error()})
			stats.Failed++
			return nil
		}

		results = append(results, r)
		stats.Succeeded++
		if r.Deduplicated {
			stats.Deduplicated++
		}
		return nil
	})

	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}
