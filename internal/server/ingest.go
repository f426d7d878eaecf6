package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/weekly-statutes/gazette-tracker/gen/proto/notices/v1"
	"github.com/weekly-statutes/gazette-tracker/internal/async"
	"github.com/weekly-statutes/gazette-tracker/internal/ingest"
)

type IngestionService struct {
	v1.UnimplementedIngestionServiceServer
	ingestor ingest.Ingestor
	queue    async.Queue
	logger   *slog.Logger
}

func NewIngestionService(ing ingest.Ingestor, queue async.Queue, logger *slog.Logger) *IngestionService {
	return &IngestionService{
		ingestor: ing,
		queue:    queue,
		logger:   logger,
	}
}

// IngestGazette implements v1.IngestionServiceServer
func (s *IngestionService) IngestGazette(ctx context.Context, req *v1.IngestGazetteRequest) (*v1.IngestResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("ingest request missing path")
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	s.logger.Info("starting gazette ingest", "path", path)
	r, err := s.ingestor.IngestPath(ctx, path)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest: %v", err)
	}
	s.logger.Info("gazette ingest succeeded", "gazette_number", r.GazetteNumber, "deduplicated", r.Deduplicated)

	resp := ingestResponse(r)

	if err := s.queue.Enqueue(ctx, async.Job{
		GazetteNumber: r.GazetteNumber,
		NoticeNumbers: r.NoticeNumbers,
		SubmittedAt:   time.Now().UTC(),
	}); err != nil {
		s.logger.Error("enqueue failed", "gazette_number", r.GazetteNumber, "err", err)
		resp.Error = err.Error()
	}
	return resp, nil
}

func (s *IngestionService) IngestDirectory(ctx context.Context, req *v1.IngestDirectoryRequest) (*v1.IngestDirectoryResponse, error) {
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("ingest directory request missing root_path")
		return nil, status.Error(codes.InvalidArgument, "root_path is required")
	}

	// default skipHidden := true when field not present (optional bool)
	skipHidden := true
	if req.SkipHidden != nil {
		skipHidden = req.GetSkipHidden()
	}

	s.logger.Info("starting directory ingest", "root", root, "skip_hidden", skipHidden)
	results, stats, err := s.ingestor.IngestDirectory(ctx, root, skipHidden)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest directory: %v", err)
	}
	s.logger.Info("directory ingest completed", "scanned", stats.Scanned, "matched", stats.Matched, "succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated, "failed", stats.Failed)

	out := &v1.IngestDirectoryResponse{
		Scanned:      stats.Scanned,
		Matched:      stats.Matched,
		Succeeded:    stats.Succeeded,
		Deduplicated: stats.Deduplicated,
		Failed:       stats.Failed,
		Results:      make([]*v1.IngestResponse, 0, len(results)),
	}

	for _, r := range results {
		item := ingestResponse(r)
		if r.Err == "" {
			if err := s.queue.Enqueue(ctx, async.Job{
				GazetteNumber: r.GazetteNumber,
				NoticeNumbers: r.NoticeNumbers,
				SubmittedAt:   time.Now().UTC(),
			}); err != nil {
				s.logger.Error("enqueue failed", "gazette_number", r.GazetteNumber, "err", err)
				item.Error = err.Error()
			}
		}
		out.Results = append(out.Results, item)
	}
	return out, nil
}

func ingestResponse(r ingest.IngestionResult) *v1.IngestResponse {
	nums := make([]int32, 0, len(r.NoticeNumbers))
	for _, n := range r.NoticeNumbers {
		nums = append(nums, int32(n))
	}
	return &v1.IngestResponse{
		GazetteId:      r.GazetteID,
		GazetteNumber:  int32(r.GazetteNumber),
		Deduplicated:   r.Deduplicated,
		ContentHashHex: r.HashHex,
		IngestedAt:     r.IngestedAt.UTC().Format(time.RFC3339),
		SourcePath:     r.SourcePath,
		NoticeNumbers:  nums,
		Error:          r.Err,
	}
}
