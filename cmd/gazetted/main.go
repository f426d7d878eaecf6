package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/weekly-statutes/gazette-tracker/gen/proto/notices/v1"
	"github.com/weekly-statutes/gazette-tracker/internal/annotations"
	"github.com/weekly-statutes/gazette-tracker/internal/async"
	"github.com/weekly-statutes/gazette-tracker/internal/common"
	"github.com/weekly-statutes/gazette-tracker/internal/gazette"
	"github.com/weekly-statutes/gazette-tracker/internal/ingest"
	"github.com/weekly-statutes/gazette-tracker/internal/llm"
	"github.com/weekly-statutes/gazette-tracker/internal/llm/openai"
	"github.com/weekly-statutes/gazette-tracker/internal/ocr"
	"github.com/weekly-statutes/gazette-tracker/internal/pipeline"
	repo "github.com/weekly-statutes/gazette-tracker/internal/repository"
	svc "github.com/weekly-statutes/gazette-tracker/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := common.InitDatabase(ctx, cfg, false, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Cleanup()

	if db.Pool != nil {
		if err := repo.HealthCheck(ctx, db.Pool, 5*time.Second, logger); err != nil {
			logger.Error("failed to ping database", "error", err)
			os.Exit(1)
		}
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	gazettesRepo := repo.NewGazetteRepository(db.Client, logger)
	noticesRepo := repo.NewNoticeRepository(db.Client, logger)
	jobsRepo := repo.NewExtractJobRepository(db.Client, logger)

	scanner := ocr.NewScanner(ocr.Config{
		Pdftotext:     cfg.OCR.Pdftotext,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
		TessdataDir:   cfg.OCR.TessdataDir,
		CacheDir:      cfg.OCR.CacheDir,
	}, logger)

	summarizer := buildSummarizer(cfg, logger)

	ocrStage := pipeline.NewOCRStage(gazettesRepo, jobsRepo, scanner, logger)
	extractStage := pipeline.NewExtractStage(noticesRepo, jobsRepo, summarizer, cfg.LLM.Model, logger)
	processor := pipeline.NewProcessor(logger, ocrStage, extractStage)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(6),
		async.WithQueueSize(512),
		async.WithProcessTimeout(3*time.Minute),
	)

	annStore := annotations.Store{Dir: cfg.Ingest.AnnotationsDir}
	ingestor := ingest.NewFSIngestor(gazettesRepo, annStore, logger)

	ingestionService := svc.NewIngestionService(ingestor, queue, logger)
	v1.RegisterIngestionServiceServer(grpcServer, ingestionService)
	noticesService := svc.NewNoticesService(noticesRepo, processor, logger)
	v1.RegisterNoticesServiceServer(grpcServer, noticesService)
	bulletinService := svc.NewBulletinService(noticesRepo, logger)
	v1.RegisterBulletinServiceServer(grpcServer, bulletinService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	// Watch the intake directory so dropped PDFs are picked up without an RPC.
	if cfg.Ingest.GazetteDir != "" {
		startIntakeWatcher(ctx, cfg.Ingest.GazetteDir, ingestor, queue, logger)
	}

	logger.Info("gazetted listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}

// buildSummarizer returns a nil interface when no API key is configured, so
// extraction stores the full notice text instead of a summary.
func buildSummarizer(cfg *common.Config, logger *slog.Logger) gazette.Summarizer {
	if cfg.LLM.APIKey == "" {
		logger.Warn("OPENAI_API_KEY not configured, notices keep their full text")
		return nil
	}
	client := openai.NewClient(openai.Config{
		Model:       cfg.LLM.Model,
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	cache := llm.OpenCache(cfg.LLM.CachePath, cfg.LLM.CacheMaxSize)
	return llm.NewCached(client, cache, logger)
}

func startIntakeWatcher(ctx context.Context, dir string, ingestor ingest.Ingestor, queue async.Queue, logger *slog.Logger) {
	events, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:    []string{dir},
		Debounce: 2 * time.Second,
	}, logger)
	if err != nil {
		logger.Error("intake watcher failed to start", "dir", dir, "error", err)
		return
	}
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case path, ok := <-events:
				if !ok {
					return
				}
				r, err := ingestor.IngestPath(ctx, path)
				if err != nil {
					logger.Warn("intake ingest failed", "path", path, "error", err)
					continue
				}
				_ = queue.Enqueue(ctx, async.Job{
					GazetteNumber: r.GazetteNumber,
					NoticeNumbers: r.NoticeNumbers,
					SubmittedAt:   time.Now().UTC(),
				})
			case err, ok := <-errs:
				if !ok {
					return
				}
				logger.Warn("intake watcher error", "error", err)
			}
		}
	}()
}
