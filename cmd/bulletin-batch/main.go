package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/weekly-statutes/gazette-tracker/internal/annotations"
	"github.com/weekly-statutes/gazette-tracker/internal/bulletin"
	"github.com/weekly-statutes/gazette-tracker/internal/common"
	"github.com/weekly-statutes/gazette-tracker/internal/gazette"
	"github.com/weekly-statutes/gazette-tracker/internal/ingest"
	"github.com/weekly-statutes/gazette-tracker/internal/llm"
	"github.com/weekly-statutes/gazette-tracker/internal/llm/openai"
	"github.com/weekly-statutes/gazette-tracker/internal/ocr"
	"github.com/weekly-statutes/gazette-tracker/internal/pipeline"
	repo "github.com/weekly-statutes/gazette-tracker/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem    = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir      = flag.String("dir", "", "directory holding gazette PDFs and annotation sidecars (required)")
		out      = flag.String("out", "", "output XLSX file path (defaults to parent directory)")
		textOut  = flag.String("text", "", "output text bulletin path (defaults to parent directory)")
		number   = flag.Int("bulletin", 0, "bulletin sequence number (defaults to ISO week of the week end)")
		fromStr  = flag.String("from", "", "week start YYYY-MM-DD (defaults to earliest ingested gazette)")
		toStr    = flag.String("to", "", "week end YYYY-MM-DD (defaults to latest ingested gazette)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "bulletin.xlsx")
	}
	if *textOut == "" {
		*textOut = filepath.Join(filepath.Dir(*dir), "bulletin.txt")
	}

	var from, to time.Time
	var err error
	if *fromStr != "" {
		if from, err = time.Parse("2006-01-02", *fromStr); err != nil {
			printError("Error: invalid --from date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
	}
	if *toStr != "" {
		if to, err = time.Parse("2006-01-02", *toStr); err != nil {
			printError("Error: invalid --to date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	db, err := common.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Cleanup()

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

	var summarizer gazette.Summarizer
	if cfg.LLM.APIKey != "" {
		client := openai.NewClient(openai.Config{
			Model:       cfg.LLM.Model,
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
		summarizer = llm.NewCached(client, llm.OpenCache(cfg.LLM.CachePath, cfg.LLM.CacheMaxSize), logger)
		logger.Info("summarizer initialized", "model", cfg.LLM.Model)
	} else {
		logger.Warn("OpenAI API key not configured, notices keep their full text")
	}

	ocrStage := pipeline.NewOCRStage(gazettesRepo, jobsRepo, scanner, logger)
	extractStage := pipeline.NewExtractStage(noticesRepo, jobsRepo, summarizer, cfg.LLM.Model, logger)
	processor := pipeline.NewProcessor(logger, ocrStage, extractStage)

	annStore := annotations.Store{Dir: *dir}
	ingestor := ingest.NewFSIngestor(gazettesRepo, annStore, logger)

	logger.Info("starting ingestion", "dir", *dir)
	results, stats, err := ingestor.IngestDirectory(ctx, *dir, true)
	if err != nil {
		logger.Error("failed to ingest directory", "error", err)
		os.Exit(1)
	}
	logger.Info("ingestion complete",
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"deduplicated", stats.Deduplicated)

	var issues []bulletin.Issue
	processed := 0
	failures := 0
	for _, r := range results {
		if r.Err != "" {
			failures++
			continue
		}
		logger.Info("processing gazette", "gazette_number", r.GazetteNumber)
		_, _, gIssues, err := processor.ProcessGazette(ctx, r.GazetteNumber, r.NoticeNumbers)
		issues = append(issues, gIssues...)
		if err != nil {
			logger.Error("failed to process gazette", "gazette_number", r.GazetteNumber, "error", err)
			failures++
			continue
		}
		processed++
	}

	if from.IsZero() || to.IsZero() {
		lo, hi, err := ingestedDateRange(ctx, gazettesRepo, results)
		if err != nil {
			logger.Error("cannot infer week bounds", "error", err)
			os.Exit(1)
		}
		if from.IsZero() {
			from = lo
		}
		if to.IsZero() {
			to = hi
		}
	}
	if *number == 0 {
		_, week := to.ISOWeek()
		*number = week
	}

	notices, err := noticesRepo.ListForWeek(ctx, from, to)
	if err != nil {
		logger.Error("failed to list notices", "error", err)
		os.Exit(1)
	}

	b := bulletin.Bulletin{
		Number:    *number,
		Year:      from.Year(),
		WeekStart: from,
		WeekEnd:   to,
		Notices:   notices,
		Issues:    issues,
	}

	if err := os.WriteFile(*textOut, []byte(b.Render()), 0644); err != nil {
		logger.Error("failed to write text bulletin", "error", err)
		os.Exit(1)
	}
	xlsxBytes, err := b.ExportXLSX()
	if err != nil {
		logger.Error("failed to export bulletin", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch processing complete",
		"gazettes_processed", processed,
		"failures", failures,
		"notices", len(notices),
		"issues", len(issues),
		"output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Gazettes processed: %d\n", processed)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Notices in bulletin: %d\n", len(notices))
	fmt.Printf("- Notices with issues: %d\n", len(issues))
	fmt.Printf("- Output: %s, %s\n", *textOut, *out)
}

// ingestedDateRange returns the earliest and latest publication dates among
// the successfully ingested gazettes.
func ingestedDateRange(ctx context.Context, gazettes repo.GazetteRepository, results []ingest.IngestionResult) (time.Time, time.Time, error) {
	var lo, hi time.Time
	for _, r := range results {
		if r.Err != "" {
			continue
		}
		g, err := gazettes.GetByNumber(ctx, r.GazetteNumber)
		if err != nil {
			continue
		}
		d := g.PublicationDate
		if lo.IsZero() || d.Before(lo) {
			lo = d
		}
		if hi.IsZero() || d.After(hi) {
			hi = d
		}
	}
	if lo.IsZero() {
		return lo, hi, fmt.Errorf("no gazettes ingested")
	}
	return lo, hi, nil
}
