package main

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/weekly-statutes/gazette-tracker/internal/common"
	"github.com/weekly-statutes/gazette-tracker/internal/ocr"
	"github.com/weekly-statutes/gazette-tracker/internal/pipeline"
	repo "github.com/weekly-statutes/gazette-tracker/internal/repository"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runocr <gazette-number>")
		os.Exit(2)
	}
	gazetteNumber, err := strconv.Atoi(os.Args[1])
	if err != nil {
		logger.Error("invalid gazette number", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := common.InitDatabase(ctx, cfg, false, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer db.Cleanup()

	gazettesRepo := repo.NewGazetteRepository(db.Client, logger)
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

	stage := pipeline.NewOCRStage(gazettesRepo, jobsRepo, scanner, logger)

	start := time.Now()
	_, jobID, res, err := stage.Run(ctx, gazetteNumber)
	dur := time.Since(start)

	if err != nil {
		logger.Error("text extraction failed",
			"job_id", jobID, "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}

	logger.Info("text extraction OK",
		"job_id", jobID,
		"method", res.Method,
		"pages", len(res.Pages),
		"bytes", len(res.Text),
		"confidence", res.Confidence,
		"duration_ms", dur.Milliseconds(),
	)
}
