package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joseph-ayodele/payroll-register/internal/common"
	"github.com/joseph-ayodele/payroll-register/internal/export"
	"github.com/joseph-ayodele/payroll-register/internal/extract"
	"github.com/joseph-ayodele/payroll-register/internal/llm/anthropic"
	"github.com/joseph-ayodele/payroll-register/internal/mapping"
	"github.com/joseph-ayodele/payroll-register/internal/pdftext"
	"github.com/joseph-ayodele/payroll-register/internal/pipeline"
	repo "github.com/joseph-ayodele/payroll-register/internal/repository"
)

// payrollctl runs the whole pipeline on one PDF: page text extraction,
// raw extraction (pass 1), schema mapping (pass 2), and artifact output.
// Artifacts land in OUTPUT_DIR as <stem>.extracted.json, <stem>.interim.json,
// <stem>.mapped.json and <stem>.xlsx.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "payrollctl <register.pdf>")
		os.Exit(2)
	}
	pdfPath := os.Args[1]

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		logger.Error("create output dir", "dir", cfg.Output.Dir, "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	db, runs, err := pipeline.OpenRunStore(ctx, repo.Config{
		DSN:         cfg.Database.DSN,
		DialTimeout: cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("open run store", "error", err)
		os.Exit(1)
	}
	defer repo.Close(db, logger)

	pages, err := pdftext.ExtractPages(pdfPath, logger)
	if err != nil {
		logger.Error("pdf text extraction failed", "path", pdfPath, "error", err)
		os.Exit(1)
	}
	doc := pdftext.BuildDocument(filepath.Base(pdfPath), pages)

	client := anthropic.NewClient(anthropic.Config{
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		MaxTokens:   cfg.LLM.MaxTokens,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	p := pipeline.NewProcessor(logger,
		extract.NewCoordinator(client, logger),
		mapping.NewMapper(logger),
		runs)

	start := time.Now()
	res, err := p.ProcessDocument(ctx, doc)
	if err != nil {
		logger.Error("pipeline failed", "source_file", doc.SourceFile, "error", err)
		os.Exit(1)
	}

	stem := strings.TrimSuffix(doc.SourceFile, filepath.Ext(doc.SourceFile))
	writeJSON(logger, cfg.Output.Dir, stem+".extracted.json", doc)
	writeJSON(logger, cfg.Output.Dir, stem+".interim.json", res.Interim)
	writeJSON(logger, cfg.Output.Dir, stem+".mapped.json", res.Report)

	xlsx, err := export.NewService(logger).BuildRegisterXLSX(res.Report)
	if err != nil {
		logger.Error("workbook export failed", "error", err)
		os.Exit(1)
	}
	xlsxPath := filepath.Join(cfg.Output.Dir, stem+".xlsx")
	if err := os.WriteFile(xlsxPath, xlsx, 0o644); err != nil {
		logger.Error("write workbook", "path", xlsxPath, "error", err)
		os.Exit(1)
	}

	logger.Info("pipeline OK",
		"run_id", res.RunID,
		"pages", doc.TotalPages,
		"employees", len(res.Report.Employees),
		"skipped_pages", res.Interim.SkippedPages,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

func writeJSON(logger *slog.Logger, dir, name string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logger.Error("encode artifact", "name", name, "error", err)
		os.Exit(1)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.Error("write artifact", "path", path, "error", err)
		os.Exit(1)
	}
	logger.Info("artifact written", "path", path, "bytes", len(data))
}
