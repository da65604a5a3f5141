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
	"github.com/joseph-ayodele/payroll-register/internal/entity"
	"github.com/joseph-ayodele/payroll-register/internal/extract"
	"github.com/joseph-ayodele/payroll-register/internal/llm/anthropic"
)

// runextract runs pass 1 only: it reads a <stem>.extracted.json page-text
// document and writes <stem>.interim.json next to it. Useful for re-running
// extraction without touching the PDF again.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runextract <doc.extracted.json>")
		os.Exit(2)
	}
	inPath := os.Args[1]

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(inPath)
	if err != nil {
		logger.Error("read document", "path", inPath, "error", err)
		os.Exit(1)
	}
	var doc entity.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Error("decode document", "path", inPath, "error", err)
		os.Exit(1)
	}

	client := anthropic.NewClient(anthropic.Config{
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		MaxTokens:   cfg.LLM.MaxTokens,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	coordinator := extract.NewCoordinator(client, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	start := time.Now()
	interim := coordinator.Extract(ctx, doc.Pages)

	out, err := json.MarshalIndent(interim, "", "  ")
	if err != nil {
		logger.Error("encode interim record", "error", err)
		os.Exit(1)
	}
	outPath := strings.TrimSuffix(inPath, ".extracted.json") + ".interim.json"
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		logger.Error("write interim record", "path", outPath, "error", err)
		os.Exit(1)
	}

	logger.Info("raw extraction OK",
		"source_file", filepath.Base(doc.SourceFile),
		"pages", len(doc.Pages),
		"employees", len(interim.Employees),
		"skipped_pages", interim.SkippedPages,
		"output", outPath,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
