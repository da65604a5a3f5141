package main

import (
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joseph-ayodele/payroll-register/internal/entity"
	"github.com/joseph-ayodele/payroll-register/internal/mapping"
)

// runmap runs pass 2 only: it reads a <stem>.interim.json record and writes
// <stem>.mapped.json next to it. Mapping is fully deterministic, so this can
// be re-run freely while iterating on alias tables.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runmap <doc.interim.json>")
		os.Exit(2)
	}
	inPath := os.Args[1]

	data, err := os.ReadFile(inPath)
	if err != nil {
		logger.Error("read interim record", "path", inPath, "error", err)
		os.Exit(1)
	}
	var interim entity.InterimRecord
	if err := json.Unmarshal(data, &interim); err != nil {
		logger.Error("decode interim record", "path", inPath, "error", err)
		os.Exit(1)
	}

	start := time.Now()
	report := mapping.NewMapper(logger).MapInterim(interim)

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		logger.Error("encode canonical report", "error", err)
		os.Exit(1)
	}
	outPath := strings.TrimSuffix(inPath, ".interim.json") + ".mapped.json"
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		logger.Error("write canonical report", "path", outPath, "error", err)
		os.Exit(1)
	}

	logger.Info("schema mapping OK",
		"employees", len(report.Employees),
		"output", outPath,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
