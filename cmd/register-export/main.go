package main

import (
	"encoding/json"
	"log/slog"
	"os"
	"strings"

	"github.com/joseph-ayodele/payroll-register/internal/entity"
	"github.com/joseph-ayodele/payroll-register/internal/export"
)

// register-export renders a <stem>.mapped.json canonical report into a
// review workbook at <stem>.xlsx.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "register-export <doc.mapped.json>")
		os.Exit(2)
	}
	inPath := os.Args[1]

	data, err := os.ReadFile(inPath)
	if err != nil {
		logger.Error("read canonical report", "path", inPath, "error", err)
		os.Exit(1)
	}
	var report entity.CanonicalReport
	if err := json.Unmarshal(data, &report); err != nil {
		logger.Error("decode canonical report", "path", inPath, "error", err)
		os.Exit(1)
	}

	xlsx, err := export.NewService(logger).BuildRegisterXLSX(report)
	if err != nil {
		logger.Error("workbook export failed", "error", err)
		os.Exit(1)
	}
	outPath := strings.TrimSuffix(inPath, ".mapped.json") + ".xlsx"
	if err := os.WriteFile(outPath, xlsx, 0o644); err != nil {
		logger.Error("write workbook", "path", outPath, "error", err)
		os.Exit(1)
	}

	logger.Info("workbook export OK", "output", outPath, "bytes", len(xlsx))
}
