package pipeline

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/payroll-register/internal/entity"
	"github.com/joseph-ayodele/payroll-register/internal/extract"
	"github.com/joseph-ayodele/payroll-register/internal/mapping"
	"github.com/joseph-ayodele/payroll-register/internal/repository"
)

// Processor coordinates pass 1 (raw extraction) then pass 2 (schema
// mapping) for one document, optionally recording the run and its
// artifacts in the run store.
type Processor struct {
	Logger      *slog.Logger
	Coordinator *extract.Coordinator
	Mapper      *mapping.Mapper
	Runs        repository.RunRepository // nil when no run store is configured
}

func NewProcessor(logger *slog.Logger, coordinator *extract.Coordinator, mapper *mapping.Mapper, runs repository.RunRepository) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Coordinator: coordinator, Mapper: mapper, Runs: runs}
}

// Result bundles both artifacts of one document run.
type Result struct {
	RunID   uuid.UUID
	Interim entity.InterimRecord
	Report  entity.CanonicalReport
}

// ProcessDocument runs both passes over the document's pages. Page-level
// failures are absorbed by the coordinator; the canonical report is always
// produced, even when every page was skipped, so downstream consumers can
// tell "ran with zero results" from "did not run".
func (p *Processor) ProcessDocument(ctx context.Context, doc entity.Document) (Result, error) {
	var runID uuid.UUID
	if p.Runs != nil {
		id, err := p.Runs.Start(ctx, doc.SourceFile, doc.TotalPages)
		if err != nil {
			return Result{}, fmt.Errorf("record run: %w", err)
		}
		runID = id
	}

	interim := p.Coordinator.Extract(ctx, doc.Pages)
	p.Logger.Info("processor.extract.ok",
		"source_file", doc.SourceFile,
		"employees", len(interim.Employees),
		"skipped_pages", interim.SkippedPages,
	)

	report := p.Mapper.MapInterim(interim)
	report.Metadata.SourceFilename = &doc.SourceFile
	if doc.ExtractionTimestamp != "" {
		ts := doc.ExtractionTimestamp
		report.Metadata.ExtractionTimestamp = &ts
	}
	p.Logger.Info("processor.map.ok", "source_file", doc.SourceFile, "employees", len(report.Employees))

	if p.Runs != nil {
		if err := p.recordArtifacts(ctx, runID, interim, report); err != nil {
			if ferr := p.Runs.FinishFailure(ctx, runID, err.Error()); ferr != nil {
				p.Logger.Error("processor.run.finish_failure_error", "run_id", runID, "error", ferr)
			}
			return Result{}, err
		}
	}

	return Result{RunID: runID, Interim: interim, Report: report}, nil
}

// recordArtifacts persists both pass artifacts and advances the run status
// to MAPPED.
func (p *Processor) recordArtifacts(ctx context.Context, runID uuid.UUID, interim entity.InterimRecord, report entity.CanonicalReport) error {
	interimJSON, err := json.Marshal(interim)
	if err != nil {
		return fmt.Errorf("encode interim record: %w", err)
	}
	mappedJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode canonical report: %w", err)
	}
	if err := p.Runs.FinishExtract(ctx, runID, len(interim.Employees), interim.SkippedPages, interimJSON); err != nil {
		return err
	}
	return p.Runs.FinishMapped(ctx, runID, mappedJSON)
}

// OpenRunStore wires the optional run repository from a DSN; a blank DSN
// disables recording.
func OpenRunStore(ctx context.Context, cfg repository.Config, logger *slog.Logger) (*sql.DB, repository.RunRepository, error) {
	if cfg.DSN == "" {
		return nil, nil, nil
	}
	db, err := repository.Open(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return db, repository.NewRunRepository(db, logger), nil
}
