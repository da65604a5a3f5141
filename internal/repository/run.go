package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/payroll-register/constants"
	"github.com/joseph-ayodele/payroll-register/internal/common"
)

// Run is one recorded extraction run.
type Run struct {
	ID            uuid.UUID  `json:"id"`
	SourceFile    string     `json:"source_file"`
	Status        string     `json:"status"`
	TotalPages    int        `json:"total_pages"`
	EmployeeCount *int       `json:"employee_count,omitempty"`
	SkippedPages  []int      `json:"skipped_pages,omitempty"`
	InterimJSON   []byte     `json:"interim_json,omitempty"`
	MappedJSON    []byte     `json:"mapped_json,omitempty"`
	ErrorMessage  *string    `json:"error_message,omitempty"`
	StartedAt     time.Time  `json:"started_at"`
	FinishedAt    *time.Time `json:"finished_at,omitempty"`
}

type RunRepository interface {
	Start(ctx context.Context, sourceFile string, totalPages int) (uuid.UUID, error)
	FinishExtract(ctx context.Context, runID uuid.UUID, employees int, skipped []int, interimJSON []byte) error
	FinishMapped(ctx context.Context, runID uuid.UUID, mappedJSON []byte) error
	FinishFailure(ctx context.Context, runID uuid.UUID, message string) error
	GetByID(ctx context.Context, runID uuid.UUID) (*Run, error)
}

type runRepo struct {
	db  *sql.DB
	log *slog.Logger
}

func NewRunRepository(db *sql.DB, log *slog.Logger) RunRepository {
	if log == nil {
		log = slog.Default()
	}
	return &runRepo{db: db, log: log}
}

func (r *runRepo) Start(ctx context.Context, sourceFile string, totalPages int) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO extraction_run (id, source_file, status, total_pages, started_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		id.String(), sourceFile, string(constants.RunStatusRunning), totalPages, time.Now().UTC())
	if err != nil {
		r.log.Error("extraction_run start failed", "source_file", sourceFile, "err", err)
		return uuid.Nil, common.WrapError(err, "start run")
	}
	r.log.Info("extraction_run started", "run_id", id, "source_file", sourceFile, "pages", totalPages)
	return id, nil
}

func (r *runRepo) FinishExtract(ctx context.Context, runID uuid.UUID, employees int, skipped []int, interimJSON []byte) error {
	sk, err := json.Marshal(skipped)
	if err != nil {
		return common.WrapError(err, "marshal skipped pages")
	}
	_, err = r.db.ExecContext(ctx,
		`UPDATE extraction_run
		 SET status = $1, employee_count = $2, skipped_pages = $3, interim_json = $4
		 WHERE id = $5`,
		string(constants.RunStatusExtractOK), employees, string(sk), string(interimJSON), runID.String())
	if err != nil {
		r.log.Error("extraction_run finish(EXTRACT_OK) failed", "run_id", runID, "err", err)
		return common.WrapError(err, "finish extract")
	}
	r.log.Info("extraction_run finished pass 1", "run_id", runID, "employees", employees, "skipped", skipped)
	return nil
}

func (r *runRepo) FinishMapped(ctx context.Context, runID uuid.UUID, mappedJSON []byte) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE extraction_run
		 SET status = $1, mapped_json = $2, finished_at = $3
		 WHERE id = $4`,
		string(constants.RunStatusMapped), string(mappedJSON), time.Now().UTC(), runID.String())
	if err != nil {
		r.log.Error("extraction_run finish(MAPPED) failed", "run_id", runID, "err", err)
		return common.WrapError(err, "finish mapped")
	}
	r.log.Info("extraction_run finished pass 2", "run_id", runID)
	return nil
}

func (r *runRepo) FinishFailure(ctx context.Context, runID uuid.UUID, message string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE extraction_run
		 SET status = $1, error_message = $2, finished_at = $3
		 WHERE id = $4`,
		string(constants.RunStatusFailed), message, time.Now().UTC(), runID.String())
	if err != nil {
		r.log.Error("extraction_run finish(FAILED) failed", "run_id", runID, "err", err)
		return common.WrapError(err, "finish failure")
	}
	r.log.Warn("extraction_run failed", "run_id", runID, "message", message)
	return nil
}

func (r *runRepo) GetByID(ctx context.Context, runID uuid.UUID) (*Run, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, source_file, status, total_pages, employee_count, skipped_pages,
		        interim_json, mapped_json, error_message, started_at, finished_at
		 FROM extraction_run WHERE id = $1`, runID.String())

	var (
		run          Run
		idStr        string
		skippedJSON  sql.NullString
		interimJSON  sql.NullString
		mappedJSON   sql.NullString
		errorMessage sql.NullString
		employees    sql.NullInt64
		finishedAt   sql.NullTime
	)
	err := row.Scan(&idStr, &run.SourceFile, &run.Status, &run.TotalPages, &employees,
		&skippedJSON, &interimJSON, &mappedJSON, &errorMessage, &run.StartedAt, &finishedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, common.WrapError(err, "load run")
	}

	run.ID, err = uuid.Parse(idStr)
	if err != nil {
		return nil, common.WrapError(err, "parse run id")
	}
	if employees.Valid {
		n := int(employees.Int64)
		run.EmployeeCount = &n
	}
	if skippedJSON.Valid && skippedJSON.String != "" {
		if err := json.Unmarshal([]byte(skippedJSON.String), &run.SkippedPages); err != nil {
			return nil, common.WrapError(err, "decode skipped pages")
		}
	}
	if interimJSON.Valid {
		run.InterimJSON = []byte(interimJSON.String)
	}
	if mappedJSON.Valid {
		run.MappedJSON = []byte(mappedJSON.String)
	}
	if errorMessage.Valid {
		run.ErrorMessage = &errorMessage.String
	}
	if finishedAt.Valid {
		run.FinishedAt = &finishedAt.Time
	}
	return &run, nil
}
