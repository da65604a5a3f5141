package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/payroll-register/internal/entity"
	"github.com/joseph-ayodele/payroll-register/internal/extract"
	"github.com/joseph-ayodele/payroll-register/internal/llm"
	"github.com/joseph-ayodele/payroll-register/internal/mapping"
	"github.com/joseph-ayodele/payroll-register/internal/repository"
)

type staticGenerator struct {
	text string
}

func (s *staticGenerator) Generate(_ context.Context, _ string) (llm.GenerationResult, error) {
	return llm.GenerationResult{Text: s.text}, nil
}

type recordingRuns struct {
	started     bool
	extractDone bool
	mappedDone  bool
	failed      bool
	employees   int
	interimJSON []byte
	mappedJSON  []byte
}

func (r *recordingRuns) Start(_ context.Context, _ string, _ int) (uuid.UUID, error) {
	r.started = true
	return uuid.New(), nil
}

func (r *recordingRuns) FinishExtract(_ context.Context, _ uuid.UUID, employees int, _ []int, interimJSON []byte) error {
	r.extractDone = true
	r.employees = employees
	r.interimJSON = interimJSON
	return nil
}

func (r *recordingRuns) FinishMapped(_ context.Context, _ uuid.UUID, mappedJSON []byte) error {
	r.mappedDone = true
	r.mappedJSON = mappedJSON
	return nil
}

func (r *recordingRuns) FinishFailure(_ context.Context, _ uuid.UUID, _ string) error {
	r.failed = true
	return nil
}

func (r *recordingRuns) GetByID(_ context.Context, _ uuid.UUID) (*repository.Run, error) {
	return nil, errors.New("not implemented")
}

const onePagePayload = `{
  "report_metadata": {"report_title": "Payroll Register"},
  "employees": [{"employee_name": "Ann Smith"}]
}`

func testDocument() entity.Document {
	return entity.Document{
		SourceFile:          "register.pdf",
		ExtractionTimestamp: "2026-05-01T00:00:00Z",
		TotalPages:          1,
		Pages:               []entity.Page{{PageNumber: 1, Text: "page text"}},
	}
}

func TestProcessDocumentStampsMetadata(t *testing.T) {
	p := NewProcessor(nil,
		extract.NewCoordinator(&staticGenerator{text: onePagePayload}, nil),
		mapping.NewMapper(nil),
		nil)

	res, err := p.ProcessDocument(context.Background(), testDocument())
	require.NoError(t, err)

	assert.Equal(t, uuid.Nil, res.RunID)
	require.NotNil(t, res.Report.Metadata.SourceFilename)
	assert.Equal(t, "register.pdf", *res.Report.Metadata.SourceFilename)
	require.NotNil(t, res.Report.Metadata.ExtractionTimestamp)
	assert.Equal(t, "2026-05-01T00:00:00Z", *res.Report.Metadata.ExtractionTimestamp)
	require.Len(t, res.Report.Employees, 1)
	assert.Equal(t, "Ann Smith", res.Report.Employees[0].EmployeeInfo.EmployeeName)
}

func TestProcessDocumentRecordsRun(t *testing.T) {
	runs := &recordingRuns{}
	p := NewProcessor(nil,
		extract.NewCoordinator(&staticGenerator{text: onePagePayload}, nil),
		mapping.NewMapper(nil),
		runs)

	res, err := p.ProcessDocument(context.Background(), testDocument())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, res.RunID)
	assert.True(t, runs.started)
	assert.True(t, runs.extractDone)
	assert.True(t, runs.mappedDone)
	assert.False(t, runs.failed)
	assert.Equal(t, 1, runs.employees)
	assert.NotEmpty(t, runs.interimJSON)
	assert.NotEmpty(t, runs.mappedJSON)
}
