package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/payroll-register/internal/entity"
	"github.com/joseph-ayodele/payroll-register/internal/llm"
)

// scriptedGenerator returns one canned result per call, in order.
type scriptedGenerator struct {
	results []llm.GenerationResult
	errs    []error
	calls   int
}

func (s *scriptedGenerator) Generate(_ context.Context, _ string) (llm.GenerationResult, error) {
	i := s.calls
	s.calls++
	var err error
	if i < len(s.errs) {
		err = s.errs[i]
	}
	var res llm.GenerationResult
	if i < len(s.results) {
		res = s.results[i]
	}
	return res, err
}

func makePages(n int) []entity.Page {
	pages := make([]entity.Page, n)
	for i := range pages {
		pages[i] = entity.Page{PageNumber: i + 1, Text: "page text"}
	}
	return pages
}

const pageWithEmployee = `{
  "report_metadata": {"report_title": "Payroll Register"},
  "employees": [{"employee_name": "Ann Smith"}]
}`

const pageMetadataOnly = `{
  "report_metadata": {"report_title": "Second Title"},
  "employees": []
}`

func TestExtractAccountsForEveryPage(t *testing.T) {
	gen := &scriptedGenerator{
		results: []llm.GenerationResult{
			{Text: pageWithEmployee},
			{},
			{Text: "not json at all"},
			{Text: pageMetadataOnly},
		},
		errs: []error{nil, errors.New("service unavailable"), nil, nil},
	}
	interim := NewCoordinator(gen, nil).Extract(context.Background(), makePages(4))

	require.Len(t, interim.Employees, 1)
	require.NotNil(t, interim.Employees[0].EmployeeName)
	assert.Equal(t, "Ann Smith", *interim.Employees[0].EmployeeName)
	assert.Equal(t, []int{2, 3, 4}, interim.SkippedPages)

	// every page contributes employees or is skipped, never both
	contributing := 1
	assert.Equal(t, 4, contributing+len(interim.SkippedPages))

	require.NotNil(t, interim.ReportMetadata)
	require.NotNil(t, interim.ReportMetadata.ReportTitle)
	assert.Equal(t, "Payroll Register", *interim.ReportMetadata.ReportTitle)
}

func TestExtractAdoptsMetadataFromEmployeelessPage(t *testing.T) {
	gen := &scriptedGenerator{
		results: []llm.GenerationResult{
			{Text: `{"report_metadata": {"report_title": "From First Page"}, "employees": []}`},
			{Text: `{"report_metadata": {"report_title": "From Second Page"}, "employees": [{"employee_name": "Bob Jones"}]}`},
		},
	}
	interim := NewCoordinator(gen, nil).Extract(context.Background(), makePages(2))

	assert.Equal(t, []int{1}, interim.SkippedPages)
	require.Len(t, interim.Employees, 1)
	require.NotNil(t, interim.ReportMetadata)
	require.NotNil(t, interim.ReportMetadata.ReportTitle)
	assert.Equal(t, "From First Page", *interim.ReportMetadata.ReportTitle)
}

func TestExtractRepairsTruncatedPage(t *testing.T) {
	truncated := `{
  "report_metadata": {"report_title": "Payroll Register"},
  "employees": [
    {
      "employee_name": "Ann Smith",
      "earnings": [],
      "deductions": [],
      "taxes": []
    },`
	gen := &scriptedGenerator{
		results: []llm.GenerationResult{{Text: truncated, Truncated: true}},
	}
	interim := NewCoordinator(gen, nil).Extract(context.Background(), makePages(1))

	assert.Empty(t, interim.SkippedPages)
	require.Len(t, interim.Employees, 1)
	require.NotNil(t, interim.Employees[0].EmployeeName)
	assert.Equal(t, "Ann Smith", *interim.Employees[0].EmployeeName)
}

func TestExtractAllPagesFailed(t *testing.T) {
	gen := &scriptedGenerator{
		errs: []error{errors.New("boom"), errors.New("boom")},
	}
	interim := NewCoordinator(gen, nil).Extract(context.Background(), makePages(2))

	assert.Empty(t, interim.Employees)
	assert.Equal(t, []int{1, 2}, interim.SkippedPages)
	// metadata is always present, even when empty
	require.NotNil(t, interim.ReportMetadata)
	assert.Equal(t, &entity.RawReportMetadata{}, interim.ReportMetadata)
}
