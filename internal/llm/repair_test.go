package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A response cut off by the token budget right after a complete employee
// object, the truncation shape the heuristic is built for.
const truncatedAtRecordBoundary = `{
  "report_metadata": {
    "report_title": "Payroll Register",
    "company_name": "Acme Staffing"
  },
  "employees": [
    {
      "employee_name": "Ann Smith",
      "employee_id": "1001",
      "earnings": [
        {"raw_code": "REG", "raw_description": "0-Regular Pay", "amount_current": 1200.50, "amount_ytd": 2401.00}
      ],
      "deductions": [],
      "taxes": [],
      "totals": null
    },`

func TestRepairRecoversRecordBoundaryTruncation(t *testing.T) {
	payload, ok := RepairTruncated(truncatedAtRecordBoundary, true)
	require.True(t, ok)
	require.Len(t, payload.Employees, 1)
	require.NotNil(t, payload.Employees[0].EmployeeName)
	assert.Equal(t, "Ann Smith", *payload.Employees[0].EmployeeName)
	require.NotNil(t, payload.ReportMetadata)
	require.NotNil(t, payload.ReportMetadata.ReportTitle)
	assert.Equal(t, "Payroll Register", *payload.ReportMetadata.ReportTitle)
}

func TestRepairOnlyFiresWhenTruncationFlagged(t *testing.T) {
	payload, ok := RepairTruncated(truncatedAtRecordBoundary, false)
	assert.False(t, ok)
	assert.Nil(t, payload)
}

func TestRepairGivesUpOnUnrecoverableText(t *testing.T) {
	_, ok := RepairTruncated("employees: [not json at all", true)
	assert.False(t, ok)
}

func TestBalanceClosesBracketsBeforeBraces(t *testing.T) {
	raw := "{\n  \"a\": 1,\n  \"b\": [\n    {\"c\": 2},\n    {\"d\":"
	fixed := balanceTruncatedJSON(raw)
	// two unmatched braces and one unmatched bracket in the input; the
	// closers come out brackets first
	assert.True(t, strings.HasSuffix(fixed, "\n]\n}\n}"), fixed)
	assert.NotContains(t, fixed, `"d"`)
}

func TestBalanceDropsIncompleteTrailingLines(t *testing.T) {
	raw := "{\n  \"employees\": [],\n  \"report_title\": \"Payro"
	fixed := balanceTruncatedJSON(raw)
	assert.Equal(t, "{\n  \"employees\": []\n}", fixed)
}
