package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAcceptsNumberOrStringValues(t *testing.T) {
	raw := `{
	  "report_metadata": null,
	  "employees": [{
	    "employee_id": 1001,
	    "earnings": [
	      {"raw_code": "REG", "raw_description": "0-Regular Pay", "amount_current": "1,200.50", "amount_ytd": 2401}
	    ]
	  }]
	}`
	payload, err := DecodePagePayload([]byte(raw))
	require.NoError(t, err)
	require.Len(t, payload.Employees, 1)

	emp := payload.Employees[0]
	assert.Equal(t, "1001", emp.EmployeeID.String())

	require.Len(t, emp.Earnings, 1)
	f, ok := emp.Earnings[0].AmountCurrent.Float()
	assert.True(t, ok)
	assert.Equal(t, 1200.5, f)
	f, ok = emp.Earnings[0].AmountYTD.Float()
	assert.True(t, ok)
	assert.Equal(t, 2401.0, f)
}

func TestDecodeRejectsWrongStructuralShape(t *testing.T) {
	_, err := DecodePagePayload([]byte(`{"employees": {"employee_name": "Ann"}}`))
	assert.Error(t, err)

	_, err = DecodePagePayload([]byte(`{"employees": [{"earnings": {"raw_code": "REG"}}]}`))
	assert.Error(t, err)
}

func TestPromptEmbedsPageNumberAndText(t *testing.T) {
	prompt := BuildExtractorPrompt(3, "0-Regular Pay 40.00 1200.00\n")
	assert.Contains(t, prompt, "PAGE 3:\n0-Regular Pay 40.00 1200.00")
	assert.Contains(t, prompt, "OUTPUT ONLY JSON.")
}
