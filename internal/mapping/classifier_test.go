package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/payroll-register/constants"
)

func TestClassifyMatchesLiteralRegisterLabels(t *testing.T) {
	res := Classify(constants.EarningTypes, "0-Regular Pay")
	require.NotNil(t, res.Value)
	assert.Equal(t, "Regular Pay", *res.Value)
	assert.Equal(t, ConfidenceMatched, res.Confidence)

	res = Classify(constants.DeductionTypes, "4-401K Plan")
	require.NotNil(t, res.Value)
	assert.Equal(t, "Retirement - 401k", *res.Value)
	assert.Equal(t, ConfidenceMatched, res.Confidence)
}

func TestClassifyFallsBackToOther(t *testing.T) {
	res := Classify(constants.EarningTypes, "Shift Differential")
	require.NotNil(t, res.Value)
	assert.Equal(t, constants.Other, *res.Value)
	assert.Equal(t, ConfidenceOther, res.Confidence)
}

func TestClassifyConfidenceIsTwoValued(t *testing.T) {
	descriptions := []string{
		"0-Regular Pay", "OT Pay", "2-Sick Pay", "Holiday Hours",
		"Shift Differential", "totally unknown", "",
	}
	for _, d := range descriptions {
		res := Classify(constants.EarningTypes, d)
		require.NotNil(t, res.Value, d)
		if *res.Value == constants.Other {
			assert.Equal(t, ConfidenceOther, res.Confidence, d)
		} else {
			assert.Equal(t, ConfidenceMatched, res.Confidence, d)
		}
	}
}

func TestClassifyTableOrderBreaksTies(t *testing.T) {
	// "Medical FSA" contains aliases of both Health Insurance and FSA;
	// the earlier table entry wins.
	res := Classify(constants.DeductionTypes, "Medical FSA")
	require.NotNil(t, res.Value)
	assert.Equal(t, "Health Insurance", *res.Value)
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	res := Classify(constants.PaymentTypes, "direct deposit")
	require.NotNil(t, res.Value)
	assert.Equal(t, "Direct Deposit", *res.Value)
}

func TestIsPreTax(t *testing.T) {
	assert.True(t, IsPreTax("Retirement - 401k"))
	assert.True(t, IsPreTax("Retirement - 403b"))
	assert.True(t, IsPreTax("FSA"))
	assert.True(t, IsPreTax("HSA"))
	assert.False(t, IsPreTax("Union Dues"))
	assert.False(t, IsPreTax("Child Support"))
	assert.False(t, IsPreTax(constants.Other))
}
