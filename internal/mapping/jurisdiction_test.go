package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/payroll-register/constants"
)

func TestResolveTaxStatePrefix(t *testing.T) {
	res := ResolveTax("MA: State WH")
	assert.Equal(t, "State Income Tax", res.TaxType)
	assert.True(t, res.Matched)
	assert.Equal(t, constants.AuthorityState, res.Authority)
	require.NotNil(t, res.Jurisdiction)
	assert.Equal(t, "MA", *res.Jurisdiction)
}

func TestResolveTaxFederalWithholding(t *testing.T) {
	res := ResolveTax("Federal WH")
	assert.Equal(t, "Federal Income Tax", res.TaxType)
	assert.True(t, res.Matched)
	assert.Equal(t, constants.AuthorityFederal, res.Authority)
	assert.Nil(t, res.Jurisdiction)
}

func TestResolveTaxPrefixSurvivesUnmarkedCategory(t *testing.T) {
	// Medicare's category name carries no authority marker, so the
	// prefix-derived State authority is kept alongside the jurisdiction.
	res := ResolveTax("MA: Medicare")
	assert.Equal(t, "Medicare", res.TaxType)
	assert.Equal(t, constants.AuthorityState, res.Authority)
	require.NotNil(t, res.Jurisdiction)
	assert.Equal(t, "MA", *res.Jurisdiction)

	res = ResolveTax("Medicare")
	assert.Equal(t, constants.AuthorityFederal, res.Authority)
	assert.Nil(t, res.Jurisdiction)
}

func TestResolveTaxCategoryNameOverridesPrefix(t *testing.T) {
	res := ResolveTax("NY: City Tax")
	assert.Equal(t, "Local Income Tax", res.TaxType)
	assert.Equal(t, constants.AuthorityLocal, res.Authority)
	require.NotNil(t, res.Jurisdiction)
	assert.Equal(t, "NY", *res.Jurisdiction)
}

func TestResolveTaxStateInsuranceMarker(t *testing.T) {
	res := ResolveTax("CA SDI")
	assert.Equal(t, "SDI", res.TaxType)
	assert.Equal(t, constants.AuthorityState, res.Authority)
	// no colon, so no jurisdiction prefix was detected
	assert.Nil(t, res.Jurisdiction)
}

func TestResolveTaxUnmatchedDefaultsFederal(t *testing.T) {
	res := ResolveTax("Mystery Levy")
	assert.Equal(t, constants.Other, res.TaxType)
	assert.False(t, res.Matched)
	assert.Equal(t, constants.AuthorityFederal, res.Authority)
	assert.Nil(t, res.Jurisdiction)
}
