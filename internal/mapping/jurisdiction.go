package mapping

import (
	"strings"

	"github.com/joseph-ayodele/payroll-register/constants"
)

// TaxResolution is the outcome of classifying one tax label: the canonical
// tax type, the taxing authority, and an optional region code.
type TaxResolution struct {
	TaxType      string
	Matched      bool
	Authority    constants.TaxAuthority
	Jurisdiction *string
}

// jurisdictionPrefixes are the region-prefix patterns recognized at the
// start of state tax labels, e.g. "MA: State WH".
var jurisdictionPrefixes = []string{"ma:", "ca:", "ny:", "tx:", "fl:"}

// ResolveTax classifies a tax description and derives its authority and
// jurisdiction. A recognized region prefix records the jurisdiction and
// tentatively marks the line State; a category match then derives the
// authority from the category name itself and overrides the tentative
// value. With no category match the type is "Other" and the authority
// defaults to Federal, keeping any prefix-detected jurisdiction.
func ResolveTax(description string) TaxResolution {
	desc := strings.ToLower(description)

	res := TaxResolution{TaxType: constants.Other, Authority: constants.AuthorityFederal}
	for _, prefix := range jurisdictionPrefixes {
		if strings.Contains(desc, prefix) {
			code := strings.ToUpper(strings.TrimSuffix(prefix, ":"))
			res.Jurisdiction = &code
			res.Authority = constants.AuthorityState
			break
		}
	}

	for _, entry := range constants.AliasTable(constants.TaxTypes) {
		for _, alias := range entry.Aliases {
			if strings.Contains(desc, strings.ToLower(alias)) {
				res.TaxType = entry.Category
				res.Matched = true
				if authority, ok := authorityFromCategory(entry.Category); ok {
					res.Authority = authority
				}
				return res
			}
		}
	}
	return res
}

// authorityFromCategory reads the authority off the canonical category name:
// federal or payroll-tax markers imply Federal, state or state-insurance
// markers imply State, local implies Local. Category names carrying no
// marker (Medicare) keep whatever the prefix step decided.
func authorityFromCategory(category string) (constants.TaxAuthority, bool) {
	c := strings.ToLower(category)
	switch {
	case strings.Contains(c, "federal") || strings.Contains(c, "fica"):
		return constants.AuthorityFederal, true
	case strings.Contains(c, "state") || strings.Contains(c, "sdi") || strings.Contains(c, "sui"):
		return constants.AuthorityState, true
	case strings.Contains(c, "local"):
		return constants.AuthorityLocal, true
	default:
		return "", false
	}
}
