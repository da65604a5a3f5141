package mapping

import (
	"strings"

	"github.com/joseph-ayodele/payroll-register/constants"
	"github.com/joseph-ayodele/payroll-register/internal/entity"
)

// Fixed confidence policy. Classification confidence is two-valued by
// design: a containment hit scores the same regardless of how specific the
// alias was, and anything unmatched lands in "Other".
const (
	ConfidenceMatched = 0.85
	ConfidenceOther   = 0.3
	ConfidencePreTax  = 0.95
)

// Classify maps a free-text label to a canonical category of the given
// taxonomy. The description is lower-cased and the taxonomy's alias table is
// scanned in declaration order; the first alias contained in the description
// wins, so table order is the tie-break on ambiguous labels. No match
// yields "Other" at low confidence.
func Classify(taxonomy constants.Taxonomy, description string) entity.ClassifiedField {
	category, matched := matchCategory(constants.AliasTable(taxonomy), description)
	confidence := ConfidenceMatched
	if !matched {
		confidence = ConfidenceOther
	}
	return entity.ClassifiedField{Value: &category, Confidence: confidence}
}

// matchCategory runs the ordered containment scan shared by Classify and
// the tax resolver.
func matchCategory(entries []constants.AliasEntry, description string) (string, bool) {
	desc := strings.ToLower(description)
	for _, entry := range entries {
		for _, alias := range entry.Aliases {
			if strings.Contains(desc, strings.ToLower(alias)) {
				return entry.Category, true
			}
		}
	}
	return constants.Other, false
}

// IsPreTax reports whether a canonical deduction category is taken before
// tax. This is a static rule lookup over a short list, which is why its
// confidence is fixed at ConfidencePreTax rather than inferred.
func IsPreTax(deductionType string) bool {
	preTax := []string{"401k", "403b", "fsa", "hsa"}
	d := strings.ToLower(deductionType)
	for _, marker := range preTax {
		if strings.Contains(d, marker) {
			return true
		}
	}
	return false
}
