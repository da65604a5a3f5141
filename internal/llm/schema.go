package llm

// BuildPagePayloadJSONSchema returns the JSON-Schema (draft 2020-12 subset)
// for one page's generation payload, as a generic map. It is deliberately
// permissive about value types: the model is told to preserve source
// formatting, so amounts may arrive as numbers or as strings like "(5.50)".
// What it does pin down is the structural shape (employees must be an
// array of objects, line-item lists must be arrays) so a garbled
// response is rejected before it can pollute the interim record.
func BuildPagePayloadJSONSchema() map[string]any {
	lineItem := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"raw_code":        rawProp(),
			"raw_description": nullableString(),
			"rate":            rawProp(),
			"hours_current":   rawProp(),
			"hours_ytd":       rawProp(),
			"amount_current":  rawProp(),
			"amount_ytd":      rawProp(),
		},
	}
	lineItems := map[string]any{"type": "array", "items": lineItem}

	totals := map[string]any{
		"type": []string{"object", "null"},
		"properties": map[string]any{
			"gross_pay_current":        rawProp(),
			"gross_pay_ytd":            rawProp(),
			"total_deductions_current": rawProp(),
			"total_deductions_ytd":     rawProp(),
			"total_taxes_current":      rawProp(),
			"total_taxes_ytd":          rawProp(),
			"net_pay_current":          rawProp(),
			"net_pay_ytd":              rawProp(),
		},
	}

	employee := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"employee_name":          nullableString(),
			"employee_id":            rawProp(),
			"ssn_masked":             nullableString(),
			"department":             nullableString(),
			"payment_type":           nullableString(),
			"check_number":           rawProp(),
			"state":                  nullableString(),
			"pay_frequency":          nullableString(),
			"tax_status_federal":     nullableString(),
			"tax_allowances_federal": rawProp(),
			"tax_status_state":       nullableString(),
			"tax_allowances_state":   rawProp(),
			"earnings":               lineItems,
			"deductions":             lineItems,
			"taxes":                  lineItems,
			"totals":                 totals,
		},
	}

	metadata := map[string]any{
		"type": []string{"object", "null"},
		"properties": map[string]any{
			"report_title":     nullableString(),
			"company_name":     nullableString(),
			"company_number":   rawProp(),
			"pay_period_start": nullableString(),
			"pay_period_end":   nullableString(),
			"check_date":       nullableString(),
			"payroll_number":   rawProp(),
			"pay_frequency":    nullableString(),
		},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"report_metadata": metadata,
			"employees":       map[string]any{"type": "array", "items": employee},
		},
	}
}

func rawProp() map[string]any {
	return map[string]any{"type": []string{"number", "string", "null"}}
}

func nullableString() map[string]any {
	return map[string]any{"type": []string{"string", "null"}}
}
