package entity

// RawLineItem is one earning, deduction or tax line exactly as printed on
// the source page. Nothing is normalized at this stage; absent values are
// nil pointers or unset RawValues, never empty-string stand-ins.
type RawLineItem struct {
	RawCode        RawValue `json:"raw_code"`
	RawDescription *string  `json:"raw_description"`
	Rate           RawValue `json:"rate,omitempty"`
	HoursCurrent   RawValue `json:"hours_current,omitempty"`
	HoursYTD       RawValue `json:"hours_ytd,omitempty"`
	AmountCurrent  RawValue `json:"amount_current"`
	AmountYTD      RawValue `json:"amount_ytd"`
}

// RawTotals is the per-employee totals block as printed.
type RawTotals struct {
	GrossPayCurrent        RawValue `json:"gross_pay_current"`
	GrossPayYTD            RawValue `json:"gross_pay_ytd"`
	TotalDeductionsCurrent RawValue `json:"total_deductions_current"`
	TotalDeductionsYTD     RawValue `json:"total_deductions_ytd"`
	TotalTaxesCurrent      RawValue `json:"total_taxes_current"`
	TotalTaxesYTD          RawValue `json:"total_taxes_ytd"`
	NetPayCurrent          RawValue `json:"net_pay_current"`
	NetPayYTD              RawValue `json:"net_pay_ytd"`
}

// RawEmployeeRecord is one employee-page-section as extracted. Records are
// NOT deduplicated across pages: an employee whose section spans two pages
// and is detected on both yields two records.
type RawEmployeeRecord struct {
	EmployeeName         *string  `json:"employee_name"`
	EmployeeID           RawValue `json:"employee_id"`
	SSNMasked            *string  `json:"ssn_masked"`
	Department           *string  `json:"department"`
	PaymentType          *string  `json:"payment_type"`
	CheckNumber          RawValue `json:"check_number"`
	State                *string  `json:"state"`
	PayFrequency         *string  `json:"pay_frequency,omitempty"`
	TaxStatusFederal     *string  `json:"tax_status_federal"`
	TaxAllowancesFederal RawValue `json:"tax_allowances_federal"`
	TaxStatusState       *string  `json:"tax_status_state,omitempty"`
	TaxAllowancesState   RawValue `json:"tax_allowances_state,omitempty"`

	Earnings   []RawLineItem `json:"earnings"`
	Deductions []RawLineItem `json:"deductions"`
	Taxes      []RawLineItem `json:"taxes"`
	Totals     *RawTotals    `json:"totals"`
}

// RawReportMetadata is the report header, populated once from the first
// page that yields it and never overwritten.
type RawReportMetadata struct {
	ReportTitle    *string  `json:"report_title"`
	CompanyName    *string  `json:"company_name"`
	CompanyNumber  RawValue `json:"company_number"`
	PayPeriodStart *string  `json:"pay_period_start"`
	PayPeriodEnd   *string  `json:"pay_period_end"`
	CheckDate      *string  `json:"check_date"`
	PayrollNumber  RawValue `json:"payroll_number"`
	PayFrequency   *string  `json:"pay_frequency"`
}

// PagePayload is the structured payload expected from one generation call.
type PagePayload struct {
	ReportMetadata *RawReportMetadata  `json:"report_metadata"`
	Employees      []RawEmployeeRecord `json:"employees"`
}

// InterimRecord is the per-document aggregate of raw page extractions
// (interim.json). SkippedPages lists every page that contributed zero
// employees, whatever the cause.
type InterimRecord struct {
	ReportMetadata *RawReportMetadata  `json:"report_metadata"`
	Employees      []RawEmployeeRecord `json:"employees"`
	SkippedPages   []int               `json:"skipped_pages"`
}
