package entity

// ClassifiedField carries a canonical category value plus a fixed-policy
// confidence scalar. Confidence is a rule lookup, not a probability.
type ClassifiedField struct {
	Value      *string `json:"value"`
	Confidence float64 `json:"confidence"`
}

// BoolField is a derived boolean with its fixed confidence.
type BoolField struct {
	Value      bool    `json:"value"`
	Confidence float64 `json:"confidence"`
}

// ScalarAmount is a single value with confidence (e.g. an hourly rate).
type ScalarAmount struct {
	Value      RawValue `json:"value"`
	Confidence float64  `json:"confidence"`
}

// Amount is a current/year-to-date pair with confidence.
type Amount struct {
	Current    RawValue `json:"current"`
	YTD        RawValue `json:"ytd"`
	Confidence float64  `json:"confidence"`
}

// EmployerInfo is the employer block of the report header.
type EmployerInfo struct {
	CompanyName   *string  `json:"company_name"`
	CompanyNumber RawValue `json:"company_number"`
}

// ReportPeriod holds pay-period bounds and check date.
type ReportPeriod struct {
	PayFrequency    ClassifiedField `json:"pay_frequency"`
	PeriodStartDate *string         `json:"period_start_date"`
	PeriodEndDate   *string         `json:"period_end_date"`
	CheckDate       *string         `json:"check_date"`
}

// RunInfo holds payroll run identifiers.
type RunInfo struct {
	PayrollNumber RawValue `json:"payroll_number"`
}

// ReportHeader is the canonical projection of RawReportMetadata.
type ReportHeader struct {
	ReportTitle  *string      `json:"report_title"`
	EmployerInfo EmployerInfo `json:"employer_info"`
	ReportPeriod ReportPeriod `json:"report_period"`
	RunInfo      RunInfo      `json:"run_info"`
}

// CanonicalMetadata is the metadata section of the canonical report.
// Notes carries audit remarks such as skipped page numbers.
type CanonicalMetadata struct {
	SourceFilename      *string      `json:"source_filename"`
	ExtractionTimestamp *string      `json:"extraction_timestamp"`
	ReportMetadata      ReportHeader `json:"report_metadata"`
	Notes               string       `json:"notes,omitempty"`
}

// TaxProfile is the employee's filing status and withholding setup.
type TaxProfile struct {
	FederalFilingStatus *string  `json:"federal_filing_status"`
	FederalAllowances   RawValue `json:"federal_allowances"`
	StateFilingStatus   *string  `json:"state_filing_status"`
	StateAllowances     RawValue `json:"state_allowances"`
}

// EmployeeInfo is employee identity and classification. Name and ID default
// to the literal "Unknown" when absent so downstream indexing stays
// well-defined; they are never null.
type EmployeeInfo struct {
	EmployeeName string     `json:"employee_name"`
	EmployeeID   string     `json:"employee_id"`
	SSNMasked    *string    `json:"ssn_masked"`
	Department   *string    `json:"department"`
	State        *string    `json:"state"`
	PayFrequency *string    `json:"pay_frequency"`
	TaxProfile   TaxProfile `json:"tax_profile"`
}

// PaymentInfo is how the employee was paid in this run.
type PaymentInfo struct {
	PaymentType ClassifiedField `json:"payment_type"`
	CheckNumber RawValue        `json:"check_number"`
}

// EarningLine is one classified earning line item.
type EarningLine struct {
	EarningCode        RawValue        `json:"earning_code"`
	EarningDescription *string         `json:"earning_description"`
	EarningType        ClassifiedField `json:"earning_type"`
	Rate               ScalarAmount    `json:"rate"`
	Hours              Amount          `json:"hours"`
	Amount             Amount          `json:"amount"`
	Notes              string          `json:"notes"`
}

// DeductionLine is one classified deduction line item.
type DeductionLine struct {
	DeductionCode        RawValue        `json:"deduction_code"`
	DeductionDescription *string         `json:"deduction_description"`
	DeductionType        ClassifiedField `json:"deduction_type"`
	IsPreTax             BoolField       `json:"is_pre_tax"`
	Amount               Amount          `json:"amount"`
	Notes                string          `json:"notes"`
}

// TaxLine is one classified tax withholding line.
type TaxLine struct {
	TaxCode        RawValue        `json:"tax_code"`
	TaxDescription *string         `json:"tax_description"`
	TaxType        ClassifiedField `json:"tax_type"`
	TaxAuthority   ClassifiedField `json:"tax_authority"`
	Jurisdiction   *string         `json:"jurisdiction"`
	TaxAmount      Amount          `json:"tax_amount"`
	Notes          string          `json:"notes"`
}

// EarningsSection groups the classified earning lines for one employee.
type EarningsSection struct {
	EarningLines []EarningLine `json:"earning_lines"`
}

// TaxSection groups the classified tax lines for one employee.
type TaxSection struct {
	TaxLines []TaxLine `json:"tax_lines"`
}

// DeductionSection groups the classified deduction lines for one employee.
type DeductionSection struct {
	DeductionLines []DeductionLine `json:"deduction_lines"`
}

// EmployeeTotals is the employee-level totals rollup copied from the raw
// totals block.
type EmployeeTotals struct {
	GrossPay           Amount `json:"gross_pay"`
	TotalEmployeeTaxes Amount `json:"total_employee_taxes"`
	TotalDeductions    Amount `json:"total_deductions"`
	NetPay             Amount `json:"net_pay"`
}

// CanonicalEmployee is the fully classified record for one raw employee
// section. Derived deterministically from exactly one RawEmployeeRecord.
type CanonicalEmployee struct {
	EmployeeInfo   EmployeeInfo     `json:"employee_info"`
	PaymentInfo    PaymentInfo      `json:"payment_info"`
	Earnings       EarningsSection  `json:"earnings"`
	EmployeeTaxes  TaxSection       `json:"employee_taxes"`
	Deductions     DeductionSection `json:"deductions"`
	EmployeeTotals EmployeeTotals   `json:"employee_totals"`
}

// DepartmentTotals is a department-level rollup slot. Declared in the target
// schema; this pipeline never populates it.
type DepartmentTotals struct {
	Department       *string        `json:"department"`
	DepartmentNumber RawValue       `json:"department_number"`
	Totals           EmployeeTotals `json:"totals"`
}

// CompanyTotals is the run-wide rollup slot. Declared in the target schema;
// this pipeline never populates it.
type CompanyTotals struct {
	EmployeeCount      *int   `json:"employee_count"`
	GrossPay           Amount `json:"gross_pay"`
	TotalEmployeeTaxes Amount `json:"total_employee_taxes"`
	TotalDeductions    Amount `json:"total_deductions"`
	NetPay             Amount `json:"net_pay"`
}

// Rollups holds cross-employee aggregates. Populating them is out of scope
// for the two-pass pipeline; the slots exist so the artifact matches the
// target schema.
type Rollups struct {
	DepartmentTotals []DepartmentTotals `json:"department_totals"`
	CompanyTotals    CompanyTotals      `json:"company_totals"`
}

// CanonicalReport is the final artifact of the pipeline (mapped.json).
type CanonicalReport struct {
	Section   string              `json:"section"`
	Metadata  CanonicalMetadata   `json:"metadata"`
	Employees []CanonicalEmployee `json:"employees"`
	Rollups   Rollups             `json:"rollups"`
}

// PayrollRegisterSection is the fixed section tag on canonical reports.
const PayrollRegisterSection = "PayrollRegister"
