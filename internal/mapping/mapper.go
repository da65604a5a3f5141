package mapping

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/joseph-ayodele/payroll-register/constants"
	"github.com/joseph-ayodele/payroll-register/internal/entity"
)

// UnknownMarker is the deliberate placeholder for absent employee name/id.
// It keeps downstream indexing well-defined; those fields are never null.
const UnknownMarker = "Unknown"

// Mapper runs pass 2: a pure, deterministic projection of an interim record
// onto the canonical schema. No external calls; given the alias tables, the
// same input always yields the same output.
type Mapper struct {
	logger *slog.Logger
}

func NewMapper(logger *slog.Logger) *Mapper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mapper{logger: logger}
}

// MapInterim builds the canonical report for one interim record. An interim
// record with zero employees yields a valid report with only metadata
// populated, an explicit empty-input policy rather than an error. Exactly one
// canonical employee is produced per raw employee; nothing is dropped or
// merged.
func (m *Mapper) MapInterim(interim entity.InterimRecord) entity.CanonicalReport {
	report := entity.CanonicalReport{
		Section:   entity.PayrollRegisterSection,
		Employees: make([]entity.CanonicalEmployee, 0, len(interim.Employees)),
	}

	if interim.ReportMetadata != nil {
		report.Metadata.ReportMetadata = projectHeader(*interim.ReportMetadata)
	}
	if len(interim.SkippedPages) > 0 {
		report.Metadata.Notes = skippedPagesNote(interim.SkippedPages)
	}

	if len(interim.Employees) == 0 {
		m.logger.Warn("mapping.no_employees")
		return report
	}

	m.logger.Info("mapping.start", "employees", len(interim.Employees))
	for _, raw := range interim.Employees {
		report.Employees = append(report.Employees, mapEmployee(raw))
	}
	m.logger.Info("mapping.done", "employees", len(report.Employees))
	return report
}

// projectHeader copies report metadata fields into their canonical
// locations. Values are carried forward unchanged; pay frequency keeps the
// printed spelling with no classification applied.
func projectHeader(meta entity.RawReportMetadata) entity.ReportHeader {
	return entity.ReportHeader{
		ReportTitle: meta.ReportTitle,
		EmployerInfo: entity.EmployerInfo{
			CompanyName:   meta.CompanyName,
			CompanyNumber: meta.CompanyNumber,
		},
		ReportPeriod: entity.ReportPeriod{
			PayFrequency:    entity.ClassifiedField{Value: meta.PayFrequency},
			PeriodStartDate: meta.PayPeriodStart,
			PeriodEndDate:   meta.PayPeriodEnd,
			CheckDate:       meta.CheckDate,
		},
		RunInfo: entity.RunInfo{PayrollNumber: meta.PayrollNumber},
	}
}

// mapEmployee builds a fresh, fully-typed canonical record for one raw
// employee. Each call constructs its own value; there is no shared template
// to alias across records.
func mapEmployee(raw entity.RawEmployeeRecord) entity.CanonicalEmployee {
	name := UnknownMarker
	if raw.EmployeeName != nil && *raw.EmployeeName != "" {
		name = *raw.EmployeeName
	}
	id := UnknownMarker
	if raw.EmployeeID.IsSet() {
		id = raw.EmployeeID.String()
	}

	emp := entity.CanonicalEmployee{
		EmployeeInfo: entity.EmployeeInfo{
			EmployeeName: name,
			EmployeeID:   id,
			SSNMasked:    raw.SSNMasked,
			Department:   raw.Department,
			State:        raw.State,
			PayFrequency: raw.PayFrequency,
			TaxProfile: entity.TaxProfile{
				FederalFilingStatus: raw.TaxStatusFederal,
				FederalAllowances:   raw.TaxAllowancesFederal,
				StateFilingStatus:   raw.TaxStatusState,
				StateAllowances:     raw.TaxAllowancesState,
			},
		},
		PaymentInfo: entity.PaymentInfo{
			PaymentType: entity.ClassifiedField{Value: raw.PaymentType},
			CheckNumber: raw.CheckNumber,
		},
		Earnings:      entity.EarningsSection{EarningLines: mapEarningLines(raw.Earnings)},
		EmployeeTaxes: entity.TaxSection{TaxLines: mapTaxLines(raw.Taxes)},
		Deductions:    entity.DeductionSection{DeductionLines: mapDeductionLines(raw.Deductions)},
	}

	if raw.Totals != nil {
		emp.EmployeeTotals = entity.EmployeeTotals{
			GrossPay:           entity.Amount{Current: raw.Totals.GrossPayCurrent, YTD: raw.Totals.GrossPayYTD},
			TotalEmployeeTaxes: entity.Amount{Current: raw.Totals.TotalTaxesCurrent, YTD: raw.Totals.TotalTaxesYTD},
			TotalDeductions:    entity.Amount{Current: raw.Totals.TotalDeductionsCurrent, YTD: raw.Totals.TotalDeductionsYTD},
			NetPay:             entity.Amount{Current: raw.Totals.NetPayCurrent, YTD: raw.Totals.NetPayYTD},
		}
	}
	return emp
}

func mapEarningLines(raws []entity.RawLineItem) []entity.EarningLine {
	lines := make([]entity.EarningLine, 0, len(raws))
	for _, raw := range raws {
		lines = append(lines, entity.EarningLine{
			EarningCode:        raw.RawCode,
			EarningDescription: raw.RawDescription,
			EarningType:        Classify(constants.EarningTypes, deref(raw.RawDescription)),
			Rate: entity.ScalarAmount{
				Value:      raw.Rate,
				Confidence: presentConfidence(raw.Rate, 0.0),
			},
			Hours: entity.Amount{
				Current:    raw.HoursCurrent,
				YTD:        raw.HoursYTD,
				Confidence: presentConfidence(raw.HoursCurrent, 0.5),
			},
			Amount: entity.Amount{
				Current:    raw.AmountCurrent,
				YTD:        raw.AmountYTD,
				Confidence: presentConfidence(raw.AmountCurrent, 0.0),
			},
		})
	}
	return lines
}

func mapDeductionLines(raws []entity.RawLineItem) []entity.DeductionLine {
	lines := make([]entity.DeductionLine, 0, len(raws))
	for _, raw := range raws {
		dedType := Classify(constants.DeductionTypes, deref(raw.RawDescription))
		lines = append(lines, entity.DeductionLine{
			DeductionCode:        raw.RawCode,
			DeductionDescription: raw.RawDescription,
			DeductionType:        dedType,
			IsPreTax: entity.BoolField{
				Value:      IsPreTax(*dedType.Value),
				Confidence: ConfidencePreTax,
			},
			Amount: entity.Amount{
				Current:    raw.AmountCurrent,
				YTD:        raw.AmountYTD,
				Confidence: presentConfidence(raw.AmountCurrent, 0.0),
			},
		})
	}
	return lines
}

func mapTaxLines(raws []entity.RawLineItem) []entity.TaxLine {
	lines := make([]entity.TaxLine, 0, len(raws))
	for _, raw := range raws {
		res := ResolveTax(deref(raw.RawDescription))
		taxType := res.TaxType
		authority := string(res.Authority)
		typeConfidence := ConfidenceMatched
		if !res.Matched {
			typeConfidence = ConfidenceOther
		}
		lines = append(lines, entity.TaxLine{
			TaxCode:        raw.RawCode,
			TaxDescription: raw.RawDescription,
			TaxType:        entity.ClassifiedField{Value: &taxType, Confidence: typeConfidence},
			TaxAuthority:   entity.ClassifiedField{Value: &authority, Confidence: 0.95},
			Jurisdiction:   res.Jurisdiction,
			TaxAmount: entity.Amount{
				Current:    raw.AmountCurrent,
				YTD:        raw.AmountYTD,
				Confidence: presentConfidence(raw.AmountCurrent, 0.0),
			},
		})
	}
	return lines
}

// presentConfidence is the fixed policy for copied numeric fields: 1.0 when
// the source printed a value, otherwise the given floor.
func presentConfidence(v entity.RawValue, absent float64) float64 {
	if v.IsSet() {
		return 1.0
	}
	return absent
}

func skippedPagesNote(pages []int) string {
	parts := make([]string, len(pages))
	for i, p := range pages {
		parts[i] = strconv.Itoa(p)
	}
	return "Skipped pages due to token limits: [" + strings.Join(parts, ", ") + "]"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
