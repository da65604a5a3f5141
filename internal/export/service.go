package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/payroll-register/internal/entity"
)

// Service renders canonical reports into XLSX workbooks for review.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// BuildRegisterXLSX returns an XLSX workbook (as bytes) for a canonical
// report: an Employees sheet with identity and totals, and a Lines sheet
// with every classified line item and its confidence.
func (s *Service) BuildRegisterXLSX(report entity.CanonicalReport) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const employeesSheet = "Employees"
	const linesSheet = "Lines"

	// excelize starts with "Sheet1"; rename it and add the second sheet.
	if err := f.SetSheetName("Sheet1", employeesSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(linesSheet); err != nil {
		return nil, fmt.Errorf("add sheet: %w", err)
	}

	empHeaders := []string{
		"Employee Name",
		"Employee ID",
		"Department",
		"State",
		"Payment Type",
		"Gross Pay (Current)",
		"Gross Pay (YTD)",
		"Total Taxes (Current)",
		"Total Deductions (Current)",
		"Net Pay (Current)",
		"Net Pay (YTD)",
	}
	for i, h := range empHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(employeesSheet, cell, h)
	}

	lineHeaders := []string{
		"Employee Name",
		"Kind",
		"Code",
		"Description",
		"Type",
		"Type Confidence",
		"Authority",
		"Jurisdiction",
		"Rate",
		"Hours (Current)",
		"Amount (Current)",
		"Amount (YTD)",
	}
	for i, h := range lineHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(linesSheet, cell, h)
	}

	empRow := 2
	lineRow := 2
	writeEmp := func(col int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, empRow)
		_ = f.SetCellValue(employeesSheet, cell, v)
	}
	writeLine := func(col int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, lineRow)
		_ = f.SetCellValue(linesSheet, cell, v)
	}

	for _, emp := range report.Employees {
		writeEmp(1, emp.EmployeeInfo.EmployeeName)
		writeEmp(2, emp.EmployeeInfo.EmployeeID)
		writeEmp(3, derefOrDash(emp.EmployeeInfo.Department))
		writeEmp(4, derefOrDash(emp.EmployeeInfo.State))
		writeEmp(5, derefOrDash(emp.PaymentInfo.PaymentType.Value))
		writeEmp(6, cellNumber(emp.EmployeeTotals.GrossPay.Current))
		writeEmp(7, cellNumber(emp.EmployeeTotals.GrossPay.YTD))
		writeEmp(8, cellNumber(emp.EmployeeTotals.TotalEmployeeTaxes.Current))
		writeEmp(9, cellNumber(emp.EmployeeTotals.TotalDeductions.Current))
		writeEmp(10, cellNumber(emp.EmployeeTotals.NetPay.Current))
		writeEmp(11, cellNumber(emp.EmployeeTotals.NetPay.YTD))
		empRow++

		for _, l := range emp.Earnings.EarningLines {
			writeLine(1, emp.EmployeeInfo.EmployeeName)
			writeLine(2, "Earning")
			writeLine(3, l.EarningCode.String())
			writeLine(4, derefOrDash(l.EarningDescription))
			writeLine(5, derefOrDash(l.EarningType.Value))
			writeLine(6, l.EarningType.Confidence)
			writeLine(9, cellNumber(l.Rate.Value))
			writeLine(10, cellNumber(l.Hours.Current))
			writeLine(11, cellNumber(l.Amount.Current))
			writeLine(12, cellNumber(l.Amount.YTD))
			lineRow++
		}
		for _, l := range emp.Deductions.DeductionLines {
			writeLine(1, emp.EmployeeInfo.EmployeeName)
			writeLine(2, "Deduction")
			writeLine(3, l.DeductionCode.String())
			writeLine(4, derefOrDash(l.DeductionDescription))
			writeLine(5, derefOrDash(l.DeductionType.Value))
			writeLine(6, l.DeductionType.Confidence)
			writeLine(11, cellNumber(l.Amount.Current))
			writeLine(12, cellNumber(l.Amount.YTD))
			lineRow++
		}
		for _, l := range emp.EmployeeTaxes.TaxLines {
			writeLine(1, emp.EmployeeInfo.EmployeeName)
			writeLine(2, "Tax")
			writeLine(3, l.TaxCode.String())
			writeLine(4, derefOrDash(l.TaxDescription))
			writeLine(5, derefOrDash(l.TaxType.Value))
			writeLine(6, l.TaxType.Confidence)
			writeLine(7, derefOrDash(l.TaxAuthority.Value))
			writeLine(8, derefOrDash(l.Jurisdiction))
			writeLine(11, cellNumber(l.TaxAmount.Current))
			writeLine(12, cellNumber(l.TaxAmount.YTD))
			lineRow++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.register.ok",
		"employees", len(report.Employees),
		"lines", lineRow-2,
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// cellNumber prefers a parsed numeric cell; formatted values that don't
// parse (e.g. "(5.50)") are written verbatim so nothing is lost.
func cellNumber(v entity.RawValue) any {
	if !v.IsSet() {
		return ""
	}
	if fl, ok := v.Float(); ok {
		return fl
	}
	return v.String()
}

func derefOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
