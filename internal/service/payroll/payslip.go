package payroll

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/meridianhr/payroll-backend-go/internal/domain/payroll"
	"github.com/meridianhr/payroll-backend-go/internal/domain/salary"
	"github.com/shopspring/decimal"
)

// GeneratePayslipPDF renders one employee's payslip for a generated period.
func (s *PayrollServiceImpl) GeneratePayslipPDF(ctx context.Context, month, year int, employeeID string) ([]byte, error) {
	run, err := s.payrollRepo.GetRunByPeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}

	items, err := s.payrollRepo.ListItemsByRunAndEmployee(ctx, run.ID, employeeID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, payroll.ErrNoItemsForEmployee
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	components, err := s.salaryRepo.ListComponents(ctx, false)
	if err != nil {
		return nil, err
	}
	typeByID := make(map[string]salary.ComponentType, len(components))
	for _, c := range components {
		typeByID[c.ID] = c.Type
	}

	gross := decimal.Zero
	deductions := decimal.Zero
	for _, item := range items {
		if typeByID[item.ComponentID] == salary.ComponentTypeEarning {
			gross = gross.Add(item.Amount)
		} else {
			deductions = deductions.Add(item.Amount)
		}
	}
	net := gross.Sub(deductions)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", emp.FullName, emp.EmployeeCode))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s %d", time.Month(run.Month).String(), run.Year))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Run date: %s  Status: %s", run.RunDate.Format("2006-01-02"), run.Status))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(120, 8, "Component")
	pdf.Cell(0, 8, "Amount")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for _, item := range items {
		name := item.ComponentID
		if item.ComponentName != nil {
			name = *item.ComponentName
		}
		amount := item.Amount
		if typeByID[item.ComponentID] != salary.ComponentTypeEarning {
			amount = amount.Neg()
		}
		pdf.Cell(120, 7, name)
		pdf.Cell(0, 7, amount.StringFixed(2))
		pdf.Ln(7)
	}
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(120, 8, "Gross")
	pdf.Cell(0, 8, gross.StringFixed(2))
	pdf.Ln(7)
	pdf.Cell(120, 8, "Deductions")
	pdf.Cell(0, 8, deductions.StringFixed(2))
	pdf.Ln(7)
	pdf.Cell(120, 8, "Net pay")
	pdf.Cell(0, 8, net.StringFixed(2))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip: %w", err)
	}

	return buf.Bytes(), nil
}
