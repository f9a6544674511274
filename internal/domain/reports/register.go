package reports

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"restopos/internal/domain/payroll"
)

const registerSheet = "Payroll"

var registerHeader = []string{
	"Employee", "Period", "Base salary", "Benefits", "Tips", "Deductions", "Net",
}

// BuildPayrollRegister renders settlements as an XLSX workbook, one
// row per payment plus a totals row.
func BuildPayrollRegister(rows []payroll.RegisterRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(registerSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for col, title := range registerHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(registerSheet, cell, title); err != nil {
			return nil, err
		}
	}

	var totalNet float64
	for i, row := range rows {
		values := []any{
			row.EmployeeName, row.Period, row.BaseSalary, row.Benefits,
			row.Tips, row.Deductions, row.Amount,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(registerSheet, cell, value); err != nil {
				return nil, err
			}
		}
		totalNet += row.Amount
	}

	totalRow := len(rows) + 2
	if err := f.SetCellValue(registerSheet, fmt.Sprintf("A%d", totalRow), "Total"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(registerSheet, fmt.Sprintf("G%d", totalRow), totalNet); err != nil {
		return nil, err
	}

	return f.WriteToBuffer()
}
