package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"restopos/internal/domain/payroll"
)

func TestBuildPayrollRegister(t *testing.T) {
	rows := []payroll.RegisterRow{
		{EmployeeName: "Laura", Period: "2026-03-08", BaseSalary: 1500, Benefits: 210, Tips: 150, Deductions: 0, Amount: 1860},
		{EmployeeName: "Marco", Period: "2026-03-08", BaseSalary: 1200, Benefits: 140, Tips: 0, Deductions: 100, Amount: 1240},
	}

	buf, err := BuildPayrollRegister(rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{registerSheet}, f.GetSheetList())

	name, err := f.GetCellValue(registerSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Laura", name)

	net, err := f.GetCellValue(registerSheet, "G3")
	require.NoError(t, err)
	assert.Equal(t, "1240", net)

	label, err := f.GetCellValue(registerSheet, "A4")
	require.NoError(t, err)
	assert.Equal(t, "Total", label)

	total, err := f.GetCellValue(registerSheet, "G4")
	require.NoError(t, err)
	assert.Equal(t, "3100", total)
}

func TestBuildPayrollRegisterEmpty(t *testing.T) {
	buf, err := BuildPayrollRegister(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	label, err := f.GetCellValue(registerSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Total", label)
}
