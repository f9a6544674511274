package reports

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"restopos/internal/domain/shift"
)

// BuildShiftReportPDF renders the system/declared/discrepancy table
// for one shift close.
func BuildShiftReportPDF(report shift.Report) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "End of Shift Report")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Cashier: %s", report.UserName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Closed at: %s", report.EndedAt.Format("2006-01-02 15:04")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	for _, header := range []string{"Channel", "System", "Declared", "Difference"} {
		pdf.CellFormat(45, 8, header, "1", 0, "", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 12)
	rows := []struct {
		label       string
		system      float64
		declared    float64
		discrepancy float64
	}{
		{"Cash", report.System.Cash, report.Declared.Cash, report.Discrepancies.Cash},
		{"Card", report.System.Card, report.Declared.Card, report.Discrepancies.Card},
		{"Transfer", report.System.Transfer, report.Declared.Transfer, report.Discrepancies.Transfer},
	}
	for _, row := range rows {
		pdf.CellFormat(45, 8, row.label, "1", 0, "", false, 0, "")
		pdf.CellFormat(45, 8, fmt.Sprintf("%.2f", row.system), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 8, fmt.Sprintf("%.2f", row.declared), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 8, fmt.Sprintf("%.2f", row.discrepancy), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}
