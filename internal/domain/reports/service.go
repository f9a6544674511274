package reports

import (
	"bytes"
	"context"

	"restopos/internal/domain/payroll"
	"restopos/internal/domain/shift"
)

type Service struct {
	store   *Store
	payroll *payroll.Store
	shift   *shift.Service
}

func NewService(store *Store, payrollStore *payroll.Store, shiftSvc *shift.Service) *Service {
	return &Service{store: store, payroll: payrollStore, shift: shiftSvc}
}

func (s *Service) DailySales(ctx context.Context, branchID, date string) (SalesSummary, error) {
	return s.store.DailySales(ctx, branchID, date)
}

func (s *Service) TopProducts(ctx context.Context, branchID, fromDate, toDate string, limit int) ([]TopProduct, error) {
	return s.store.TopProducts(ctx, branchID, fromDate, toDate, limit)
}

func (s *Service) PayrollOutlay(ctx context.Context, branchID, fromPeriod, toPeriod string) (float64, error) {
	return s.store.PayrollOutlay(ctx, branchID, fromPeriod, toPeriod)
}

// PayrollRegister exports the branch's settlements for a period range
// as an XLSX workbook.
func (s *Service) PayrollRegister(ctx context.Context, branchID, fromPeriod, toPeriod string) (*bytes.Buffer, error) {
	rows, err := s.payroll.RegisterRows(ctx, branchID, fromPeriod, toPeriod)
	if err != nil {
		return nil, err
	}
	return BuildPayrollRegister(rows)
}

// ShiftReportPDF renders one end-of-shift reconciliation as a PDF.
func (s *Service) ShiftReportPDF(ctx context.Context, branchID, reportID string) (*bytes.Buffer, error) {
	report, err := s.shift.Report(ctx, branchID, reportID)
	if err != nil {
		return nil, err
	}
	return BuildShiftReportPDF(report)
}
