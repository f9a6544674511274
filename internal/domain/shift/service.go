package shift

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"restopos/internal/domain/orders"
)

// Notifier is implemented by the notifications service. A failed
// notification must not fail the shift close.
type Notifier interface {
	Notify(ctx context.Context, branchID, kind, message string) error
}

type Service struct {
	store          *Store
	orders         *orders.Service
	notifier       Notifier
	alertThreshold float64
}

func NewService(store *Store, ordersSvc *orders.Service, notifier Notifier, alertThreshold float64) *Service {
	return &Service{
		store:          store,
		orders:         ordersSvc,
		notifier:       notifier,
		alertThreshold: alertThreshold,
	}
}

// CloseShift reconciles the cashier's declared counts against the
// system totals for orders they closed today and appends the report.
// Reconciliation always succeeds; discrepancies are recorded, not
// rejected.
func (s *Service) CloseShift(ctx context.Context, branchID, userID, userName string, declared Totals, at time.Time) (Report, error) {
	closed, err := s.orders.ClosedByCashierOn(ctx, userID, at.Format("2006-01-02"))
	if err != nil {
		return Report{}, err
	}

	system := SystemTotals(closed)
	report, err := s.store.Create(ctx, Report{
		BranchID:      branchID,
		UserID:        userID,
		UserName:      userName,
		EndedAt:       at,
		System:        system,
		Declared:      declared,
		Discrepancies: Reconcile(system, declared),
	})
	if err != nil {
		return Report{}, err
	}

	if s.notifier != nil && s.alertThreshold > 0 && MaxAbs(report.Discrepancies) > s.alertThreshold {
		message := fmt.Sprintf("shift closed by %s with discrepancies cash %.2f card %.2f transfer %.2f",
			userName, report.Discrepancies.Cash, report.Discrepancies.Card, report.Discrepancies.Transfer)
		if err := s.notifier.Notify(ctx, branchID, "shift_discrepancy", message); err != nil {
			slog.Warn("shift discrepancy notification failed", "error", err, "reportId", report.ID)
		}
	}
	return report, nil
}

func (s *Service) Reports(ctx context.Context, branchID string, limit, offset int) ([]Report, error) {
	return s.store.ListByBranch(ctx, branchID, limit, offset)
}

func (s *Service) Report(ctx context.Context, branchID, reportID string) (Report, error) {
	return s.store.GetByID(ctx, branchID, reportID)
}
