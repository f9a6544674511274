package attendance

import (
	"context"
	"time"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// ClockIn opens the day's attendance record for an employee. A second
// clock-in on the same day is rejected with ErrAlreadyClockedIn; the
// caller treats that as an idempotent no-op, not a failure.
func (s *Service) ClockIn(ctx context.Context, branchID, employeeID string, at time.Time) (Record, error) {
	return s.store.CreateRecord(ctx, branchID, employeeID, at.Format(DateLayout), at)
}

// ClockOut closes the day's open record. Without a prior clock-in the
// action is rejected with ErrNoOpenRecord.
func (s *Service) ClockOut(ctx context.Context, employeeID string, at time.Time) (Record, error) {
	return s.store.CloseRecord(ctx, employeeID, at.Format(DateLayout), at)
}

// WindowRecords returns the employee's records for the trailing window
// of windowDays calendar days ending at asOf (inclusive).
func (s *Service) WindowRecords(ctx context.Context, employeeID string, asOf time.Time, windowDays int) ([]Record, error) {
	since := asOf.AddDate(0, 0, -(windowDays - 1)).Format(DateLayout)
	return s.store.ListByEmployeeSince(ctx, employeeID, since)
}

func (s *Service) ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]Record, error) {
	return s.store.ListByBranch(ctx, branchID, limit, offset)
}
