package payroll

import (
	"context"
	"time"

	"restopos/internal/domain/attendance"
	"restopos/internal/domain/orders"
	"restopos/internal/domain/staff"
)

type Service struct {
	store      *Store
	staff      *staff.Service
	attendance *attendance.Service
	orders     *orders.Service
	windowDays int
}

func NewService(store *Store, staffSvc *staff.Service, attendanceSvc *attendance.Service, ordersSvc *orders.Service, windowDays int) *Service {
	return &Service{
		store:      store,
		staff:      staffSvc,
		attendance: attendanceSvc,
		orders:     ordersSvc,
		windowDays: windowDays,
	}
}

// RunPayroll settles the trailing window ending at asOf for one
// employee and appends the payment. A run for an already-settled
// period reports ErrAlreadyPaid; the caller surfaces that as "already
// paid", not as a failure.
func (s *Service) RunPayroll(ctx context.Context, branchID, employeeID string, asOf time.Time) (Payment, error) {
	employee, err := s.staff.Get(ctx, branchID, employeeID)
	if err != nil {
		return Payment{}, err
	}

	period := asOf.Format(DateLayout)
	exists, err := s.store.PaymentExists(ctx, employeeID, period)
	if err != nil {
		return Payment{}, err
	}
	if exists {
		return Payment{}, ErrAlreadyPaid
	}

	records, err := s.attendance.WindowRecords(ctx, employeeID, asOf, s.windowDays)
	if err != nil {
		return Payment{}, err
	}

	windowStart := asOf.AddDate(0, 0, -(s.windowDays - 1))
	tipOrders, err := s.orders.ClosedByWaiterSince(ctx, employeeID, startOfDay(windowStart))
	if err != nil {
		return Payment{}, err
	}

	settlement := Compute(Inputs{
		EmployeeID: employeeID,
		Policy:     employee.Policy,
		HireDate:   employee.HireDate,
		Records:    records,
		Orders:     tipOrders,
		AsOf:       asOf,
		WindowDays: s.windowDays,
	})

	return s.store.CreatePayment(ctx, Payment{
		BranchID:   branchID,
		EmployeeID: employeeID,
		Period:     period,
		BaseSalary: settlement.BaseSalary,
		Benefits:   settlement.Benefits,
		Tips:       settlement.Tips,
		Deductions: settlement.Deductions,
		Amount:     settlement.Net,
		Status:     StatusPaid,
	})
}

// Preview computes the settlement without persisting it, for the
// payroll review screen.
func (s *Service) Preview(ctx context.Context, branchID, employeeID string, asOf time.Time) (Settlement, error) {
	employee, err := s.staff.Get(ctx, branchID, employeeID)
	if err != nil {
		return Settlement{}, err
	}

	records, err := s.attendance.WindowRecords(ctx, employeeID, asOf, s.windowDays)
	if err != nil {
		return Settlement{}, err
	}

	windowStart := asOf.AddDate(0, 0, -(s.windowDays - 1))
	tipOrders, err := s.orders.ClosedByWaiterSince(ctx, employeeID, startOfDay(windowStart))
	if err != nil {
		return Settlement{}, err
	}

	return Compute(Inputs{
		EmployeeID: employeeID,
		Policy:     employee.Policy,
		HireDate:   employee.HireDate,
		Records:    records,
		Orders:     tipOrders,
		AsOf:       asOf,
		WindowDays: s.windowDays,
	}), nil
}

func (s *Service) Payments(ctx context.Context, employeeID string, limit, offset int) ([]Payment, error) {
	return s.store.ListByEmployee(ctx, employeeID, limit, offset)
}

func (s *Service) Payment(ctx context.Context, branchID, paymentID string) (Payment, error) {
	return s.store.GetByID(ctx, branchID, paymentID)
}
