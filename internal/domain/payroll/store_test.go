package payroll

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
)

func TestCreatePaymentDuplicatePeriodIsAlreadyPaid(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	store := NewStore(mock)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payroll_payments")).
		WithArgs("b1", "e1", "2026-03-08", 1500.0, 210.0, 150.0, 0.0, 1860.0, StatusPaid).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

	_, err = store.CreatePayment(context.Background(), Payment{
		BranchID:   "b1",
		EmployeeID: "e1",
		Period:     "2026-03-08",
		BaseSalary: 1500,
		Benefits:   210,
		Tips:       150,
		Amount:     1860,
		Status:     StatusPaid,
	})
	if !errors.Is(err, ErrAlreadyPaid) {
		t.Fatalf("expected ErrAlreadyPaid, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreatePaymentReturnsPayment(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	store := NewStore(mock)
	createdAt := time.Date(2026, 3, 8, 21, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payroll_payments")).
		WithArgs("b1", "e1", "2026-03-08", 1500.0, 210.0, 150.0, 0.0, 1860.0, StatusPaid).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow("pay-1", createdAt))

	payment, err := store.CreatePayment(context.Background(), Payment{
		BranchID:   "b1",
		EmployeeID: "e1",
		Period:     "2026-03-08",
		BaseSalary: 1500,
		Benefits:   210,
		Tips:       150,
		Amount:     1860,
		Status:     StatusPaid,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payment.ID != "pay-1" || !payment.CreatedAt.Equal(createdAt) {
		t.Fatalf("unexpected payment: %+v", payment)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPaymentExists(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	store := NewStore(mock)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(1) FROM payroll_payments")).
		WithArgs("e1", "2026-03-08").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := store.PaymentExists(context.Background(), "e1", "2026-03-08")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Fatal("expected payment to exist")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
