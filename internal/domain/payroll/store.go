package payroll

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"restopos/internal/platform/db"
)

const uniqueViolationCode = "23505"

type Store struct {
	DB db.Queryer
}

func NewStore(q db.Queryer) *Store {
	return &Store{DB: q}
}

func (s *Store) PaymentExists(ctx context.Context, employeeID, period string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1) FROM payroll_payments
    WHERE employee_id = $1 AND period = $2
  `, employeeID, period).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreatePayment appends a settlement. The UNIQUE(employee_id, period)
// constraint backs the idempotence guard against racing runs.
func (s *Store) CreatePayment(ctx context.Context, payment Payment) (Payment, error) {
	err := s.DB.QueryRow(ctx, `
    INSERT INTO payroll_payments (
      branch_id, employee_id, period, base_salary, benefits, tips,
      deductions, amount, status
    ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    RETURNING id, created_at
  `, payment.BranchID, payment.EmployeeID, payment.Period, payment.BaseSalary,
		payment.Benefits, payment.Tips, payment.Deductions, payment.Amount,
		payment.Status).Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return Payment{}, ErrAlreadyPaid
		}
		return Payment{}, err
	}
	return payment, nil
}

func (s *Store) ListByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]Payment, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, branch_id, employee_id, period, base_salary, benefits,
           tips, deductions, amount, status, created_at
    FROM payroll_payments
    WHERE employee_id = $1
    ORDER BY period DESC
    LIMIT $2 OFFSET $3
  `, employeeID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

func (s *Store) GetByID(ctx context.Context, branchID, paymentID string) (Payment, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, branch_id, employee_id, period, base_salary, benefits,
           tips, deductions, amount, status, created_at
    FROM payroll_payments
    WHERE id = $1 AND branch_id = $2
  `, paymentID, branchID)
	payment, err := scanPayment(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Payment{}, ErrPaymentNotFound
	}
	return payment, err
}

// RegisterRows lists a branch's settlements joined with employee names
// for the payroll register export.
func (s *Store) RegisterRows(ctx context.Context, branchID, fromPeriod, toPeriod string) ([]RegisterRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT p.employee_id, e.name, p.period, p.base_salary, p.benefits,
           p.tips, p.deductions, p.amount, p.created_at
    FROM payroll_payments p
    JOIN employees e ON p.employee_id = e.id
    WHERE p.branch_id = $1 AND p.period BETWEEN $2 AND $3
    ORDER BY p.period, e.name
  `, branchID, fromPeriod, toPeriod)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RegisterRow
	for rows.Next() {
		var row RegisterRow
		var period time.Time
		if err := rows.Scan(&row.EmployeeID, &row.EmployeeName, &period, &row.BaseSalary,
			&row.Benefits, &row.Tips, &row.Deductions, &row.Amount, &row.CreatedAt); err != nil {
			return nil, err
		}
		row.Period = period.Format(DateLayout)
		out = append(out, row)
	}
	return out, rows.Err()
}

func scanPayment(row pgx.Row) (Payment, error) {
	var payment Payment
	var period time.Time
	err := row.Scan(
		&payment.ID, &payment.BranchID, &payment.EmployeeID, &period,
		&payment.BaseSalary, &payment.Benefits, &payment.Tips,
		&payment.Deductions, &payment.Amount, &payment.Status, &payment.CreatedAt,
	)
	if err != nil {
		return Payment{}, err
	}
	payment.Period = period.Format(DateLayout)
	return payment, nil
}

func scanPayments(rows pgx.Rows) ([]Payment, error) {
	var out []Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, payment)
	}
	return out, rows.Err()
}
