package staff

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"restopos/internal/platform/db"
)

type Store struct {
	DB db.Queryer
}

func NewStore(q db.Queryer) *Store {
	return &Store{DB: q}
}

const employeeColumns = `
  id, branch_id, COALESCE(user_id::text, ''), name, role, hire_date,
  payment_type, hourly_rate, daily_rate, workday_hours,
  COALESCE(shift_start_time, ''), monthly_benefits, late_penalty,
  absence_penalty, rest_days, created_at`

func (s *Store) Create(ctx context.Context, employee Employee) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (
      branch_id, name, role, hire_date, payment_type, hourly_rate,
      daily_rate, workday_hours, shift_start_time, monthly_benefits,
      late_penalty, absence_penalty, rest_days
    ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
    RETURNING id
  `, employee.BranchID, employee.Name, employee.Role, employee.HireDate,
		employee.Policy.PaymentType, employee.Policy.HourlyRate, employee.Policy.DailyRate,
		employee.Policy.WorkdayHours, nullIfEmpty(employee.Policy.ShiftStartTime),
		employee.Policy.MonthlyBenefits, employee.Policy.LatePenalty,
		employee.Policy.AbsencePenalty, employee.Policy.RestDays).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, employee Employee) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees SET
      name = $1, role = $2, payment_type = $3, hourly_rate = $4,
      daily_rate = $5, workday_hours = $6, shift_start_time = $7,
      monthly_benefits = $8, late_penalty = $9, absence_penalty = $10,
      rest_days = $11
    WHERE id = $12 AND branch_id = $13
  `, employee.Name, employee.Role, employee.Policy.PaymentType,
		employee.Policy.HourlyRate, employee.Policy.DailyRate, employee.Policy.WorkdayHours,
		nullIfEmpty(employee.Policy.ShiftStartTime), employee.Policy.MonthlyBenefits,
		employee.Policy.LatePenalty, employee.Policy.AbsencePenalty, employee.Policy.RestDays,
		employee.ID, employee.BranchID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func (s *Store) GetByID(ctx context.Context, branchID, employeeID string) (Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE id = $1 AND branch_id = $2
  `, employeeID, branchID)
	employee, err := scanEmployee(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrEmployeeNotFound
	}
	return employee, err
}

func (s *Store) List(ctx context.Context, branchID string, limit, offset int) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE branch_id = $1
    ORDER BY name
    LIMIT $2 OFFSET $3
  `, branchID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}
	return employees, rows.Err()
}

func scanEmployee(row pgx.Row) (Employee, error) {
	var employee Employee
	var hireDate time.Time
	err := row.Scan(
		&employee.ID, &employee.BranchID, &employee.UserID, &employee.Name,
		&employee.Role, &hireDate, &employee.Policy.PaymentType,
		&employee.Policy.HourlyRate, &employee.Policy.DailyRate,
		&employee.Policy.WorkdayHours, &employee.Policy.ShiftStartTime,
		&employee.Policy.MonthlyBenefits, &employee.Policy.LatePenalty,
		&employee.Policy.AbsencePenalty, &employee.Policy.RestDays,
		&employee.CreatedAt,
	)
	if err != nil {
		return Employee{}, err
	}
	employee.HireDate = hireDate.Format("2006-01-02")
	return employee, nil
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
