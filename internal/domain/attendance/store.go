package attendance

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

// CreateRecord inserts a clock-in record. The UNIQUE(employee_id,
// work_date) constraint makes a second clock-in on the same day a
// conflict, reported as ErrAlreadyClockedIn.
func (s *Store) CreateRecord(ctx context.Context, branchID, employeeID, date string, clockIn time.Time) (Record, error) {
	record := Record{BranchID: branchID, EmployeeID: employeeID, Date: date, ClockIn: clockIn}
	err := s.DB.QueryRow(ctx, `
    INSERT INTO attendance_records (branch_id, employee_id, work_date, clock_in)
    VALUES ($1,$2,$3,$4)
    ON CONFLICT (employee_id, work_date) DO NOTHING
    RETURNING id
  `, branchID, employeeID, date, clockIn).Scan(&record.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrAlreadyClockedIn
	}
	if err != nil {
		return Record{}, err
	}
	return record, nil
}

// CloseRecord sets the clock-out on the day's open record, reporting
// ErrNoOpenRecord when none exists.
func (s *Store) CloseRecord(ctx context.Context, employeeID, date string, clockOut time.Time) (Record, error) {
	record := Record{EmployeeID: employeeID, Date: date}
	err := s.DB.QueryRow(ctx, `
    UPDATE attendance_records
    SET clock_out = $1
    WHERE employee_id = $2 AND work_date = $3 AND clock_out IS NULL
    RETURNING id, branch_id, clock_in
  `, clockOut, employeeID, date).Scan(&record.ID, &record.BranchID, &record.ClockIn)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrNoOpenRecord
	}
	if err != nil {
		return Record{}, err
	}
	record.ClockOut = &clockOut
	return record, nil
}

func (s *Store) ListByEmployeeSince(ctx context.Context, employeeID, sinceDate string) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, branch_id, employee_id, work_date, clock_in, clock_out
    FROM attendance_records
    WHERE employee_id = $1 AND work_date >= $2
    ORDER BY work_date
  `, employeeID, sinceDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

func (s *Store) ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, branch_id, employee_id, work_date, clock_in, clock_out
    FROM attendance_records
    WHERE branch_id = $1
    ORDER BY work_date DESC, clock_in DESC
    LIMIT $2 OFFSET $3
  `, branchID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

func scanRecords(rows pgx.Rows) ([]Record, error) {
	var records []Record
	for rows.Next() {
		var record Record
		var workDate time.Time
		var clockOut *time.Time
		if err := rows.Scan(&record.ID, &record.BranchID, &record.EmployeeID, &workDate, &record.ClockIn, &clockOut); err != nil {
			return nil, err
		}
		record.Date = workDate.Format(DateLayout)
		record.ClockOut = clockOut
		records = append(records, record)
	}
	return records, rows.Err()
}
