package attendance

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
)

func TestCreateRecordConflictIsAlreadyClockedIn(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	store := NewStore(mock)
	clockIn := time.Date(2026, 3, 2, 9, 5, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO attendance_records")).
		WithArgs("b1", "e1", "2026-03-02", clockIn).
		WillReturnError(pgx.ErrNoRows)

	_, err = store.CreateRecord(context.Background(), "b1", "e1", "2026-03-02", clockIn)
	if !errors.Is(err, ErrAlreadyClockedIn) {
		t.Fatalf("expected ErrAlreadyClockedIn, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateRecordReturnsRecord(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	store := NewStore(mock)
	clockIn := time.Date(2026, 3, 2, 9, 5, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO attendance_records")).
		WithArgs("b1", "e1", "2026-03-02", clockIn).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("att-1"))

	record, err := store.CreateRecord(context.Background(), "b1", "e1", "2026-03-02", clockIn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.ID != "att-1" || record.Date != "2026-03-02" || record.ClockOut != nil {
		t.Fatalf("unexpected record: %+v", record)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCloseRecordWithoutOpenRecord(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	store := NewStore(mock)
	clockOut := time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE attendance_records")).
		WithArgs(clockOut, "e1", "2026-03-02").
		WillReturnError(pgx.ErrNoRows)

	_, err = store.CloseRecord(context.Background(), "e1", "2026-03-02", clockOut)
	if !errors.Is(err, ErrNoOpenRecord) {
		t.Fatalf("expected ErrNoOpenRecord, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCloseRecordSetsClockOut(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	store := NewStore(mock)
	clockIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	clockOut := clockIn.Add(8 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE attendance_records")).
		WithArgs(clockOut, "e1", "2026-03-02").
		WillReturnRows(pgxmock.NewRows([]string{"id", "branch_id", "clock_in"}).AddRow("att-1", "b1", clockIn))

	record, err := store.CloseRecord(context.Background(), "e1", "2026-03-02", clockOut)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.ClockOut == nil || !record.ClockOut.Equal(clockOut) {
		t.Fatalf("expected clock-out to be set, got %+v", record)
	}
	if got := HoursWorked(record); got != 8 {
		t.Fatalf("expected 8 hours, got %v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
