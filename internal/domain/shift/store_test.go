package shift

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
)

func TestCreateReportReturnsID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	store := NewStore(mock)
	endedAt := time.Date(2026, 3, 8, 22, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO shift_reports")).
		WithArgs("b1", "u1", "Ana", endedAt,
			1000.0, 250.0, 80.0,
			980.0, 250.0, 80.0,
			-20.0, 0.0, 0.0).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("sr-1"))

	report, err := store.Create(context.Background(), Report{
		BranchID:      "b1",
		UserID:        "u1",
		UserName:      "Ana",
		EndedAt:       endedAt,
		System:        Totals{Cash: 1000, Card: 250, Transfer: 80},
		Declared:      Totals{Cash: 980, Card: 250, Transfer: 80},
		Discrepancies: Totals{Cash: -20},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.ID != "sr-1" {
		t.Fatalf("unexpected report: %+v", report)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	store := NewStore(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM shift_reports")).
		WithArgs("sr-missing", "b1").
		WillReturnError(pgx.ErrNoRows)

	_, err = store.GetByID(context.Background(), "b1", "sr-missing")
	if !errors.Is(err, ErrReportNotFound) {
		t.Fatalf("expected ErrReportNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
