package inventory

import (
	"context"
	"errors"
	"regexp"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
)

func TestAdjustStockUnknownIngredient(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	store := NewStore(mock)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE ingredients SET stock = stock + $1")).
		WithArgs(5.0, "i-missing", "b1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = store.AdjustStock(context.Background(), "b1", "i-missing", 5)
	if !errors.Is(err, ErrIngredientNotFound) {
		t.Fatalf("expected ErrIngredientNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDepleteForOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	store := NewStore(mock)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE ingredients i")).
		WithArgs("o1", "b1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	if err := store.DepleteForOrder(context.Background(), "b1", "o1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
