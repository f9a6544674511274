package payroll

import (
	"testing"
	"time"

	"restopos/internal/domain/orders"
)

func TestSumTipsFilters(t *testing.T) {
	windowStart := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	list := []orders.Order{
		{Status: orders.StatusClosed, WaiterID: "w1", Tip: 50, CreatedAt: windowStart},
		{Status: orders.StatusClosed, WaiterID: "w1", Tip: 25, CreatedAt: windowEnd.Add(-time.Second)},
		{Status: orders.StatusOpen, WaiterID: "w1", Tip: 100, CreatedAt: windowStart},
		{Status: orders.StatusClosed, WaiterID: "w2", Tip: 100, CreatedAt: windowStart},
		{Status: orders.StatusClosed, WaiterID: "w1", Tip: 0, CreatedAt: windowStart},
		{Status: orders.StatusClosed, WaiterID: "w1", Tip: 100, CreatedAt: windowStart.Add(-time.Second)},
		{Status: orders.StatusClosed, WaiterID: "w1", Tip: 100, CreatedAt: windowEnd},
	}

	got := SumTips(list, "w1", windowStart, windowEnd)
	if got != 75 {
		t.Fatalf("expected 75, got %v", got)
	}
}

func TestSumTipsEmpty(t *testing.T) {
	windowStart := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	windowEnd := windowStart.AddDate(0, 0, 7)

	if got := SumTips(nil, "w1", windowStart, windowEnd); got != 0 {
		t.Fatalf("expected 0 for no orders, got %v", got)
	}
}
