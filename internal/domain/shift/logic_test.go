package shift

import (
	"testing"

	"restopos/internal/domain/orders"
)

func TestSystemTotalsPartitionsByChannel(t *testing.T) {
	list := []orders.Order{
		{Status: orders.StatusClosed, PaymentType: orders.PaymentCash, Total: 400},
		{Status: orders.StatusClosed, PaymentType: orders.PaymentCash, Total: 600},
		{Status: orders.StatusClosed, PaymentType: orders.PaymentCard, Total: 250},
		{Status: orders.StatusClosed, PaymentType: orders.PaymentTransfer, Total: 80},
		{Status: orders.StatusOpen, PaymentType: orders.PaymentCash, Total: 999},
	}

	totals := SystemTotals(list)
	if totals.Cash != 1000 || totals.Card != 250 || totals.Transfer != 80 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
}

func TestSystemTotalsEmpty(t *testing.T) {
	totals := SystemTotals(nil)
	if totals != (Totals{}) {
		t.Fatalf("expected zero totals, got %+v", totals)
	}
}

func TestReconcileSignedDifference(t *testing.T) {
	system := Totals{Cash: 1000, Card: 250, Transfer: 80}
	declared := Totals{Cash: 980, Card: 250, Transfer: 100}

	disc := Reconcile(system, declared)
	if disc.Cash != -20 {
		t.Fatalf("expected cash discrepancy -20, got %v", disc.Cash)
	}
	if disc.Card != 0 {
		t.Fatalf("expected card discrepancy 0, got %v", disc.Card)
	}
	if disc.Transfer != 20 {
		t.Fatalf("expected transfer discrepancy 20, got %v", disc.Transfer)
	}
}

func TestMaxAbs(t *testing.T) {
	disc := Totals{Cash: -20, Card: 5, Transfer: 12}
	if got := MaxAbs(disc); got != 20 {
		t.Fatalf("expected 20, got %v", got)
	}
}
