package shift

import (
	"math"

	"restopos/internal/domain/orders"
)

// SystemTotals partitions closed-order totals by payment channel.
// Orders with an unknown payment type are skipped rather than folded
// into a channel.
func SystemTotals(list []orders.Order) Totals {
	var totals Totals
	for _, order := range list {
		if order.Status != orders.StatusClosed {
			continue
		}
		switch order.PaymentType {
		case orders.PaymentCash:
			totals.Cash += order.Total
		case orders.PaymentCard:
			totals.Card += order.Total
		case orders.PaymentTransfer:
			totals.Transfer += order.Total
		}
	}
	return totals
}

// Reconcile returns declared minus system per channel. It never
// fails: the report records the difference, it does not block the
// shift from closing.
func Reconcile(system, declared Totals) Totals {
	return Totals{
		Cash:     declared.Cash - system.Cash,
		Card:     declared.Card - system.Card,
		Transfer: declared.Transfer - system.Transfer,
	}
}

// MaxAbs returns the largest absolute discrepancy across channels,
// used for the alert threshold.
func MaxAbs(t Totals) float64 {
	return math.Max(math.Abs(t.Cash), math.Max(math.Abs(t.Card), math.Abs(t.Transfer)))
}
