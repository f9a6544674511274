package payroll

import (
	"time"

	"restopos/internal/domain/orders"
)

// SumTips totals gratuities from closed orders attributed to the given
// staff member with createdAt in [windowStart, windowEnd). Pure and
// order-independent.
func SumTips(list []orders.Order, staffID string, windowStart, windowEnd time.Time) float64 {
	var total float64
	for _, order := range list {
		if order.Status != orders.StatusClosed {
			continue
		}
		if order.WaiterID != staffID {
			continue
		}
		if order.Tip <= 0 {
			continue
		}
		if order.CreatedAt.Before(windowStart) || !order.CreatedAt.Before(windowEnd) {
			continue
		}
		total += order.Tip
	}
	return total
}
