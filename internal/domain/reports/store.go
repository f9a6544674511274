package reports

import (
	"context"

	"restopos/internal/platform/db"
)

type SalesSummary struct {
	Date        string  `json:"date"`
	OrderCount  int     `json:"orderCount"`
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	Tips        float64 `json:"tips"`
	Total       float64 `json:"total"`
	CashTotal   float64 `json:"cashTotal"`
	CardTotal   float64 `json:"cardTotal"`
	TransferTot float64 `json:"transferTotal"`
}

type TopProduct struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Revenue   float64 `json:"revenue"`
}

type Store struct {
	DB db.Queryer
}

func NewStore(q db.Queryer) *Store {
	return &Store{DB: q}
}

// DailySales aggregates one calendar day's closed orders.
func (s *Store) DailySales(ctx context.Context, branchID, date string) (SalesSummary, error) {
	summary := SalesSummary{Date: date}
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1),
           COALESCE(SUM(subtotal), 0),
           COALESCE(SUM(tax), 0),
           COALESCE(SUM(tip), 0),
           COALESCE(SUM(total), 0),
           COALESCE(SUM(total) FILTER (WHERE payment_type = 'cash'), 0),
           COALESCE(SUM(total) FILTER (WHERE payment_type = 'card'), 0),
           COALESCE(SUM(total) FILTER (WHERE payment_type = 'transfer'), 0)
    FROM orders
    WHERE branch_id = $1 AND status = 'closed' AND created_at::date = $2
  `, branchID, date).Scan(
		&summary.OrderCount, &summary.Subtotal, &summary.Tax, &summary.Tips,
		&summary.Total, &summary.CashTotal, &summary.CardTotal, &summary.TransferTot,
	)
	return summary, err
}

func (s *Store) TopProducts(ctx context.Context, branchID, fromDate, toDate string, limit int) ([]TopProduct, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT p.id, p.name, SUM(oi.quantity), SUM(oi.quantity * p.price)
    FROM order_items oi
    JOIN orders o ON oi.order_id = o.id
    JOIN products p ON oi.product_id = p.id
    WHERE o.branch_id = $1 AND o.status = 'closed'
      AND o.created_at::date BETWEEN $2 AND $3
    GROUP BY p.id, p.name
    ORDER BY SUM(oi.quantity) DESC
    LIMIT $4
  `, branchID, fromDate, toDate, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TopProduct
	for rows.Next() {
		var tp TopProduct
		if err := rows.Scan(&tp.ProductID, &tp.Name, &tp.Quantity, &tp.Revenue); err != nil {
			return nil, err
		}
		out = append(out, tp)
	}
	return out, rows.Err()
}

// PayrollOutlay totals settlements recorded in a period range.
func (s *Store) PayrollOutlay(ctx context.Context, branchID, fromPeriod, toPeriod string) (float64, error) {
	var total float64
	err := s.DB.QueryRow(ctx, `
    SELECT COALESCE(SUM(amount), 0)
    FROM payroll_payments
    WHERE branch_id = $1 AND period BETWEEN $2 AND $3
  `, branchID, fromPeriod, toPeriod).Scan(&total)
	return total, err
}
