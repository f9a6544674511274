package orders

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

const orderColumns = `
  id, branch_id, order_type, status, subtotal, tax, tip, total,
  COALESCE(waiter_id::text, ''), COALESCE(payment_type, ''),
  COALESCE(closed_by::text, ''), amount_paid, change, created_at, closed_at`

func (s *Store) Create(ctx context.Context, order Order) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO orders (branch_id, order_type, status, subtotal, tax, tip, total, waiter_id)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING id
  `, order.BranchID, order.OrderType, StatusOpen, order.Subtotal, order.Tax,
		order.Tip, order.Total, nullIfEmpty(order.WaiterID)).Scan(&id)
	if err != nil {
		return "", err
	}
	for _, item := range order.Items {
		if _, err := s.DB.Exec(ctx, `
      INSERT INTO order_items (order_id, product_id, quantity, status)
      VALUES ($1,$2,$3,'pending')
    `, id, item.ProductID, item.Quantity); err != nil {
			return "", err
		}
	}
	return id, nil
}

func (s *Store) UpdateStatus(ctx context.Context, branchID, orderID, status string) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE orders SET status = $1
    WHERE id = $2 AND branch_id = $3 AND status NOT IN ('closed', 'cancelled')
  `, status, orderID, branchID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotOpen
	}
	return nil
}

// Close settles the order. Only orders that are not yet closed or
// cancelled can be settled; anything else reports ErrOrderNotOpen.
func (s *Store) Close(ctx context.Context, branchID, orderID, paymentType, cashierID string, amountPaid, change float64, closedAt time.Time) (Order, error) {
	row := s.DB.QueryRow(ctx, `
    UPDATE orders SET
      status = 'closed', payment_type = $1, closed_by = $2,
      amount_paid = $3, change = $4, closed_at = $5
    WHERE id = $6 AND branch_id = $7 AND status NOT IN ('closed', 'cancelled')
    RETURNING `+orderColumns+`
  `, paymentType, cashierID, amountPaid, change, closedAt, orderID, branchID)
	order, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, ErrOrderNotOpen
	}
	return order, err
}

func (s *Store) GetByID(ctx context.Context, branchID, orderID string) (Order, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+orderColumns+`
    FROM orders
    WHERE id = $1 AND branch_id = $2
  `, orderID, branchID)
	order, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, ErrOrderNotFound
	}
	if err != nil {
		return Order{}, err
	}
	items, err := s.listItems(ctx, order.ID)
	if err != nil {
		return Order{}, err
	}
	order.Items = items
	return order, nil
}

func (s *Store) ListByBranch(ctx context.Context, branchID, status string, limit, offset int) ([]Order, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+orderColumns+`
    FROM orders
    WHERE branch_id = $1 AND ($2 = '' OR status = $2)
    ORDER BY created_at DESC
    LIMIT $3 OFFSET $4
  `, branchID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

// ClosedByWaiterSince feeds the payroll tip aggregation: the caller
// filters further by tip and window bounds.
func (s *Store) ClosedByWaiterSince(ctx context.Context, waiterID string, since time.Time) ([]Order, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+orderColumns+`
    FROM orders
    WHERE waiter_id = $1 AND status = 'closed' AND created_at >= $2
  `, waiterID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

// ClosedByCashierOn feeds the shift reconciliation: the cashier's
// closed orders created on one calendar day.
func (s *Store) ClosedByCashierOn(ctx context.Context, cashierID, date string) ([]Order, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+orderColumns+`
    FROM orders
    WHERE closed_by = $1 AND status = 'closed' AND created_at::date = $2
  `, cashierID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func (s *Store) ProductPrices(ctx context.Context, branchID string, productIDs []string) (map[string]float64, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, price FROM products
    WHERE branch_id = $1 AND id = ANY($2)
  `, branchID, productIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prices := map[string]float64{}
	for rows.Next() {
		var id string
		var price float64
		if err := rows.Scan(&id, &price); err != nil {
			return nil, err
		}
		prices[id] = price
	}
	return prices, rows.Err()
}

func (s *Store) listItems(ctx context.Context, orderID string) ([]Item, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, order_id, product_id, quantity, status
    FROM order_items
    WHERE order_id = $1
  `, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Status); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanOrder(row pgx.Row) (Order, error) {
	var order Order
	var closedAt *time.Time
	err := row.Scan(
		&order.ID, &order.BranchID, &order.OrderType, &order.Status,
		&order.Subtotal, &order.Tax, &order.Tip, &order.Total,
		&order.WaiterID, &order.PaymentType, &order.ClosedBy,
		&order.AmountPaid, &order.Change, &order.CreatedAt, &closedAt,
	)
	if err != nil {
		return Order{}, err
	}
	order.ClosedAt = closedAt
	return order, nil
}

func scanOrders(rows pgx.Rows) ([]Order, error) {
	var out []Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, order)
	}
	return out, rows.Err()
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
