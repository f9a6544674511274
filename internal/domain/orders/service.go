package orders

import (
	"context"
	"log/slog"
	"math"
	"time"
)

// StockDepleter is implemented by the inventory service: closing an
// order consumes ingredient stock per the product recipes.
type StockDepleter interface {
	DepleteForOrder(ctx context.Context, branchID, orderID string) error
}

type Service struct {
	store    *Store
	depleter StockDepleter
	taxRate  float64
}

func NewService(store *Store, depleter StockDepleter, taxRate float64) *Service {
	return &Service{store: store, depleter: depleter, taxRate: taxRate}
}

// Create prices the order server-side from the product catalog and
// opens it.
func (s *Service) Create(ctx context.Context, order Order) (Order, error) {
	if len(order.Items) == 0 {
		return Order{}, ErrNoItems
	}

	ids := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		ids = append(ids, item.ProductID)
	}
	prices, err := s.store.ProductPrices(ctx, order.BranchID, ids)
	if err != nil {
		return Order{}, err
	}

	var subtotal float64
	for _, item := range order.Items {
		price, ok := prices[item.ProductID]
		if !ok {
			return Order{}, ErrUnknownProduct
		}
		subtotal += price * float64(item.Quantity)
	}

	order.Status = StatusOpen
	order.Subtotal = round2(subtotal)
	order.Tax = round2(subtotal * s.taxRate)
	order.Total = round2(order.Subtotal + order.Tax + order.Tip)
	if order.OrderType == "" {
		order.OrderType = TypeDineIn
	}

	id, err := s.store.Create(ctx, order)
	if err != nil {
		return Order{}, err
	}
	order.ID = id
	return order, nil
}

func (s *Service) UpdateStatus(ctx context.Context, branchID, orderID, status string) error {
	return s.store.UpdateStatus(ctx, branchID, orderID, status)
}

// Close settles an open order against a payment channel and depletes
// ingredient stock for its items. Change is only computed for cash.
func (s *Service) Close(ctx context.Context, branchID, orderID, paymentType, cashierID string, amountPaid float64) (Order, error) {
	if !ValidPaymentType(paymentType) {
		return Order{}, ErrUnknownPaymentType
	}

	current, err := s.store.GetByID(ctx, branchID, orderID)
	if err != nil {
		return Order{}, err
	}

	var change float64
	if paymentType == PaymentCash && amountPaid > current.Total {
		change = round2(amountPaid - current.Total)
	}

	order, err := s.store.Close(ctx, branchID, orderID, paymentType, cashierID, amountPaid, change, time.Now().UTC())
	if err != nil {
		return Order{}, err
	}

	if s.depleter != nil {
		if err := s.depleter.DepleteForOrder(ctx, branchID, order.ID); err != nil {
			slog.Warn("stock depletion failed", "orderId", order.ID, "err", err)
		}
	}
	return order, nil
}

func (s *Service) Get(ctx context.Context, branchID, orderID string) (Order, error) {
	return s.store.GetByID(ctx, branchID, orderID)
}

func (s *Service) List(ctx context.Context, branchID, status string, limit, offset int) ([]Order, error) {
	return s.store.ListByBranch(ctx, branchID, status, limit, offset)
}

func (s *Service) ClosedByWaiterSince(ctx context.Context, waiterID string, since time.Time) ([]Order, error) {
	return s.store.ClosedByWaiterSince(ctx, waiterID, since)
}

func (s *Service) ClosedByCashierOn(ctx context.Context, cashierID, date string) ([]Order, error) {
	return s.store.ClosedByCashierOn(ctx, cashierID, date)
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
