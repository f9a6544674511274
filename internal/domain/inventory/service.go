package inventory

import (
	"context"
	"fmt"
	"log/slog"
)

// Notifier is implemented by the notifications service.
type Notifier interface {
	Notify(ctx context.Context, branchID, kind, message string) error
}

type Service struct {
	store          *Store
	notifier       Notifier
	lowStockAlerts bool
}

func NewService(store *Store, notifier Notifier, lowStockAlerts bool) *Service {
	return &Service{store: store, notifier: notifier, lowStockAlerts: lowStockAlerts}
}

func (s *Service) CreateIngredient(ctx context.Context, ing Ingredient) (Ingredient, error) {
	return s.store.CreateIngredient(ctx, ing)
}

func (s *Service) UpdateIngredient(ctx context.Context, ing Ingredient) error {
	return s.store.UpdateIngredient(ctx, ing)
}

func (s *Service) AdjustStock(ctx context.Context, branchID, ingredientID string, delta float64) error {
	return s.store.AdjustStock(ctx, branchID, ingredientID, delta)
}

func (s *Service) Ingredients(ctx context.Context, branchID string) ([]Ingredient, error) {
	return s.store.ListIngredients(ctx, branchID)
}

func (s *Service) LowStock(ctx context.Context, branchID string) ([]Ingredient, error) {
	list, err := s.store.ListIngredients(ctx, branchID)
	if err != nil {
		return nil, err
	}
	return LowStock(list), nil
}

// DepleteForOrder consumes ingredient stock for a closed order and,
// when enabled, raises a low-stock notification for anything that
// dropped to its minimum.
func (s *Service) DepleteForOrder(ctx context.Context, branchID, orderID string) error {
	if err := s.store.DepleteForOrder(ctx, branchID, orderID); err != nil {
		return err
	}

	if !s.lowStockAlerts || s.notifier == nil {
		return nil
	}
	low, err := s.LowStock(ctx, branchID)
	if err != nil {
		slog.Warn("low stock check failed", "error", err, "orderId", orderID)
		return nil
	}
	for _, ing := range low {
		message := fmt.Sprintf("%s is low: %.2f %s left (minimum %.2f)",
			ing.Name, ing.Stock, ing.Unit, ing.MinStock)
		if err := s.notifier.Notify(ctx, branchID, "low_stock", message); err != nil {
			slog.Warn("low stock notification failed", "error", err, "ingredientId", ing.ID)
		}
	}
	return nil
}

func (s *Service) CreateProduct(ctx context.Context, product Product) (Product, error) {
	return s.store.CreateProduct(ctx, product)
}

func (s *Service) Product(ctx context.Context, branchID, productID string) (Product, error) {
	return s.store.GetProduct(ctx, branchID, productID)
}

func (s *Service) Products(ctx context.Context, branchID string) ([]Product, error) {
	return s.store.ListProducts(ctx, branchID)
}

// ProductCost rolls the product's recipe up against current
// ingredient costs.
func (s *Service) ProductCost(ctx context.Context, branchID, productID string) (float64, error) {
	product, err := s.store.GetProduct(ctx, branchID, productID)
	if err != nil {
		return 0, err
	}
	list, err := s.store.ListIngredients(ctx, branchID)
	if err != nil {
		return 0, err
	}
	byID := make(map[string]Ingredient, len(list))
	for _, ing := range list {
		byID[ing.ID] = ing
	}
	return RecipeCost(product.Recipe, byID), nil
}
