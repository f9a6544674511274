package inventory

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"restopos/internal/platform/db"
)

var (
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrProductNotFound    = errors.New("product not found")
)

type Store struct {
	DB db.Queryer
}

func NewStore(q db.Queryer) *Store {
	return &Store{DB: q}
}

func (s *Store) CreateIngredient(ctx context.Context, ing Ingredient) (Ingredient, error) {
	err := s.DB.QueryRow(ctx, `
    INSERT INTO ingredients (branch_id, name, stock, min_stock, unit, cost)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING id
  `, ing.BranchID, ing.Name, ing.Stock, ing.MinStock, ing.Unit, ing.Cost).Scan(&ing.ID)
	if err != nil {
		return Ingredient{}, err
	}
	return ing, nil
}

func (s *Store) UpdateIngredient(ctx context.Context, ing Ingredient) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE ingredients
    SET name = $1, stock = $2, min_stock = $3, unit = $4, cost = $5
    WHERE id = $6 AND branch_id = $7
  `, ing.Name, ing.Stock, ing.MinStock, ing.Unit, ing.Cost, ing.ID, ing.BranchID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrIngredientNotFound
	}
	return nil
}

// AdjustStock adds delta to one ingredient's stock. Deliveries pass a
// positive delta, waste a negative one.
func (s *Store) AdjustStock(ctx context.Context, branchID, ingredientID string, delta float64) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE ingredients SET stock = stock + $1
    WHERE id = $2 AND branch_id = $3
  `, delta, ingredientID, branchID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrIngredientNotFound
	}
	return nil
}

func (s *Store) ListIngredients(ctx context.Context, branchID string) ([]Ingredient, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, branch_id, name, stock, min_stock, unit, cost
    FROM ingredients
    WHERE branch_id = $1
    ORDER BY name
  `, branchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Ingredient
	for rows.Next() {
		var ing Ingredient
		if err := rows.Scan(&ing.ID, &ing.BranchID, &ing.Name, &ing.Stock,
			&ing.MinStock, &ing.Unit, &ing.Cost); err != nil {
			return nil, err
		}
		out = append(out, ing)
	}
	return out, rows.Err()
}

// DepleteForOrder subtracts recipe quantities for every item on the
// order in one statement.
func (s *Store) DepleteForOrder(ctx context.Context, branchID, orderID string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE ingredients i
    SET stock = i.stock - used.quantity
    FROM (
      SELECT r.ingredient_id, SUM(r.quantity * oi.quantity) AS quantity
      FROM order_items oi
      JOIN recipe_items r ON r.product_id = oi.product_id
      WHERE oi.order_id = $1
      GROUP BY r.ingredient_id
    ) used
    WHERE i.id = used.ingredient_id AND i.branch_id = $2
  `, orderID, branchID)
	return err
}

func (s *Store) CreateProduct(ctx context.Context, product Product) (Product, error) {
	err := s.DB.QueryRow(ctx, `
    INSERT INTO products (branch_id, name, price, category)
    VALUES ($1,$2,$3,$4)
    RETURNING id
  `, product.BranchID, product.Name, product.Price, product.Category).Scan(&product.ID)
	if err != nil {
		return Product{}, err
	}
	for _, item := range product.Recipe {
		if _, err := s.DB.Exec(ctx, `
      INSERT INTO recipe_items (product_id, ingredient_id, quantity)
      VALUES ($1,$2,$3)
    `, product.ID, item.IngredientID, item.Quantity); err != nil {
			return Product{}, err
		}
	}
	return product, nil
}

func (s *Store) GetProduct(ctx context.Context, branchID, productID string) (Product, error) {
	var product Product
	err := s.DB.QueryRow(ctx, `
    SELECT id, branch_id, name, price, category
    FROM products
    WHERE id = $1 AND branch_id = $2
  `, productID, branchID).Scan(&product.ID, &product.BranchID, &product.Name,
		&product.Price, &product.Category)
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, ErrProductNotFound
	}
	if err != nil {
		return Product{}, err
	}

	recipe, err := s.recipeFor(ctx, product.ID)
	if err != nil {
		return Product{}, err
	}
	product.Recipe = recipe
	return product, nil
}

func (s *Store) ListProducts(ctx context.Context, branchID string) ([]Product, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, branch_id, name, price, category
    FROM products
    WHERE branch_id = $1
    ORDER BY category, name
  `, branchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var product Product
		if err := rows.Scan(&product.ID, &product.BranchID, &product.Name,
			&product.Price, &product.Category); err != nil {
			return nil, err
		}
		out = append(out, product)
	}
	return out, rows.Err()
}

func (s *Store) recipeFor(ctx context.Context, productID string) ([]RecipeItem, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT ingredient_id, quantity FROM recipe_items
    WHERE product_id = $1
  `, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RecipeItem
	for rows.Next() {
		var item RecipeItem
		if err := rows.Scan(&item.IngredientID, &item.Quantity); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
