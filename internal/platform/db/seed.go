package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"restopos/internal/auth"
	"restopos/internal/platform/config"
)

type seedEmployee struct {
	name            string
	role            string
	hireDate        string
	paymentType     string
	hourlyRate      float64
	dailyRate       float64
	workdayHours    float64
	shiftStartTime  string
	monthlyBenefits float64
	latePenalty     float64
	absencePenalty  float64
	restDays        []int
}

type seedIngredient struct {
	name     string
	stock    float64
	minStock float64
	unit     string
	cost     float64
}

type seedProduct struct {
	name     string
	price    float64
	category string
	recipe   map[string]float64
}

var demoEmployees = []seedEmployee{
	{name: "GERENTE SUCURSAL", role: auth.RoleManager, hireDate: "2022-05-20", paymentType: "daily", dailyRate: 750, workdayHours: 9, shiftStartTime: "10:00", monthlyBenefits: 2500, restDays: []int{0}},
	{name: "CAJERO TURNO A", role: auth.RoleCashier, hireDate: "2023-01-15", paymentType: "daily", dailyRate: 300, workdayHours: 8, shiftStartTime: "09:00", monthlyBenefits: 1000, latePenalty: 50, absencePenalty: 300, restDays: []int{0, 6}},
	{name: "MESERO TURNO A", role: auth.RoleWaiter, hireDate: "2024-01-05", paymentType: "hourly", hourlyRate: 40, workdayHours: 8, shiftStartTime: "13:00", monthlyBenefits: 500, latePenalty: 20, absencePenalty: 150, restDays: []int{2}},
	{name: "COCINERO LINEA", role: auth.RoleCook, hireDate: "2023-11-15", paymentType: "daily", dailyRate: 280, workdayHours: 8, shiftStartTime: "12:00", monthlyBenefits: 800, latePenalty: 30, absencePenalty: 250, restDays: []int{3}},
	{name: "JUAN PEREZ", role: auth.RoleCourier, hireDate: "2024-03-10", paymentType: "hourly", hourlyRate: 50, workdayHours: 8, shiftStartTime: "12:00", monthlyBenefits: 500, latePenalty: 25, absencePenalty: 200, restDays: []int{2}},
}

var demoIngredients = []seedIngredient{
	{name: "ARROZ KOSHIHIKARI", stock: 50, minStock: 10, unit: "kg", cost: 120},
	{name: "ATUN ALETA AZUL", stock: 8, minStock: 2, unit: "kg", cost: 2100},
	{name: "SALMON ORA KING", stock: 12, minStock: 3, unit: "kg", cost: 1800},
	{name: "AGUACATE HASS", stock: 15, minStock: 5, unit: "kg", cost: 60},
	{name: "TRUFA NEGRA", stock: 0.5, minStock: 0.1, unit: "kg", cost: 8000},
	{name: "SAKE JUNMAI", stock: 10, minStock: 2, unit: "btl", cost: 450},
}

var demoProducts = []seedProduct{
	{name: "SASHIMI ESPECIAL", price: 245, category: "Cocina", recipe: map[string]float64{"ATUN ALETA AZUL": 0.150}},
	{name: "ROLLO DRAGON", price: 210, category: "Cocina", recipe: map[string]float64{"ARROZ KOSHIHIKARI": 0.100, "AGUACATE HASS": 0.080}},
	{name: "MARTINI LYCHEE", price: 165, category: "Bar", recipe: map[string]float64{"SAKE JUNMAI": 0.1}},
	{name: "NIGIRI TRUFA", price: 180, category: "Cocina", recipe: map[string]float64{"ARROZ KOSHIHIKARI": 0.050, "TRUFA NEGRA": 0.005}},
	{name: "RAMEN TONKOTSU", price: 220, category: "Cocina"},
	{name: "SAKE TEPPAN", price: 320, category: "Cocina", recipe: map[string]float64{"SALMON ORA KING": 0.180}},
}

// Seed is idempotent: every insert checks for an existing row first,
// so it is safe on every boot.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	branchID, err := ensureBranch(ctx, pool, cfg.SeedBranchName)
	if err != nil {
		return err
	}

	if cfg.SeedAdminPassword != "" {
		if err := ensureAdminUser(ctx, pool, branchID, cfg.SeedAdminUsername, cfg.SeedAdminPassword); err != nil {
			return err
		}
	}

	if !cfg.SeedDemoData {
		return nil
	}

	for _, emp := range demoEmployees {
		if err := ensureEmployee(ctx, pool, branchID, emp); err != nil {
			return err
		}
	}
	for _, ing := range demoIngredients {
		if err := ensureIngredient(ctx, pool, branchID, ing); err != nil {
			return err
		}
	}
	for _, product := range demoProducts {
		if err := ensureProduct(ctx, pool, branchID, product); err != nil {
			return err
		}
	}
	return nil
}

func ensureBranch(ctx context.Context, pool *pgxpool.Pool, name string) (string, error) {
	var id string
	err := pool.QueryRow(ctx, "SELECT id FROM branches WHERE name = $1", name).Scan(&id)
	if err == nil {
		return id, nil
	}

	err = pool.QueryRow(ctx, "INSERT INTO branches (name) VALUES ($1) RETURNING id", name).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func ensureAdminUser(ctx context.Context, pool *pgxpool.Pool, branchID, username, password string) error {
	var id string
	err := pool.QueryRow(ctx, "SELECT id FROM users WHERE username = $1", username).Scan(&id)
	if err == nil {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
    INSERT INTO users (branch_id, username, password_hash, name, role)
    VALUES ($1,$2,$3,$4,$5)
  `, branchID, username, hash, "Administrator", auth.RoleOwner)
	return err
}

func ensureEmployee(ctx context.Context, pool *pgxpool.Pool, branchID string, emp seedEmployee) error {
	var id string
	err := pool.QueryRow(ctx, "SELECT id FROM employees WHERE branch_id = $1 AND name = $2", branchID, emp.name).Scan(&id)
	if err == nil {
		return nil
	}

	_, err = pool.Exec(ctx, `
    INSERT INTO employees (
      branch_id, name, role, hire_date, payment_type, hourly_rate, daily_rate,
      workday_hours, shift_start_time, monthly_benefits, late_penalty,
      absence_penalty, rest_days
    ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
  `, branchID, emp.name, emp.role, emp.hireDate, emp.paymentType, emp.hourlyRate,
		emp.dailyRate, emp.workdayHours, emp.shiftStartTime, emp.monthlyBenefits,
		emp.latePenalty, emp.absencePenalty, emp.restDays)
	return err
}

func ensureIngredient(ctx context.Context, pool *pgxpool.Pool, branchID string, ing seedIngredient) error {
	var id string
	err := pool.QueryRow(ctx, "SELECT id FROM ingredients WHERE branch_id = $1 AND name = $2", branchID, ing.name).Scan(&id)
	if err == nil {
		return nil
	}

	_, err = pool.Exec(ctx, `
    INSERT INTO ingredients (branch_id, name, stock, min_stock, unit, cost)
    VALUES ($1,$2,$3,$4,$5,$6)
  `, branchID, ing.name, ing.stock, ing.minStock, ing.unit, ing.cost)
	return err
}

func ensureProduct(ctx context.Context, pool *pgxpool.Pool, branchID string, product seedProduct) error {
	var id string
	err := pool.QueryRow(ctx, "SELECT id FROM products WHERE branch_id = $1 AND name = $2", branchID, product.name).Scan(&id)
	if err == nil {
		return nil
	}

	err = pool.QueryRow(ctx, `
    INSERT INTO products (branch_id, name, price, category)
    VALUES ($1,$2,$3,$4)
    RETURNING id
  `, branchID, product.name, product.price, product.category).Scan(&id)
	if err != nil {
		return err
	}

	for ingredientName, quantity := range product.recipe {
		var ingredientID string
		err := pool.QueryRow(ctx, "SELECT id FROM ingredients WHERE branch_id = $1 AND name = $2", branchID, ingredientName).Scan(&ingredientID)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, `
      INSERT INTO recipe_items (product_id, ingredient_id, quantity)
      VALUES ($1,$2,$3)
    `, id, ingredientID, quantity); err != nil {
			return err
		}
	}
	return nil
}
