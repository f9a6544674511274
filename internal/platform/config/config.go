package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr                 string
	DatabaseURL          string
	JWTSecret            string
	Environment          string
	SeedBranchName       string
	SeedAdminUsername    string
	SeedAdminPassword    string
	SeedDemoData         bool
	RunMigrations        bool
	RunSeed              bool
	MigrationsDir        string
	PayrollWindowDays    int
	TaxRate              float64
	DiscrepancyAlertOver float64
	LowStockAlerts       bool
	MaxBodyBytes         int64
	RateLimitPerMinute   int
	TokenTTL             time.Duration
	PayslipDir           string
}

func Load() Config {
	return Config{
		Addr:                 getEnv("APP_ADDR", ":8080"),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		JWTSecret:            getEnv("JWT_SECRET", ""),
		Environment:          getEnv("APP_ENV", "development"),
		SeedBranchName:       getEnv("SEED_BRANCH_NAME", "Main Branch"),
		SeedAdminUsername:    getEnv("SEED_ADMIN_USERNAME", "admin"),
		SeedAdminPassword:    getEnv("SEED_ADMIN_PASSWORD", ""),
		SeedDemoData:         getEnvBool("SEED_DEMO_DATA", true),
		RunMigrations:        getEnvBool("RUN_MIGRATIONS", true),
		RunSeed:              getEnvBool("RUN_SEED", true),
		MigrationsDir:        getEnv("MIGRATIONS_DIR", "migrations"),
		PayrollWindowDays:    getEnvInt("PAYROLL_WINDOW_DAYS", 7),
		TaxRate:              getEnvFloat("TAX_RATE", 0.16),
		DiscrepancyAlertOver: getEnvFloat("DISCREPANCY_ALERT_OVER", 50),
		LowStockAlerts:       getEnvBool("LOW_STOCK_ALERTS", true),
		MaxBodyBytes:         int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		RateLimitPerMinute:   getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		TokenTTL:             getEnvDuration("TOKEN_TTL", 12*time.Hour),
		PayslipDir:           getEnv("PAYSLIP_DIR", "storage/payslips"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Environment == "production" {
		if strings.TrimSpace(c.JWTSecret) == "" {
			return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
		}
		if c.RunSeed && strings.TrimSpace(c.SeedAdminPassword) == "" {
			return fmt.Errorf("SEED_ADMIN_PASSWORD must be changed or RUN_SEED disabled in production")
		}
	}
	if c.PayrollWindowDays <= 0 {
		return fmt.Errorf("PAYROLL_WINDOW_DAYS must be positive")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	return nil
}
