package server

import (
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"restopos/internal/domain/attendance"
	"restopos/internal/domain/audit"
	"restopos/internal/domain/inventory"
	"restopos/internal/domain/notifications"
	"restopos/internal/domain/orders"
	"restopos/internal/domain/payroll"
	"restopos/internal/domain/reports"
	"restopos/internal/domain/shift"
	"restopos/internal/domain/staff"
	"restopos/internal/platform/config"
	"restopos/internal/platform/db"
	"restopos/internal/platform/metrics"
	attendancehandler "restopos/internal/transport/http/handlers/attendance"
	audithandler "restopos/internal/transport/http/handlers/audit"
	authhandler "restopos/internal/transport/http/handlers/auth"
	inventoryhandler "restopos/internal/transport/http/handlers/inventory"
	notificationshandler "restopos/internal/transport/http/handlers/notifications"
	ordershandler "restopos/internal/transport/http/handlers/orders"
	payrollhandler "restopos/internal/transport/http/handlers/payroll"
	reportshandler "restopos/internal/transport/http/handlers/reports"
	shifthandler "restopos/internal/transport/http/handlers/shift"
	staffhandler "restopos/internal/transport/http/handlers/staff"
	"restopos/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	DB     *pgxpool.Pool
	Router http.Handler
}

// New connects, migrates, seeds and wires the full router. Tests use
// it with a scratch database; Run wraps it for the binary.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			pool.Close()
			return nil, err
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			pool.Close()
			return nil, err
		}
	}

	notificationsSvc := notifications.New(pool)
	auditSvc := audit.New(pool)
	staffSvc := staff.NewService(staff.NewStore(pool))
	attendanceSvc := attendance.NewService(attendance.NewStore(pool))
	inventorySvc := inventory.NewService(inventory.NewStore(pool), notificationsSvc, cfg.LowStockAlerts)
	ordersSvc := orders.NewService(orders.NewStore(pool), inventorySvc, cfg.TaxRate)
	payrollSvc := payroll.NewService(payroll.NewStore(pool), staffSvc, attendanceSvc, ordersSvc, cfg.PayrollWindowDays)
	shiftSvc := shift.NewService(shift.NewStore(pool), ordersSvc, notificationsSvc, cfg.DiscrepancyAlertOver)
	reportsSvc := reports.NewService(reports.NewStore(pool), payroll.NewStore(pool), shiftSvc)

	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Metrics(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))
	router.Use(middleware.SensitiveMutationRateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(collector.Snapshot())
	})

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(pool, cfg.JWTSecret, cfg.TokenTTL).RegisterRoutes(r)
		staffhandler.NewHandler(staffSvc, auditSvc).RegisterRoutes(r)
		attendancehandler.NewHandler(attendanceSvc).RegisterRoutes(r)
		payrollhandler.NewHandler(payrollSvc, staffSvc, auditSvc, cfg.PayslipDir, collector).RegisterRoutes(r)
		shifthandler.NewHandler(shiftSvc, collector).RegisterRoutes(r)
		ordershandler.NewHandler(ordersSvc).RegisterRoutes(r)
		inventoryhandler.NewHandler(inventorySvc).RegisterRoutes(r)
		reportshandler.NewHandler(reportsSvc).RegisterRoutes(r)
		notificationshandler.NewHandler(notificationsSvc).RegisterRoutes(r)
		audithandler.NewHandler(auditSvc).RegisterRoutes(r)
	})

	return &App{Config: cfg, DB: pool, Router: router}, nil
}

func (a *App) Close() {
	a.DB.Close()
}

func Run() {
	cfg := config.Load()

	app, err := New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer app.Close()

	slog.Info("server listening", "addr", cfg.Addr, "env", cfg.Environment)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
