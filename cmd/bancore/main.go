package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bancore/internal/config"
	"bancore/internal/database"
	"bancore/internal/repositories"
	"bancore/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("failed to initialize database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Repositories
	ownerRepo := repositories.NewOwnerRepository(db)
	accountRepo := repositories.NewAccountRepository(db)
	ledgerRepo := repositories.NewLedgerRepository(db)
	cardRepo := repositories.NewCardRepository(db)
	chargeRepo := repositories.NewChargeRepository(db)
	loanRepo := repositories.NewLoanRepository(db)
	auditRepo := repositories.NewAuditLogRepository(db)

	// Shared infrastructure
	metrics := services.NewPrometheusMetrics()
	verifier := services.NewVerificationService()
	auditRecorder := services.NewAuditRecorder(auditRepo, logger)
	notifier := services.NewThrottledNotifier(
		services.NewLogNotificationSender(logger),
		rate.NewLimiter(rate.Limit(cfg.Settlement.NotifyRatePerSecond), cfg.Settlement.NotifyBurst),
		services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig()),
		metrics,
		logger,
	)

	// Domain services
	ledgerService := services.NewLedgerService(ownerRepo, accountRepo, ledgerRepo, auditRepo, metrics, logger)
	cardService := services.NewCardService(cardRepo, chargeRepo, ownerRepo, auditRepo, verifier, metrics, logger)
	loanService := services.NewLoanService(loanRepo, cardRepo, accountRepo, ownerRepo, auditRepo, metrics, logger)
	settlementService := services.NewSettlementService(
		accountRepo, cardRepo, loanRepo, ownerRepo,
		verifier, auditRecorder, notifier, metrics,
		cfg.Settlement.MaxCommitRetries, logger,
	)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.IsDevelopment() && cfg.SampleData.Enabled {
		seeder := services.NewSampleDataGenerator(ledgerService, cardService, loanService, settlementService, logger)
		go func() {
			if err := seeder.Generate(ctx, cfg.SampleData.Owners); err != nil {
				logger.Error("sample data generation failed", slog.String("error", err.Error()))
			}
		}()
	}

	// Overdue sweep runs on a fixed cadence for the life of the process
	go runOverdueSweep(ctx, loanService, cfg.Settlement.SweepInterval, logger)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	e.GET("/health", func(c echo.Context) error {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("starting server", slog.String("addr", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.String("error", err.Error()))
	}
}

// runOverdueSweep flags past-due installments at every tick until shutdown
func runOverdueSweep(ctx context.Context, loans services.LoanServiceInterface, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := loans.SweepOverdue(time.Now().UTC()); err != nil {
				logger.Error("overdue sweep failed", slog.String("error", err.Error()))
			}
		}
	}
}
