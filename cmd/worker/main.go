// Package main is the entry point for the eventum background worker.
// It runs periodic maintenance: sweeping unpaid invoices past their due
// date into overdue, and trimming old audit entries.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"eventum/internal/domain/invoices"
	"eventum/internal/infrastructure/storage/postgres"
	"eventum/internal/infrastructure/storage/postgres/entity_repo"
	"eventum/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.Info("starting eventum worker")

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(mustEnv("DATABASE_URL")))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	invoiceRepo := entity_repo.NewInvoiceRepo(txManager)
	invoiceService := invoices.NewService(invoiceRepo, txManager, nil)

	worker := NewWorker(pool, invoiceService, log)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		worker.Run(ctx)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancel()

	wg.Wait()
	log.Info("worker stopped")
}

// Worker runs periodic maintenance jobs.
type Worker struct {
	pool     *postgres.Pool
	invoices *invoices.Service
	log      *logger.Logger

	sweepInterval time.Duration
	auditMaxAge   time.Duration
}

// NewWorker creates a worker with intervals from the environment.
func NewWorker(pool *postgres.Pool, invoiceService *invoices.Service, log *logger.Logger) *Worker {
	return &Worker{
		pool:          pool,
		invoices:      invoiceService,
		log:           log.WithComponent("worker"),
		sweepInterval: getEnvDuration("OVERDUE_SWEEP_INTERVAL", time.Hour),
		auditMaxAge:   getEnvDuration("AUDIT_MAX_AGE", 90*24*time.Hour),
	}
}

// Run executes jobs on their tickers until the context is cancelled.
func (w *Worker) Run(ctx context.Context) {
	sweepTicker := time.NewTicker(w.sweepInterval)
	defer sweepTicker.Stop()

	cleanupTicker := time.NewTicker(24 * time.Hour)
	defer cleanupTicker.Stop()

	// Run once at startup so a restart does not delay the sweep
	w.sweepOverdue(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-sweepTicker.C:
			w.sweepOverdue(ctx)
		case <-cleanupTicker.C:
			w.cleanupAudit(ctx)
		}
	}
}

func (w *Worker) sweepOverdue(ctx context.Context) {
	count, err := w.invoices.SweepOverdue(ctx, time.Now())
	if err != nil {
		w.log.Errorw("overdue sweep failed", "error", err)
		return
	}
	if count > 0 {
		w.log.Infow("swept invoices to overdue", "count", count)
	}
}

func (w *Worker) cleanupAudit(ctx context.Context) {
	result, err := w.pool.Exec(ctx, `
		DELETE FROM sys_audit
		WHERE created_at < NOW() - make_interval(hours => $1)
	`, int(w.auditMaxAge.Hours()))
	if err != nil {
		w.log.Errorw("audit cleanup failed", "error", err)
		return
	}

	if result.RowsAffected() > 0 {
		w.log.Infow("cleaned up old audit entries", "count", result.RowsAffected())
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
