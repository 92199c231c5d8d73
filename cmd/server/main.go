// Package main is the entry point for the eventum API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"eventum/internal/core/entity"
	"eventum/internal/core/id"
	"eventum/internal/domain"
	"eventum/internal/domain/auth"
	"eventum/internal/domain/bookings"
	"eventum/internal/domain/events"
	"eventum/internal/domain/invoices"
	"eventum/internal/domain/organizations"
	"eventum/internal/domain/payments"
	"eventum/internal/domain/registrations"
	"eventum/internal/domain/resources"
	"eventum/internal/domain/tickets"
	"eventum/internal/domain/venues"
	v1 "eventum/internal/infrastructure/http/v1"
	"eventum/internal/infrastructure/storage/postgres"
	"eventum/internal/infrastructure/storage/postgres/auth_repo"
	"eventum/internal/infrastructure/storage/postgres/entity_repo"
	"eventum/pkg/logger"
	"eventum/pkg/numerator"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting eventum server")

	// --- Database ---
	poolCfg := postgres.DefaultPoolConfig(mustEnv("DATABASE_URL"))
	if maxConns := getEnvInt("DB_MAX_CONNS", 0); maxConns > 0 {
		poolCfg.MaxConns = int32(maxConns)
	}

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	// --- Shared services ---
	numeratorService := numerator.New(pool)

	auditService, err := postgres.NewAuditService(txManager)
	if err != nil {
		log.Fatalw("failed to initialize audit service", "error", err)
	}

	// --- JWT ---
	jwtSecret := getEnv("JWT_SECRET", "change-me-in-production")
	jwtService := auth.NewJWTService(auth.DefaultJWTConfig(jwtSecret))

	// --- Auth ---
	userRepo := auth_repo.NewUserRepo(txManager)
	authService := auth.NewService(userRepo, txManager, jwtService, auth.DefaultServiceConfig())

	// --- Domain services ---
	eventRepo := entity_repo.NewEventRepo(txManager)
	eventService := events.NewService(eventRepo, txManager)
	registerAuditHooks(eventService.Hooks(), auditService, "event",
		func(e *events.Event) id.ID { return e.ID })

	venueRepo := entity_repo.NewVenueRepo(txManager)
	venueService := venues.NewService(venueRepo, txManager)
	registerAuditHooks(venueService.Hooks(), auditService, "venue",
		func(v *venues.Venue) id.ID { return v.ID })

	bookingRepo := entity_repo.NewBookingRepo(txManager)
	bookingService := bookings.NewService(bookingRepo, txManager)
	registerAuditHooks(bookingService.Hooks(), auditService, "booking",
		func(b *bookings.VenueBooking) id.ID { return b.ID })

	organizationRepo := entity_repo.NewOrganizationRepo(txManager)
	organizationService := organizations.NewService(organizationRepo, txManager)
	registerAuditHooks(organizationService.Hooks(), auditService, "organization",
		func(o *organizations.Organization) id.ID { return o.ID })

	invoiceRepo := entity_repo.NewInvoiceRepo(txManager)
	invoiceService := invoices.NewService(invoiceRepo, txManager, numeratorService)
	registerAuditHooks(invoiceService.Hooks(), auditService, "invoice",
		func(inv *invoices.Invoice) id.ID { return inv.ID })

	paymentRepo := entity_repo.NewPaymentRepo(txManager)
	paymentService := payments.NewService(paymentRepo, txManager, invoiceService)
	registerAuditHooks(paymentService.Hooks(), auditService, "payment",
		func(p *payments.Payment) id.ID { return p.ID })

	registrationRepo := entity_repo.NewRegistrationRepo(txManager)
	registrationService := registrations.NewService(registrationRepo, eventRepo, txManager)
	registerAuditHooks(registrationService.Hooks(), auditService, "registration",
		func(r *registrations.Registration) id.ID { return r.ID })

	ticketRepo := entity_repo.NewTicketRepo(txManager)
	ticketService := tickets.NewService(ticketRepo, txManager, numeratorService)
	registerAuditHooks(ticketService.Hooks(), auditService, "ticket",
		func(t *tickets.Ticket) id.ID { return t.ID })

	resourceRepo := entity_repo.NewResourceRepo(txManager)
	resourceService := resources.NewService(resourceRepo, txManager)
	registerAuditHooks(resourceService.Hooks(), auditService, "resource",
		func(r *resources.Resource) id.ID { return r.ID })

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:                pool,
		Logger:              log,
		JWTValidator:        jwtService,
		AuthService:         authService,
		EventService:        eventService,
		VenueService:        venueService,
		BookingService:      bookingService,
		OrganizationService: organizationService,
		InvoiceService:      invoiceService,
		PaymentService:      paymentService,
		RegistrationService: registrationService,
		TicketService:       ticketService,
		ResourceService:     resourceService,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

// registerAuditHooks records every committed change to the audit trail.
// Hooks run after the transaction; a failed audit write is logged by the
// service layer, never surfaced to the client.
func registerAuditHooks[T entity.Validatable](
	hooks *domain.HookRegistry[T],
	audit *postgres.AuditService,
	entityType string,
	idOf func(T) id.ID,
) {
	hooks.On(domain.AfterCreate, func(ctx context.Context, e T) error {
		return audit.LogChange(ctx, entityType, idOf(e), postgres.AuditActionCreate, postgres.StructToMap(e))
	})
	hooks.On(domain.AfterUpdate, func(ctx context.Context, e T) error {
		return audit.LogChange(ctx, entityType, idOf(e), postgres.AuditActionUpdate, postgres.StructToMap(e))
	})
	hooks.On(domain.AfterDelete, func(ctx context.Context, e T) error {
		return audit.LogChange(ctx, entityType, idOf(e), postgres.AuditActionDelete, nil)
	})
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

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
