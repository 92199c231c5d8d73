// Package main provides a CLI tool for seeding the database with initial data.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"eventum/internal/core/apperror"
	"eventum/internal/domain/auth"
	"eventum/internal/domain/bookings"
	"eventum/internal/domain/events"
	"eventum/internal/domain/invoices"
	"eventum/internal/domain/organizations"
	"eventum/internal/domain/registrations"
	"eventum/internal/domain/resources"
	"eventum/internal/domain/tickets"
	"eventum/internal/domain/venues"
	"eventum/internal/infrastructure/storage/postgres"
	"eventum/internal/infrastructure/storage/postgres/auth_repo"
	"eventum/internal/infrastructure/storage/postgres/entity_repo"
	"eventum/pkg/logger"
	"eventum/pkg/numerator"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	txManager := postgres.NewTxManager(pool)

	if err := seedAdminUser(ctx, txManager, log); err != nil {
		log.Fatalw("failed to seed admin user", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(ctx, pool, txManager, log); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedAdminUser(ctx context.Context, txManager *postgres.TxManager, log *logger.Logger) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@eventum.local"
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "Admin123!"
	}

	userRepo := auth_repo.NewUserRepo(txManager)
	authService := auth.NewService(userRepo, txManager, nil, auth.DefaultServiceConfig())

	user, err := authService.Register(ctx, auth.RegisterRequest{
		Email:    adminEmail,
		Name:     "System Admin",
		Password: adminPassword,
		Role:     auth.RoleAdmin,
	})
	if err != nil {
		if apperror.IsConflict(err) {
			log.Infow("admin user already exists", "email", adminEmail)
			return nil
		}
		return err
	}

	log.Infow("admin user created", "email", adminEmail, "user_id", user.ID)
	return nil
}

func seedDemoData(ctx context.Context, pool *postgres.Pool, txManager *postgres.TxManager, log *logger.Logger) error {
	num := numerator.New(pool)

	organizationService := organizations.NewService(entity_repo.NewOrganizationRepo(txManager), txManager)
	venueService := venues.NewService(entity_repo.NewVenueRepo(txManager), txManager)
	eventRepo := entity_repo.NewEventRepo(txManager)
	eventService := events.NewService(eventRepo, txManager)
	bookingService := bookings.NewService(entity_repo.NewBookingRepo(txManager), txManager)
	invoiceService := invoices.NewService(entity_repo.NewInvoiceRepo(txManager), txManager, num)
	registrationService := registrations.NewService(entity_repo.NewRegistrationRepo(txManager), eventRepo, txManager)
	ticketService := tickets.NewService(entity_repo.NewTicketRepo(txManager), txManager, num)
	resourceService := resources.NewService(entity_repo.NewResourceRepo(txManager), txManager)

	// Organizations
	org := organizations.New("Northlight Productions", "Dana Reyes", "dana@northlight.example")
	if err := organizationService.Create(ctx, org); err != nil {
		return fmt.Errorf("seed organization: %w", err)
	}

	// Venues
	hall := venues.New("Riverside Hall", "12 Quay Street", "Bristol", 250)
	loft := venues.New("The Loft", "8 Mill Lane", "Bristol", 60)
	for _, v := range []*venues.Venue{hall, loft} {
		if err := venueService.Create(ctx, v); err != nil {
			return fmt.Errorf("seed venue %s: %w", v.Name, err)
		}
	}

	// Events
	spring := events.New("Spring Product Summit", hall.Name, time.Now().AddDate(0, 1, 0), 200)
	workshop := events.New("Hands-on Workshop", loft.Name, time.Now().AddDate(0, 0, 14), 40)
	for _, e := range []*events.Event{spring, workshop} {
		if err := eventService.Create(ctx, e); err != nil {
			return fmt.Errorf("seed event %s: %w", e.Title, err)
		}
		if _, err := eventService.Publish(ctx, e.ID); err != nil {
			return fmt.Errorf("publish event %s: %w", e.Title, err)
		}
	}

	// Bookings
	booking := bookings.New(hall.Name, "Dana Reyes", time.Now().AddDate(0, 1, 0), 8)
	if err := bookingService.Create(ctx, booking); err != nil {
		return fmt.Errorf("seed booking: %w", err)
	}

	// Invoices
	inv := invoices.New("Northlight Productions", decimal.NewFromInt(1200), time.Now().AddDate(0, 0, 30))
	if err := invoiceService.Create(ctx, inv); err != nil {
		return fmt.Errorf("seed invoice: %w", err)
	}

	// Registrations
	attendees := []struct{ name, email string }{
		{"Alex Morgan", "alex.morgan@example.com"},
		{"Priya Shah", "priya.shah@example.com"},
		{"Tomas Eriksen", "tomas.eriksen@example.com"},
	}
	for _, a := range attendees {
		if _, err := registrationService.Register(ctx, spring.ID, a.name, a.email); err != nil {
			return fmt.Errorf("seed registration %s: %w", a.name, err)
		}
	}

	// Tickets
	for _, a := range attendees {
		t := tickets.New(spring.ID, a.name, "general", decimal.NewFromInt(45))
		if err := ticketService.Create(ctx, t); err != nil {
			return fmt.Errorf("seed ticket %s: %w", a.name, err)
		}
	}

	// Resources
	for _, r := range []*resources.Resource{
		resources.New("PA System", resources.KindEquipment),
		resources.New("Stage Crew", resources.KindStaff),
		resources.New("Catering", resources.KindService),
	} {
		if err := resourceService.Create(ctx, r); err != nil {
			return fmt.Errorf("seed resource %s: %w", r.Name, err)
		}
	}

	log.Info("demo data created")
	return nil
}
