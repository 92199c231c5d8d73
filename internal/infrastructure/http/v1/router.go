package v1

import (
	"github.com/gin-gonic/gin"

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
	"eventum/internal/infrastructure/http/v1/handlers"
	"eventum/internal/infrastructure/http/v1/middleware"
	"eventum/internal/infrastructure/storage/postgres"
	"eventum/pkg/logger"
)

// RouterConfig holds everything the router wires together.
type RouterConfig struct {
	// Pool is the database connection pool (for health checks).
	Pool *postgres.Pool

	// Logger for request logging.
	Logger *logger.Logger

	// JWTValidator for token validation.
	JWTValidator middleware.JWTValidator

	// Services
	AuthService         *auth.Service
	EventService        *events.Service
	VenueService        *venues.Service
	BookingService      *bookings.Service
	OrganizationService *organizations.Service
	InvoiceService      *invoices.Service
	PaymentService      *payments.Service
	RegistrationService *registrations.Service
	TicketService       *tickets.Service
	ResourceService     *resources.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Liveness)
		health.GET("/ready", healthHandler.Readiness)
	}

	baseHandler := handlers.NewBaseHandler()

	// API v1
	api := router.Group("/api/v1")
	{
		registerAuthRoutes(api, baseHandler, cfg)

		protected := api.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		registerEntityRoutes(protected, baseHandler, cfg)
		registerDashboardRoutes(protected, baseHandler, cfg)
	}

	return router
}

// registerAuthRoutes registers authentication endpoints.
func registerAuthRoutes(rg *gin.RouterGroup, baseHandler *handlers.BaseHandler, cfg RouterConfig) {
	if cfg.AuthService == nil {
		return
	}

	authHandler := handlers.NewAuthHandler(baseHandler, cfg.AuthService)
	admin := middleware.RequireRole(auth.RoleAdmin)

	authGroup := rg.Group("/auth")
	authGroup.POST("/login", authHandler.Login)

	protectedAuth := rg.Group("/auth")
	protectedAuth.Use(middleware.Auth(cfg.JWTValidator))
	protectedAuth.GET("/me", authHandler.Me)
	protectedAuth.POST("/register", admin, authHandler.Register)
	protectedAuth.POST("/users/:id/active", admin, authHandler.SetActive)
}

// registerEntityRoutes registers CRUD and lifecycle endpoints for all
// domain entities.
func registerEntityRoutes(rg *gin.RouterGroup, baseHandler *handlers.BaseHandler, cfg RouterConfig) {
	write := middleware.RequireRole(auth.RoleManager, auth.RoleAdmin)

	// --- EVENTS ---
	{
		handler := handlers.NewEventHandler(baseHandler, cfg.EventService)
		group := rg.Group("/events")
		RegisterEntityRoutes(group, handler)
		group.POST("/:id/publish", write, handler.Publish)
		group.POST("/:id/cancel", write, handler.Cancel)
	}

	// --- VENUES ---
	{
		handler := handlers.NewVenueHandler(baseHandler, cfg.VenueService)
		group := rg.Group("/venues")
		RegisterEntityRoutes(group, handler)
		group.GET("/by-name/:name", handler.GetByName)
	}

	// --- BOOKINGS ---
	{
		handler := handlers.NewBookingHandler(baseHandler, cfg.BookingService)
		group := rg.Group("/bookings")
		RegisterEntityRoutes(group, handler)
		group.POST("/:id/confirm", write, handler.Confirm)
		group.POST("/:id/cancel", write, handler.Cancel)
	}

	// --- ORGANIZATIONS ---
	{
		handler := handlers.NewOrganizationHandler(baseHandler, cfg.OrganizationService)
		RegisterEntityRoutes(rg.Group("/organizations"), handler)
	}

	// --- INVOICES ---
	{
		handler := handlers.NewInvoiceHandler(baseHandler, cfg.InvoiceService)
		group := rg.Group("/invoices")
		RegisterEntityRoutes(group, handler)
		group.POST("/:id/mark-paid", write, handler.MarkPaid)

		paymentHandler := handlers.NewPaymentHandler(baseHandler, cfg.PaymentService)
		group.GET("/:id/payments", paymentHandler.ListByInvoice)
	}

	// --- PAYMENTS ---
	{
		handler := handlers.NewPaymentHandler(baseHandler, cfg.PaymentService)
		group := rg.Group("/payments")
		group.GET("", handler.List)
		group.GET("/:id", handler.Get)
		group.POST("", write, handler.Record)
	}

	// --- REGISTRATIONS ---
	{
		handler := handlers.NewRegistrationHandler(baseHandler, cfg.RegistrationService)
		group := rg.Group("/registrations")
		group.GET("", handler.List)
		group.GET("/:id", handler.Get)
		group.POST("", handler.Register)
		group.POST("/:id/confirm", write, handler.Confirm)
		group.POST("/:id/cancel", handler.Cancel)
	}

	// --- TICKETS ---
	{
		handler := handlers.NewTicketHandler(baseHandler, cfg.TicketService)
		group := rg.Group("/tickets")
		RegisterEntityRoutes(group, handler)
		group.POST("/:id/check-in", write, handler.CheckIn)
		group.POST("/:id/void", write, handler.Void)
	}

	// --- RESOURCES ---
	{
		handler := handlers.NewResourceHandler(baseHandler, cfg.ResourceService)
		RegisterEntityRoutes(rg.Group("/resources"), handler)
	}
}

// registerDashboardRoutes registers the cross-entity overview endpoint.
func registerDashboardRoutes(rg *gin.RouterGroup, baseHandler *handlers.BaseHandler, cfg RouterConfig) {
	handler := handlers.NewDashboardHandler(
		baseHandler,
		cfg.EventService,
		cfg.InvoiceService,
		cfg.RegistrationService,
		cfg.BookingService,
	)
	rg.GET("/dashboard", handler.Overview)
}
