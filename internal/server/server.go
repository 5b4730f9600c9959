package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/Ah-ugo/fombinatowers/internal/admin"
	"github.com/Ah-ugo/fombinatowers/internal/auth"
	"github.com/Ah-ugo/fombinatowers/internal/booking"
	"github.com/Ah-ugo/fombinatowers/internal/config"
	"github.com/Ah-ugo/fombinatowers/internal/contact"
	"github.com/Ah-ugo/fombinatowers/internal/email"
	"github.com/Ah-ugo/fombinatowers/internal/payment"
	"github.com/Ah-ugo/fombinatowers/internal/space"
	"github.com/Ah-ugo/fombinatowers/internal/transaction"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service, gateway payment.Gateway) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	spaceRepo := space.NewRepository(db)
	bookingRepo := booking.NewRepository(db)
	ledger := transaction.NewRepository(db)
	contactRepo := contact.NewRepository(db)
	adminRepo := admin.NewRepository(db)

	bookingService := booking.NewService(bookingRepo, spaceRepo, ledger, gateway, emailService)

	spaceHandler := space.NewHandler(spaceRepo)
	bookingHandler := booking.NewHandler(bookingService)
	transactionHandler := transaction.NewHandler(ledger)
	contactHandler := contact.NewHandler(contactRepo, emailService, cfg.AdminEmail)
	adminHandler := admin.NewHandler(adminRepo, cfg.JWTSecret)

	public := router.Group("/api")
	public.Use(RateLimitMiddleware(10, 20))
	{
		public.POST("/book-space", bookingHandler.BookSpace)
		public.GET("/verify-payment/:reference", bookingHandler.VerifyPayment)
		public.POST("/contact", contactHandler.Submit)
		public.POST("/admin/login", adminHandler.Login)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	adminOnly := auth.RequireRole("admin")
	protected := router.Group("/api")
	protected.Use(authMiddleware, adminOnly)
	{
		protected.GET("/admin/bookings", bookingHandler.ListBookings)
		protected.GET("/admin/transactions", transactionHandler.List)
		protected.GET("/admin/contacts", contactHandler.List)
		protected.POST("/spaces", spaceHandler.Create)
		protected.PUT("/spaces/:id", spaceHandler.Update)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/test-email", TestEmail(emailService))
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
