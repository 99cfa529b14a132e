package server

import (
	"course-checkout-api/internal/auth"
	"course-checkout-api/internal/handler"
	authmw "course-checkout-api/internal/middleware"
	"course-checkout-api/internal/repository"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo           *echo.Echo
	authHandler    *handler.AuthHandler
	paymentHandler *handler.PaymentHandler
	healthHandler  *handler.HealthHandler
	authMiddleware echo.MiddlewareFunc
}

func NewServer(
	authHandler *handler.AuthHandler,
	paymentHandler *handler.PaymentHandler,
	healthHandler *handler.HealthHandler,
	codec *auth.TokenCodec,
	userRepo repository.UserRepository,
) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:           e,
		authHandler:    authHandler,
		paymentHandler: paymentHandler,
		healthHandler:  healthHandler,
		authMiddleware: authmw.AuthMiddleware(codec, userRepo),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", s.healthHandler.Health)

	// -------- auth --------
	authGroup := api.Group("/auth")
	authGroup.POST("/signup", s.authHandler.Signup)
	authGroup.POST("/login", s.authHandler.Login)
	authGroup.GET("/me", s.authHandler.Me, s.authMiddleware)

	// -------- payments --------
	// routes stay registered even without gateway credentials; the service
	// answers 500 Payment service not configured per request
	payments := api.Group("/payments", s.authMiddleware)
	payments.POST("/create-order", s.paymentHandler.CreateOrder)
	payments.POST("/verify", s.paymentHandler.VerifyPayment)
	payments.POST("/verify-payment", s.paymentHandler.VerifyPayment)
	payments.GET("/history", s.paymentHandler.History)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
