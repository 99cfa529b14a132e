package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"course-checkout-api/internal/auth"
	"course-checkout-api/internal/client"
	"course-checkout-api/internal/config"
	"course-checkout-api/internal/handler"
	"course-checkout-api/internal/repository"
	"course-checkout-api/internal/server"
	"course-checkout-api/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitMysqlClient(cfg.DatabaseURL)

	var razorpayClient client.RazorpayClient
	if cfg.Razorpay.Configured() {
		razorpayClient = client.NewRazorpayClient(&cfg.Razorpay)
		log.Println("Razorpay configured")
	} else {
		log.Println("Razorpay credentials not found - payment features will be disabled")
	}

	codec := auth.NewTokenCodec(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	userRepo := repository.NewUserRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	userService := service.NewUserService(userRepo, codec)
	paymentService := service.NewPaymentService(razorpayClient, cfg.Razorpay.KeySecret, paymentRepo)

	includeDetail := !cfg.Environment.IsProduction()

	srv := server.NewServer(
		handler.NewAuthHandler(userService, includeDetail),
		handler.NewPaymentHandler(paymentService, cfg.Checkout, includeDetail),
		handler.NewHealthHandler(db, cfg.Environment.Name, cfg.Razorpay.Configured()),
		codec,
		userRepo,
	)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
