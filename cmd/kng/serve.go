package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Roopkumar213/KNG/internal/config"
	"github.com/Roopkumar213/KNG/internal/database"
	"github.com/Roopkumar213/KNG/internal/handlers"
	"github.com/Roopkumar213/KNG/internal/middleware"
	"github.com/Roopkumar213/KNG/internal/notify"
	"github.com/Roopkumar213/KNG/internal/repository"
	"github.com/Roopkumar213/KNG/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  "Start the booking-intake API and admin endpoints.",
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Init(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	inquiryRepo := repository.NewInquiryRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	notifier := notify.New(cfg.SMTP)

	auditService := services.NewAuditService(auditRepo)
	authService := services.NewAuthService(userRepo, auditService, cfg.App.Secret)
	bookingService := services.NewBookingService(bookingRepo, notifier, cfg.Admin.NotifyEmail)
	inquiryService := services.NewInquiryService(inquiryRepo)

	authHandler := handlers.NewAuthHandler(authService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	inquiryHandler := handlers.NewInquiryHandler(inquiryService)
	auditHandler := handlers.NewAuditHandler(auditService)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	loginLimiter := middleware.NewRateLimiter(5, time.Minute)
	r := handlers.NewRouter(cfg, authService, authHandler, bookingHandler, inquiryHandler, auditHandler, loginLimiter)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
		log.Printf("Starting server on %s", addr)
		if err := r.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
}
