package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Roopkumar213/KNG/internal/config"
	"github.com/Roopkumar213/KNG/internal/middleware"
	"github.com/Roopkumar213/KNG/internal/services"
)

// NewRouter assembles the HTTP surface: public submission routes, the login
// route and the token-gated admin routes. loginLimiter may be nil.
func NewRouter(
	cfg *config.Config,
	authService *services.AuthService,
	authHandler *AuthHandler,
	bookingHandler *BookingHandler,
	inquiryHandler *InquiryHandler,
	auditHandler *AuditHandler,
	loginLimiter *middleware.RateLimiter,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.Use(middleware.SecurityHeaders())
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	api := r.Group("/api")
	{
		api.POST("/bookings", bookingHandler.Create)
		api.POST("/inquiries", inquiryHandler.Create)
	}

	admin := r.Group("/admin")
	{
		if loginLimiter != nil {
			admin.POST("/login", loginLimiter.Middleware(), authHandler.Login)
		} else {
			admin.POST("/login", authHandler.Login)
		}

		protected := admin.Group("")
		protected.Use(middleware.Auth(authService))
		{
			protected.GET("/bookings", bookingHandler.List)
			protected.GET("/inquiries", inquiryHandler.List)
			protected.GET("/audit", auditHandler.List)
		}
	}

	return r
}
