// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dealradar/dealradar-gateway/internal/config"
	"github.com/dealradar/dealradar-gateway/internal/handlers"
	"github.com/dealradar/dealradar-gateway/internal/middleware"
	"github.com/dealradar/dealradar-gateway/internal/session"
	"github.com/dealradar/dealradar-gateway/internal/storage"
)

func Initialize(st storage.Storage, cfg *config.Config) *gin.Engine {
	// Session manager backs every request with its per-session state
	sessionManager := session.NewManager(st, cfg)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler()
	pagesHandler := handlers.NewPagesHandler()
	searchHandler := handlers.NewSearchHandler()
	compareHandler := handlers.NewCompareHandler()
	cartHandler := handlers.NewCartHandler()
	savedHandler := handlers.NewSavedHandler()
	prefsHandler := handlers.NewPrefsHandler()
	accountHandler := handlers.NewAccountHandler()
	adminHandler := handlers.NewAdminHandler()

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.Session(sessionManager, cfg))
	r.Use(middleware.Locale())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Public pages
	r.GET("/", pagesHandler.Home)
	r.GET("/search", searchHandler.Search)
	r.POST("/search/filters", searchHandler.UpdateFilters)
	r.GET("/search/history", searchHandler.History)
	r.DELETE("/search/history", searchHandler.ClearHistory)
	r.GET("/category/:slug", pagesHandler.Category)
	r.GET("/product/:id", pagesHandler.Product)
	r.GET("/deals", pagesHandler.Deals)
	r.GET("/reviews", pagesHandler.Reviews)

	r.GET("/compare", compareHandler.Get)
	r.POST("/compare", compareHandler.Add)
	r.DELETE("/compare", compareHandler.Clear)
	r.DELETE("/compare/:id", compareHandler.Remove)

	r.GET("/preferences", prefsHandler.Get)
	r.PUT("/preferences/language", prefsHandler.SetLanguage)
	r.PUT("/preferences/currency", prefsHandler.SetCurrency)
	r.PUT("/preferences/formats", prefsHandler.SetFormats)
	r.GET("/language", pagesHandler.Language)

	r.GET("/about", pagesHandler.About)
	r.GET("/faq", pagesHandler.FAQ)
	r.GET("/privacy", pagesHandler.Privacy)
	r.GET("/terms", pagesHandler.Terms)
	r.POST("/contact", pagesHandler.Contact)
	r.POST("/newsletter", pagesHandler.Newsletter)

	// Authentication routes are for guests only
	auth := r.Group("/")
	auth.Use(middleware.AuthRateLimit(), middleware.GuestOnly())
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/register", authHandler.Register)
		auth.POST("/verify-otp", authHandler.VerifyOTP)
		auth.POST("/resend-otp", authHandler.ResendOTP)
		auth.POST("/forgot-password", authHandler.ForgotPassword)
		auth.POST("/reset-password", authHandler.ResetPassword)
	}

	// Pages that need a signed-in user
	protected := r.Group("/")
	protected.Use(middleware.AuthRequired())
	{
		protected.POST("/logout", authHandler.Logout)

		protected.GET("/cart", cartHandler.Get)
		protected.POST("/cart", cartHandler.Add)
		protected.PUT("/cart/:id", cartHandler.Update)
		protected.DELETE("/cart/:id", cartHandler.Remove)

		protected.GET("/saved-items", savedHandler.List)
		protected.POST("/saved-items/toggle", savedHandler.Toggle)
		protected.DELETE("/saved-items/:id", savedHandler.Remove)

		protected.GET("/account", accountHandler.Get)
		protected.PUT("/account", accountHandler.Update)
		protected.GET("/orders", accountHandler.Orders)
		protected.GET("/notifications", accountHandler.Notifications)
		protected.GET("/referral", accountHandler.Referral)

		protected.GET("/admin/dashboard", adminHandler.Dashboard)
	}

	// Unmatched routes render the not-found page state
	r.NoRoute(pagesHandler.NotFound)

	return r
}
