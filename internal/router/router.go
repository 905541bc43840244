package router

import (
	"time"

	"github.com/khues-restaurant/khues-restaurant-sub002/internal/auth"
	"github.com/khues-restaurant/khues-restaurant-sub002/internal/cart"
	"github.com/khues-restaurant/khues-restaurant-sub002/internal/hours"
	"github.com/khues-restaurant/khues-restaurant-sub002/internal/menu"
	"github.com/khues-restaurant/khues-restaurant-sub002/internal/middleware"
	"github.com/khues-restaurant/khues-restaurant-sub002/internal/order"
	"github.com/khues-restaurant/khues-restaurant-sub002/internal/pricing"
	"github.com/khues-restaurant/khues-restaurant-sub002/internal/rewards"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers collects every route handler the API exposes.
type Handlers struct {
	Auth    *auth.Handler
	Menu    *menu.Handler
	Hours   *hours.Handler
	Cart    *cart.Handler
	Order   *order.Handler
	Rewards *rewards.Handler
	Pricing *pricing.Handler
}

func New(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)

		protected := authGroup.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", h.Auth.Profile)
			protected.PUT("/profile", h.Auth.UpdateProfile)
		}
	}

	// ───────────────────────── PUBLIC ─────────────────────────
	r.GET("/menu", h.Menu.PublicMenu)
	r.GET("/menu/customizations", h.Menu.Customizations)
	r.GET("/hours", h.Hours.GetWeek)
	r.GET("/hours/slots", h.Hours.GetSlots)
	r.GET("/hours/holidays", h.Hours.GetHolidays)
	r.GET("/discounts", h.Pricing.ListDiscounts)

	// ───────────────────────── CUSTOMER ROUTES ─────────────────────────
	customer := r.Group("")
	customer.Use(middleware.AuthMiddleware())
	{
		customer.GET("/cart", h.Cart.Get)
		customer.PUT("/cart", h.Cart.Replace)
		customer.DELETE("/cart", h.Cart.Clear)

		customer.POST("/orders/checkout", h.Order.Checkout)
		customer.GET("/orders/history", h.Order.History)

		customer.GET("/rewards/account", h.Rewards.Account)
		customer.PUT("/rewards/birthday", h.Rewards.SetBirthday)
		customer.POST("/rewards/redeem", h.Rewards.RedeemPoints)
		customer.GET("/giftcards/:code", h.Rewards.GiftCardBalance)
	}

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		// Menu management
		admin.GET("/menu/items", h.Menu.AllItems)
		admin.POST("/menu/items", h.Menu.CreateItem)
		admin.PUT("/menu/items/:id", h.Menu.UpdateItem)
		admin.PATCH("/menu/items/:id/availability", h.Menu.SetAvailability)
		admin.POST("/menu/items/:id/photo", h.Menu.UploadPhoto)
		admin.POST("/menu/choices", h.Menu.CreateChoice)

		// Store hours
		admin.PUT("/hours", h.Hours.ReplaceWeek)
		admin.POST("/hours/holidays", h.Hours.AddHoliday)
		admin.DELETE("/hours/holidays/:id", h.Hours.RemoveHoliday)
		admin.POST("/hours/pause", h.Hours.PauseIntake)
		admin.POST("/hours/resume", h.Hours.ResumeIntake)

		// Discounts
		admin.POST("/discounts", h.Pricing.CreateDiscount)
		admin.DELETE("/discounts/:id", h.Pricing.DeactivateDiscount)

		// Orders
		admin.GET("/orders", h.Order.List)
		admin.PATCH("/orders/:id/status", h.Order.SetStatus)

		// Gift cards
		admin.POST("/giftcards", h.Rewards.IssueGiftCard)
	}

	return r
}
