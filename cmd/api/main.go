package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/khues-restaurant/khues-restaurant-sub002/internal/auth"
	"github.com/khues-restaurant/khues-restaurant-sub002/internal/cart"
	"github.com/khues-restaurant/khues-restaurant-sub002/internal/db"
	"github.com/khues-restaurant/khues-restaurant-sub002/internal/hours"
	"github.com/khues-restaurant/khues-restaurant-sub002/internal/menu"
	"github.com/khues-restaurant/khues-restaurant-sub002/internal/notify"
	"github.com/khues-restaurant/khues-restaurant-sub002/internal/order"
	"github.com/khues-restaurant/khues-restaurant-sub002/internal/pricing"
	"github.com/khues-restaurant/khues-restaurant-sub002/internal/rewards"
	"github.com/khues-restaurant/khues-restaurant-sub002/internal/router"
	"github.com/khues-restaurant/khues-restaurant-sub002/internal/storage"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── EVENTS ─────────────────────────
	// Optional: without a broker the publisher is nil and every
	// broadcast becomes a no-op.
	var publisher *notify.Publisher
	if url := os.Getenv("AMQP_URL"); url != "" {
		publisher, err = notify.Dial(url)
		if err != nil {
			log.Fatal("❌ AMQP init failed:", err)
		}
		defer publisher.Close()
	} else {
		log.Println("AMQP_URL not set, order events disabled")
	}

	// ───────────────────────── PRICING CONFIG ─────────────────────────
	pricingCfg := pricing.DefaultConfig()
	if raw := os.Getenv("PRICING_TAX_RATE_MILLI"); raw != "" {
		rate, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || rate < 0 {
			log.Fatalf("❌ Invalid PRICING_TAX_RATE_MILLI: %s", raw)
		}
		pricingCfg.TaxRateMilliPercent = rate
	}

	// ───────────────────────── CORE REPOS ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	menuRepo := menu.NewPostgresRepository(pgDB)
	hoursRepo := hours.NewPostgresRepository(pgDB)
	cartRepo := cart.NewPostgresRepository(pgDB)
	orderRepo := order.NewPostgresRepository(pgDB)
	rewardsRepo := rewards.NewPostgresRepository(pgDB)
	discountRepo := pricing.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES (ORDER MATTERS) ─────────────────────────
	authService := auth.NewService(userRepo)
	menuService := menu.NewService(menuRepo, r2Client)
	hoursService := hours.NewService(hoursRepo)
	cartService := cart.NewService(cartRepo)
	rewardsService := rewards.NewService(rewardsRepo)

	orderService := order.NewService(
		orderRepo,
		hoursService,
		menuService,
		discountRepo,
		cartService,
		rewardsService,
		publisher,
		pricingCfg,
	)

	// ───────────────────────── HANDLERS ─────────────────────────
	r := router.New(router.Handlers{
		Auth:    auth.NewHandler(authService),
		Menu:    menu.NewHandler(menuService),
		Hours:   hours.NewHandler(hoursService),
		Cart:    cart.NewHandler(cartService),
		Order:   order.NewHandler(orderService),
		Rewards: rewards.NewHandler(rewardsService),
		Pricing: pricing.NewHandler(discountRepo),
	})

	// ───────────────────────── WORKERS ─────────────────────────
	go hoursService.RunMidnightReset(context.Background())

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
