package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// schemaStatements holds the idempotent DDL run at every boot, one
// statement batch per concern.
var schemaStatements = []string{
	// -------------------------------
	// USERS
	// -------------------------------
	`
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			phone VARCHAR(30) NOT NULL DEFAULT '',
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'CUSTOMER',
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)
	`,

	// -------------------------------
	// STORE HOURS
	// -------------------------------
	`
		CREATE TABLE IF NOT EXISTS operating_hours (
			day_of_week SMALLINT PRIMARY KEY,
			open_hour SMALLINT NOT NULL DEFAULT 0,
			open_minute SMALLINT NOT NULL DEFAULT 0,
			close_hour SMALLINT NOT NULL DEFAULT 0,
			close_minute SMALLINT NOT NULL DEFAULT 0,
			is_closed_all_day BOOLEAN NOT NULL DEFAULT FALSE
		);

		CREATE TABLE IF NOT EXISTS holidays (
			id UUID PRIMARY KEY,
			holiday_date DATE NOT NULL,
			is_recurring_annual BOOLEAN NOT NULL DEFAULT FALSE
		);

		CREATE TABLE IF NOT EXISTS store_settings (
			id SMALLINT PRIMARY KEY,
			minimum_pickup_time TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		);
	`,

	// -------------------------------
	// MENU
	// -------------------------------
	`
		CREATE TABLE IF NOT EXISTS menu_items (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category VARCHAR(100) NOT NULL,
			price BIGINT NOT NULL,
			available BOOLEAN NOT NULL DEFAULT TRUE,
			photo_url VARCHAR(500) NOT NULL DEFAULT '',
			list_order INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS customization_categories (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL
		);

		CREATE TABLE IF NOT EXISTS customization_choices (
			id UUID PRIMARY KEY,
			category_id UUID NOT NULL REFERENCES customization_categories(id),
			name VARCHAR(255) NOT NULL,
			price_adjustment BIGINT NOT NULL DEFAULT 0
		);
	`,

	// -------------------------------
	// DISCOUNTS
	// -------------------------------
	`
		CREATE TABLE IF NOT EXISTS discounts (
			id VARCHAR(100) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)
	`,

	// -------------------------------
	// CARTS
	// -------------------------------
	`
		CREATE TABLE IF NOT EXISTS carts (
			user_id UUID PRIMARY KEY,
			details JSONB NOT NULL,
			updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)
	`,

	// -------------------------------
	// ORDERS
	// -------------------------------
	`
		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			status VARCHAR(50) NOT NULL,
			is_asap BOOLEAN NOT NULL DEFAULT FALSE,
			pickup_at TIMESTAMPTZ NOT NULL,
			items JSONB NOT NULL,
			include_napkins_and_utensils BOOLEAN NOT NULL DEFAULT FALSE,
			subtotal BIGINT NOT NULL,
			tax BIGINT NOT NULL,
			tip BIGINT NOT NULL,
			total BIGINT NOT NULL,
			gift_card_applied BIGINT NOT NULL DEFAULT 0,
			amount_due BIGINT NOT NULL,
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_orders_user_id ON orders(user_id);
		CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status);
	`,

	// -------------------------------
	// REWARDS
	// -------------------------------
	`
		CREATE TABLE IF NOT EXISTS reward_accounts (
			user_id UUID PRIMARY KEY,
			points BIGINT NOT NULL DEFAULT 0,
			birthday_month SMALLINT NOT NULL DEFAULT 0,
			birthday_day SMALLINT NOT NULL DEFAULT 0,
			last_birthday_reward_year INT NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS gift_cards (
			code VARCHAR(64) PRIMARY KEY,
			balance BIGINT NOT NULL,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		);
	`,
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
