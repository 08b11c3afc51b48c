package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if err := initSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// initSchema creates or updates the database schema
func initSchema(ctx context.Context, pool *pgxpool.Pool) error {

	// -------------------------------
	// STORE BRANDING
	// -------------------------------
	storesSQL := `
		CREATE TABLE IF NOT EXISTS stores (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			logo VARCHAR(500),
			theme JSONB NOT NULL DEFAULT '{}',
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, storesSQL); err != nil {
		return err
	}

	// -------------------------------
	// CATALOG
	// -------------------------------
	categoriesSQL := `
		CREATE TABLE IF NOT EXISTS categories (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			image VARCHAR(500),
			position INT NOT NULL DEFAULT 0
		)
	`
	if _, err := pool.Exec(ctx, categoriesSQL); err != nil {
		return err
	}

	productsSQL := `
		CREATE TABLE IF NOT EXISTS products (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC(10,2) NOT NULL,
			image VARCHAR(500),
			category_id VARCHAR(64) NOT NULL REFERENCES categories(id),
			customizations JSONB,
			popular BOOLEAN NOT NULL DEFAULT FALSE
		)
	`
	if _, err := pool.Exec(ctx, productsSQL); err != nil {
		return err
	}

	// -------------------------------
	// TABLES (QR CODES)
	// -------------------------------
	tablesSQL := `
		CREATE TABLE IF NOT EXISTS tables (
			id UUID PRIMARY KEY,
			number VARCHAR(32) UNIQUE NOT NULL,
			seats INT NOT NULL,
			location VARCHAR(255) NOT NULL DEFAULT '',
			qr_code_url VARCHAR(500),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, tablesSQL); err != nil {
		return err
	}

	// -------------------------------
	// ORDERS
	// -------------------------------
	ordersSQL := `
		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			table_number VARCHAR(32) NOT NULL DEFAULT '',
			items JSONB NOT NULL,
			subtotal NUMERIC(10,2) NOT NULL,
			tax NUMERIC(10,2) NOT NULL,
			total NUMERIC(10,2) NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'PLACED',
			card_last4 VARCHAR(4) NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, ordersSQL); err != nil {
		return err
	}

	return nil
}
