package storage

import (
	"context"
	"database/sql"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users(
		user_id SERIAL PRIMARY KEY,
		public_id UUID UNIQUE NOT NULL,
		username VARCHAR(50) UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		is_admin BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS products(
		product_id SERIAL PRIMARY KEY,
		name VARCHAR(100) UNIQUE NOT NULL,
		price INTEGER NOT NULL,
		weight DOUBLE PRECISION NOT NULL,
		unit VARCHAR(3) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS product_stock(
		product_id INTEGER PRIMARY KEY REFERENCES products(product_id) ON DELETE CASCADE,
		quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS current_invoices(
		current_invoice_id SERIAL PRIMARY KEY,
		user_id INTEGER UNIQUE NOT NULL REFERENCES users(user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS current_invoice_products(
		entry_id SERIAL PRIMARY KEY,
		current_invoice_id INTEGER NOT NULL REFERENCES current_invoices(current_invoice_id) ON DELETE CASCADE,
		product_id INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS invoices(
		invoice_id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(user_id),
		confirmed_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS invoice_products(
		line_id SERIAL PRIMARY KEY,
		invoice_id INTEGER NOT NULL REFERENCES invoices(invoice_id),
		name VARCHAR(100) NOT NULL,
		price INTEGER NOT NULL,
		weight DOUBLE PRECISION NOT NULL,
		unit VARCHAR(3) NOT NULL,
		quantity INTEGER NOT NULL
	)`,
}

// EnsureSchema creates the tables the server needs if they do not exist yet.
// The UNIQUE constraint on current_invoices.user_id is what keeps concurrent
// first scans from ending up with two open carts for the same user.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}

	return nil
}
