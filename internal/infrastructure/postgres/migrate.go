package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is applied at startup and is idempotent. Orders, quotes and
// invoices are removed together with their customer (ON DELETE CASCADE);
// an invoice survives the deletion of its linked order with order_id NULL.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id          TEXT PRIMARY KEY,
		type        TEXT NOT NULL,
		name        TEXT NOT NULL,
		contact_name TEXT,
		email       TEXT,
		phone       TEXT,
		mobile      TEXT,
		street      TEXT,
		postal_code TEXT,
		city        TEXT,
		country     TEXT NOT NULL DEFAULT 'CH',
		notes       TEXT,
		status      TEXT NOT NULL DEFAULT 'ACTIVE',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id             TEXT PRIMARY KEY,
		customer_id    TEXT NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
		order_number   TEXT NOT NULL,
		title          TEXT NOT NULL,
		status         TEXT NOT NULL DEFAULT 'PLANNED',
		priority       TEXT NOT NULL DEFAULT 'NORMAL',
		start_date     TIMESTAMPTZ,
		end_date       TIMESTAMPTZ,
		deadline       TIMESTAMPTZ,
		estimated_cost NUMERIC(12,2),
		actual_cost    NUMERIC(12,2),
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS quotes (
		id           TEXT PRIMARY KEY,
		customer_id  TEXT NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
		quote_number TEXT NOT NULL,
		title        TEXT NOT NULL,
		status       TEXT NOT NULL DEFAULT 'DRAFT',
		issue_date   TIMESTAMPTZ NOT NULL,
		valid_until  TIMESTAMPTZ,
		total        NUMERIC(12,2) NOT NULL DEFAULT 0,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id             TEXT PRIMARY KEY,
		customer_id    TEXT NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
		order_id       TEXT REFERENCES orders(id) ON DELETE SET NULL,
		invoice_number TEXT NOT NULL,
		title          TEXT NOT NULL,
		status         TEXT NOT NULL DEFAULT 'DRAFT',
		issue_date     TIMESTAMPTZ NOT NULL,
		due_date       TIMESTAMPTZ,
		paid_date      TIMESTAMPTZ,
		total          NUMERIC(12,2) NOT NULL,
		paid_amount    NUMERIC(12,2),
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_customers_status_name ON customers (status, name)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders (customer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_quotes_customer ON quotes (customer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_customer ON invoices (customer_id)`,
}

// Migrate applies the schema statements in order.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
