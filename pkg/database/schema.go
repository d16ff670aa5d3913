package database

import (
	"context"
	"fmt"
)

// The two partial unique indexes are the authority for the booking and
// payment invariants: at most one active booking per (schedule, seat)
// and at most one successful payment per booking. Application code
// translates violations into domain errors instead of pre-checking.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS films (
		id UUID PRIMARY KEY,
		title VARCHAR(200) NOT NULL,
		genre VARCHAR(100),
		duration_minutes INT NOT NULL CHECK (duration_minutes > 0),
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS auditoriums (
		id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		capacity INT NOT NULL CHECK (capacity BETWEEN 1 AND 1000),
		facilities TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS accounts (
		id UUID PRIMARY KEY,
		display_name VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		login_name VARCHAR(100) NOT NULL UNIQUE,
		secret_hash VARCHAR(255) NOT NULL,
		phone VARCHAR(30),
		role VARCHAR(20) NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS schedules (
		id UUID PRIMARY KEY,
		auditorium_id UUID NOT NULL REFERENCES auditoriums(id),
		film_id UUID NOT NULL REFERENCES films(id),
		show_time TIMESTAMPTZ NOT NULL,
		price NUMERIC(12,2) NOT NULL CHECK (price > 0),
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY,
		schedule_id UUID NOT NULL REFERENCES schedules(id),
		account_id UUID NOT NULL REFERENCES accounts(id),
		seat_code VARCHAR(10) NOT NULL,
		status VARCHAR(20) NOT NULL,
		booked_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_bookings_active_slot
		ON bookings (schedule_id, seat_code) WHERE status = 'active'`,
	`CREATE TABLE IF NOT EXISTS payments (
		id UUID PRIMARY KEY,
		booking_id UUID NOT NULL REFERENCES bookings(id),
		account_id UUID NOT NULL REFERENCES accounts(id),
		amount NUMERIC(12,2) NOT NULL CHECK (amount > 0),
		method VARCHAR(20) NOT NULL,
		status VARCHAR(20) NOT NULL,
		recorded_at TIMESTAMPTZ NOT NULL,
		reference VARCHAR(100),
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_payments_success
		ON payments (booking_id) WHERE status = 'success'`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_schedule ON bookings (schedule_id)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_account_recorded
		ON payments (account_id, recorded_at DESC)`,
}

// EnsureSchema applies the schema idempotently at startup.
func EnsureSchema(ctx context.Context, db PgxIface) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
