package repository

import (
	"context"
	"fmt"

	"screening-booking/internal/data/entity"
	"screening-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	// Create inserts a payment attempt. A successful payment rides the
	// partial unique index on (booking_id) WHERE status = 'success'; a
	// second success for the same booking yields entity.ErrAlreadyPaid.
	Create(ctx context.Context, payment *entity.Payment) error

	// Update rewrites a payment in place under the same uniqueness rule.
	// The index never conflicts with the row being updated, so the
	// exclusion of the payment's own id is implicit.
	Update(ctx context.Context, payment *entity.Payment) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Payment, error)
	CountAll(ctx context.Context) (int64, error)
	FindByAccountID(ctx context.Context, accountID uuid.UUID) ([]*entity.Payment, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, booking_id, account_id, amount, method, status, recorded_at, reference, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.BookingID,
		payment.AccountID,
		payment.Amount,
		payment.Method,
		payment.Status,
		payment.RecordedAt,
		payment.Reference,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err, "uq_payments_success") {
			r.log.Warn("Booking already paid",
				zap.String("booking_id", payment.BookingID.String()),
			)
			return fmt.Errorf("create payment for booking %s: %w",
				payment.BookingID.String(), entity.ErrAlreadyPaid)
		}
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("booking_id", payment.BookingID.String()),
		)
		return fmt.Errorf("create payment for booking %s: %w", payment.BookingID.String(), err)
	}

	return nil
}

func (r *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	query := `
		UPDATE payments
		SET booking_id = $2, account_id = $3, amount = $4, method = $5,
		    status = $6, reference = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.BookingID,
		payment.AccountID,
		payment.Amount,
		payment.Method,
		payment.Status,
		payment.Reference,
		payment.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err, "uq_payments_success") {
			r.log.Warn("Booking already paid on update",
				zap.String("payment_id", payment.ID.String()),
				zap.String("booking_id", payment.BookingID.String()),
			)
			return fmt.Errorf("update payment %s: %w", payment.ID.String(), entity.ErrAlreadyPaid)
		}
		r.log.Error("Failed to update payment",
			zap.Error(err),
			zap.String("payment_id", payment.ID.String()),
		)
		return fmt.Errorf("update payment %s: %w", payment.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update payment %s: %w", payment.ID.String(), entity.ErrNotFound)
	}

	return nil
}

func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	query := `
		SELECT id, booking_id, account_id, amount, method, status, recorded_at, reference, created_at, updated_at
		FROM payments
		WHERE id = $1
	`

	var payment entity.Payment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.AccountID,
		&payment.Amount,
		&payment.Method,
		&payment.Status,
		&payment.RecordedAt,
		&payment.Reference,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by ID",
			zap.Error(err),
			zap.String("payment_id", id.String()),
		)
		return nil, fmt.Errorf("find payment by ID %s: %w", id.String(), err)
	}

	return &payment, nil
}

func (r *paymentRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Payment, error) {
	query := `
		SELECT id, booking_id, account_id, amount, method, status, recorded_at, reference, created_at, updated_at
		FROM payments
		ORDER BY recorded_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find payments",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find payments: %w", err)
	}
	defer rows.Close()

	return scanPayments(rows, r.log)
}

func (r *paymentRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM payments`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count payments", zap.Error(err))
		return 0, fmt.Errorf("count payments: %w", err)
	}

	return count, nil
}

// FindByAccountID returns payments newest first; the ordering is part of
// the query contract.
func (r *paymentRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) ([]*entity.Payment, error) {
	query := `
		SELECT id, booking_id, account_id, amount, method, status, recorded_at, reference, created_at, updated_at
		FROM payments
		WHERE account_id = $1
		ORDER BY recorded_at DESC
	`

	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		r.log.Error("Failed to find payments by account ID",
			zap.Error(err),
			zap.String("account_id", accountID.String()),
		)
		return nil, fmt.Errorf("find payments by account ID %s: %w", accountID.String(), err)
	}
	defer rows.Close()

	return scanPayments(rows, r.log)
}

func (r *paymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error) {
	query := `
		SELECT id, booking_id, account_id, amount, method, status, recorded_at, reference, created_at, updated_at
		FROM payments
		WHERE booking_id = $1
		ORDER BY recorded_at DESC
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find payments by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find payments by booking ID %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	return scanPayments(rows, r.log)
}

func scanPayments(rows pgx.Rows, log *zap.Logger) ([]*entity.Payment, error) {
	var payments []*entity.Payment
	for rows.Next() {
		var payment entity.Payment
		err := rows.Scan(
			&payment.ID,
			&payment.BookingID,
			&payment.AccountID,
			&payment.Amount,
			&payment.Method,
			&payment.Status,
			&payment.RecordedAt,
			&payment.Reference,
			&payment.CreatedAt,
			&payment.UpdatedAt,
		)
		if err != nil {
			log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, &payment)
	}

	return payments, nil
}
