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

type BookingRepository interface {
	// CreateActive inserts an active booking. The partial unique index on
	// (schedule_id, seat_code) WHERE status = 'active' makes the
	// availability check and the insert a single atomic step; a conflicting
	// active booking yields entity.ErrSeatTaken and no state change.
	CreateActive(ctx context.Context, booking *entity.Booking) error

	// MoveSlot rewrites schedule/seat on an existing booking row. The same
	// index guards the destination slot while naturally excluding the
	// booking's own row from the conflict scan.
	MoveSlot(ctx context.Context, id, scheduleID uuid.UUID, seatCode string) error

	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error)
	CountAll(ctx context.Context) (int64, error)
	FindByAccountID(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	FindByScheduleID(ctx context.Context, scheduleID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByScheduleID(ctx context.Context, scheduleID uuid.UUID) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) CreateActive(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, schedule_id, account_id, seat_code, status, booked_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'active', $5, $6, $7)
		ON CONFLICT (schedule_id, seat_code) WHERE status = 'active' DO NOTHING
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.ScheduleID,
		booking.AccountID,
		booking.SeatCode,
		booking.BookedAt,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("schedule_id", booking.ScheduleID.String()),
			zap.String("seat_code", booking.SeatCode),
		)
		return fmt.Errorf("create booking for schedule %s seat %s: %w",
			booking.ScheduleID.String(), booking.SeatCode, err)
	}

	if result.RowsAffected() == 0 {
		r.log.Warn("Seat already booked",
			zap.String("schedule_id", booking.ScheduleID.String()),
			zap.String("seat_code", booking.SeatCode),
		)
		return fmt.Errorf("create booking for schedule %s seat %s: %w",
			booking.ScheduleID.String(), booking.SeatCode, entity.ErrSeatTaken)
	}

	return nil
}

func (r *bookingRepository) MoveSlot(ctx context.Context, id, scheduleID uuid.UUID, seatCode string) error {
	query := `
		UPDATE bookings
		SET schedule_id = $2, seat_code = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, scheduleID, seatCode)
	if err != nil {
		if isUniqueViolation(err, "uq_bookings_active_slot") {
			r.log.Warn("Seat already booked on move",
				zap.String("booking_id", id.String()),
				zap.String("schedule_id", scheduleID.String()),
				zap.String("seat_code", seatCode),
			)
			return fmt.Errorf("move booking %s to schedule %s seat %s: %w",
				id.String(), scheduleID.String(), seatCode, entity.ErrSeatTaken)
		}
		r.log.Error("Failed to move booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("move booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("move booking %s: %w", id.String(), entity.ErrNotFound)
	}

	return nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update booking %s status: %w", id.String(), entity.ErrNotFound)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, schedule_id, account_id, seat_code, status, booked_at, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.ScheduleID,
		&booking.AccountID,
		&booking.SeatCode,
		&booking.Status,
		&booking.BookedAt,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT id, schedule_id, account_id, seat_code, status, booked_at, created_at, updated_at
		FROM bookings
		ORDER BY booked_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows, r.log)
}

func (r *bookingRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT id, schedule_id, account_id, seat_code, status, booked_at, created_at, updated_at
		FROM bookings
		WHERE account_id = $1
		ORDER BY booked_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by account ID",
			zap.Error(err),
			zap.String("account_id", accountID.String()),
		)
		return nil, fmt.Errorf("find bookings by account ID %s: %w", accountID.String(), err)
	}
	defer rows.Close()

	return scanBookings(rows, r.log)
}

func (r *bookingRepository) FindByScheduleID(ctx context.Context, scheduleID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT id, schedule_id, account_id, seat_code, status, booked_at, created_at, updated_at
		FROM bookings
		WHERE schedule_id = $1
		ORDER BY booked_at
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, scheduleID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by schedule ID",
			zap.Error(err),
			zap.String("schedule_id", scheduleID.String()),
		)
		return nil, fmt.Errorf("find bookings by schedule ID %s: %w", scheduleID.String(), err)
	}
	defer rows.Close()

	return scanBookings(rows, r.log)
}

func (r *bookingRepository) CountByScheduleID(ctx context.Context, scheduleID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE schedule_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, scheduleID).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings by schedule ID",
			zap.Error(err),
			zap.String("schedule_id", scheduleID.String()),
		)
		return 0, fmt.Errorf("count bookings by schedule ID %s: %w", scheduleID.String(), err)
	}

	return count, nil
}

func scanBookings(rows pgx.Rows, log *zap.Logger) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.ScheduleID,
			&booking.AccountID,
			&booking.SeatCode,
			&booking.Status,
			&booking.BookedAt,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}
