package repository

import (
	"context"
	"fmt"

	"screening-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EntityKind names the tables the existence predicate may touch.
type EntityKind string

const (
	KindFilm       EntityKind = "films"
	KindAuditorium EntityKind = "auditoriums"
	KindAccount    EntityKind = "accounts"
	KindSchedule   EntityKind = "schedules"
	KindBooking    EntityKind = "bookings"
	KindPayment    EntityKind = "payments"
)

var kindTables = map[EntityKind]string{
	KindFilm:       "films",
	KindAuditorium: "auditoriums",
	KindAccount:    "accounts",
	KindSchedule:   "schedules",
	KindBooking:    "bookings",
	KindPayment:    "payments",
}

// ConsistencyRepository holds the cross-entity predicates shared by the
// booking and payment services so both observe identical rules. The
// partial unique indexes remain the authority under concurrency; these
// reads serve advisory checks and delete policies.
type ConsistencyRepository interface {
	Exists(ctx context.Context, kind EntityKind, id uuid.UUID) (bool, error)
	SeatFree(ctx context.Context, scheduleID uuid.UUID, seatCode string, excludeBookingID *uuid.UUID) (bool, error)
	NoSuccessfulPayment(ctx context.Context, bookingID uuid.UUID, excludePaymentID *uuid.UUID) (bool, error)
	ScheduleHasBookings(ctx context.Context, scheduleID uuid.UUID) (bool, error)
	FilmHasSchedules(ctx context.Context, filmID uuid.UUID) (bool, error)
	AuditoriumHasSchedules(ctx context.Context, auditoriumID uuid.UUID) (bool, error)
}

type consistencyRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewConsistencyRepository(db database.PgxIface, log *zap.Logger) ConsistencyRepository {
	return &consistencyRepository{
		db:  db,
		log: log.With(zap.String("repository", "consistency")),
	}
}

func (r *consistencyRepository) Exists(ctx context.Context, kind EntityKind, id uuid.UUID) (bool, error) {
	table, ok := kindTables[kind]
	if !ok {
		return false, fmt.Errorf("unknown entity kind %q", kind)
	}

	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, table)

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.log.Error("Failed existence check",
			zap.Error(err),
			zap.String("kind", string(kind)),
			zap.String("id", id.String()),
		)
		return false, fmt.Errorf("check %s %s exists: %w", kind, id.String(), err)
	}

	return exists, nil
}

func (r *consistencyRepository) SeatFree(ctx context.Context, scheduleID uuid.UUID, seatCode string, excludeBookingID *uuid.UUID) (bool, error) {
	query := `
		SELECT NOT EXISTS (
			SELECT 1 FROM bookings
			WHERE schedule_id = $1 AND seat_code = $2 AND status = 'active'
			  AND ($3::uuid IS NULL OR id <> $3)
		)
	`

	var free bool
	if err := r.db.QueryRow(ctx, query, scheduleID, seatCode, excludeBookingID).Scan(&free); err != nil {
		r.log.Error("Failed seat availability check",
			zap.Error(err),
			zap.String("schedule_id", scheduleID.String()),
			zap.String("seat_code", seatCode),
		)
		return false, fmt.Errorf("check seat %s free for schedule %s: %w", seatCode, scheduleID.String(), err)
	}

	return free, nil
}

func (r *consistencyRepository) NoSuccessfulPayment(ctx context.Context, bookingID uuid.UUID, excludePaymentID *uuid.UUID) (bool, error) {
	query := `
		SELECT NOT EXISTS (
			SELECT 1 FROM payments
			WHERE booking_id = $1 AND status = 'success'
			  AND ($2::uuid IS NULL OR id <> $2)
		)
	`

	var none bool
	if err := r.db.QueryRow(ctx, query, bookingID, excludePaymentID).Scan(&none); err != nil {
		r.log.Error("Failed successful payment check",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return false, fmt.Errorf("check successful payment for booking %s: %w", bookingID.String(), err)
	}

	return none, nil
}

// ScheduleHasBookings counts bookings in any status, matching the
// foreign key from bookings: even a cancelled booking keeps its payment
// history anchored to the schedule, so the delete stays blocked.
func (r *consistencyRepository) ScheduleHasBookings(ctx context.Context, scheduleID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE schedule_id = $1
		)
	`

	var has bool
	if err := r.db.QueryRow(ctx, query, scheduleID).Scan(&has); err != nil {
		r.log.Error("Failed schedule dependents check",
			zap.Error(err),
			zap.String("schedule_id", scheduleID.String()),
		)
		return false, fmt.Errorf("check bookings for schedule %s: %w", scheduleID.String(), err)
	}

	return has, nil
}

func (r *consistencyRepository) FilmHasSchedules(ctx context.Context, filmID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM schedules WHERE film_id = $1)`

	var has bool
	if err := r.db.QueryRow(ctx, query, filmID).Scan(&has); err != nil {
		r.log.Error("Failed film dependents check",
			zap.Error(err),
			zap.String("film_id", filmID.String()),
		)
		return false, fmt.Errorf("check schedules for film %s: %w", filmID.String(), err)
	}

	return has, nil
}

func (r *consistencyRepository) AuditoriumHasSchedules(ctx context.Context, auditoriumID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM schedules WHERE auditorium_id = $1)`

	var has bool
	if err := r.db.QueryRow(ctx, query, auditoriumID).Scan(&has); err != nil {
		r.log.Error("Failed auditorium dependents check",
			zap.Error(err),
			zap.String("auditorium_id", auditoriumID.String()),
		)
		return false, fmt.Errorf("check schedules for auditorium %s: %w", auditoriumID.String(), err)
	}

	return has, nil
}
