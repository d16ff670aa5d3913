package repository

import (
	"errors"

	"screening-booking/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Repository struct {
	Film        FilmRepository
	Auditorium  AuditoriumRepository
	Account     AccountRepository
	Schedule    ScheduleRepository
	Booking     BookingRepository
	Payment     PaymentRepository
	Consistency ConsistencyRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Film:        NewFilmRepository(db, log),
		Auditorium:  NewAuditoriumRepository(db, log),
		Account:     NewAccountRepository(db, log),
		Schedule:    NewScheduleRepository(db, log),
		Booking:     NewBookingRepository(db, log),
		Payment:     NewPaymentRepository(db, log),
		Consistency: NewConsistencyRepository(db, log),
	}
}

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// isUniqueViolation reports whether err is a unique constraint violation,
// optionally restricted to a named constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return constraint == "" || pgErr.ConstraintName == constraint
	}
	return false
}

// isForeignKeyViolation reports whether err is a foreign key violation,
// raised when a delete would orphan referencing rows.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}
