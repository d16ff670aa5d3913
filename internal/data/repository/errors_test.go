package repository

import (
	"context"
	"testing"

	"screening-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// errDB fails every call with a fixed error, for exercising the
// constraint-violation translation paths.
type errDB struct{ err error }

func (d *errDB) Query(context.Context, string, ...any) (pgx.Rows, error) { return nil, d.err }
func (d *errDB) QueryRow(context.Context, string, ...any) pgx.Row        { return nil }
func (d *errDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, d.err
}
func (d *errDB) Begin(context.Context) (pgx.Tx, error) { return nil, d.err }
func (d *errDB) Ping(context.Context) error            { return d.err }
func (d *errDB) Close()                                {}

func pgError(code, constraint string) *pgconn.PgError {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func TestScheduleDeleteTranslatesForeignKeyViolation(t *testing.T) {
	db := &errDB{err: pgError("23503", "bookings_schedule_id_fkey")}
	repo := NewScheduleRepository(db, zap.NewNop())

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, entity.ErrHasDependents)
}

func TestFilmDeleteTranslatesForeignKeyViolation(t *testing.T) {
	db := &errDB{err: pgError("23503", "schedules_film_id_fkey")}
	repo := NewFilmRepository(db, zap.NewNop())

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, entity.ErrHasDependents)
}

func TestAuditoriumDeleteTranslatesForeignKeyViolation(t *testing.T) {
	db := &errDB{err: pgError("23503", "schedules_auditorium_id_fkey")}
	repo := NewAuditoriumRepository(db, zap.NewNop())

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, entity.ErrHasDependents)
}

func TestMoveSlotTranslatesUniqueViolation(t *testing.T) {
	db := &errDB{err: pgError("23505", "uq_bookings_active_slot")}
	repo := NewBookingRepository(db, zap.NewNop())

	err := repo.MoveSlot(context.Background(), uuid.New(), uuid.New(), "A1")
	assert.ErrorIs(t, err, entity.ErrSeatTaken)
}

func TestPaymentCreateTranslatesUniqueViolation(t *testing.T) {
	db := &errDB{err: pgError("23505", "uq_payments_success")}
	repo := NewPaymentRepository(db, zap.NewNop())

	err := repo.Create(context.Background(), &entity.Payment{
		Base:      entity.Base{ID: uuid.New()},
		BookingID: uuid.New(),
		AccountID: uuid.New(),
		Amount:    50000,
		Method:    entity.PaymentMethodCard,
		Status:    entity.PaymentStatusSuccess,
	})
	assert.ErrorIs(t, err, entity.ErrAlreadyPaid)
}

func TestUnrelatedUniqueViolationPassesThrough(t *testing.T) {
	db := &errDB{err: pgError("23505", "accounts_email_key")}
	repo := NewPaymentRepository(db, zap.NewNop())

	err := repo.Create(context.Background(), &entity.Payment{
		Base:   entity.Base{ID: uuid.New()},
		Status: entity.PaymentStatusPending,
	})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, entity.ErrAlreadyPaid)
}
