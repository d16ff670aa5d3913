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

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *entity.Schedule) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Schedule, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Schedule, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, schedule *entity.Schedule) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type scheduleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewScheduleRepository(db database.PgxIface, log *zap.Logger) ScheduleRepository {
	return &scheduleRepository{
		db:  db,
		log: log.With(zap.String("repository", "schedule")),
	}
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *entity.Schedule) error {
	query := `
		INSERT INTO schedules (id, auditorium_id, film_id, show_time, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		schedule.ID,
		schedule.AuditoriumID,
		schedule.FilmID,
		schedule.ShowTime,
		schedule.Price,
		schedule.CreatedAt,
		schedule.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create schedule",
			zap.Error(err),
			zap.String("film_id", schedule.FilmID.String()),
			zap.String("auditorium_id", schedule.AuditoriumID.String()),
			zap.Time("show_time", schedule.ShowTime),
		)
		return fmt.Errorf("create schedule for film %s auditorium %s: %w",
			schedule.FilmID.String(), schedule.AuditoriumID.String(), err)
	}

	return nil
}

func (r *scheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Schedule, error) {
	query := `
		SELECT id, auditorium_id, film_id, show_time, price, created_at, updated_at
		FROM schedules
		WHERE id = $1
	`

	var schedule entity.Schedule
	err := r.db.QueryRow(ctx, query, id).Scan(
		&schedule.ID,
		&schedule.AuditoriumID,
		&schedule.FilmID,
		&schedule.ShowTime,
		&schedule.Price,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find schedule by ID",
			zap.Error(err),
			zap.String("schedule_id", id.String()),
		)
		return nil, fmt.Errorf("find schedule by ID %s: %w", id.String(), err)
	}

	return &schedule, nil
}

func (r *scheduleRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Schedule, error) {
	query := `
		SELECT id, auditorium_id, film_id, show_time, price, created_at, updated_at
		FROM schedules
		ORDER BY show_time
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find schedules",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find schedules: %w", err)
	}
	defer rows.Close()

	var schedules []*entity.Schedule
	for rows.Next() {
		var schedule entity.Schedule
		err := rows.Scan(
			&schedule.ID,
			&schedule.AuditoriumID,
			&schedule.FilmID,
			&schedule.ShowTime,
			&schedule.Price,
			&schedule.CreatedAt,
			&schedule.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan schedule row", zap.Error(err))
			return nil, fmt.Errorf("scan schedule row: %w", err)
		}
		schedules = append(schedules, &schedule)
	}

	return schedules, nil
}

func (r *scheduleRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM schedules`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count schedules", zap.Error(err))
		return 0, fmt.Errorf("count schedules: %w", err)
	}

	return count, nil
}

func (r *scheduleRepository) Update(ctx context.Context, schedule *entity.Schedule) error {
	query := `
		UPDATE schedules
		SET auditorium_id = $2, film_id = $3, show_time = $4, price = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		schedule.ID,
		schedule.AuditoriumID,
		schedule.FilmID,
		schedule.ShowTime,
		schedule.Price,
		schedule.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update schedule",
			zap.Error(err),
			zap.String("schedule_id", schedule.ID.String()),
		)
		return fmt.Errorf("update schedule %s: %w", schedule.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update schedule %s: %w", schedule.ID.String(), entity.ErrNotFound)
	}

	return nil
}

func (r *scheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM schedules WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		// The bookings foreign key has no ON DELETE action; any booking
		// that slipped past the advisory check still blocks the delete.
		if isForeignKeyViolation(err) {
			return fmt.Errorf("delete schedule %s: %w", id.String(), entity.ErrHasDependents)
		}
		r.log.Error("Failed to delete schedule",
			zap.Error(err),
			zap.String("schedule_id", id.String()),
		)
		return fmt.Errorf("delete schedule %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete schedule %s: %w", id.String(), entity.ErrNotFound)
	}

	r.log.Info("Schedule deleted", zap.String("schedule_id", id.String()))
	return nil
}
