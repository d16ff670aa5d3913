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

type AuditoriumRepository interface {
	Create(ctx context.Context, auditorium *entity.Auditorium) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Auditorium, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Auditorium, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, auditorium *entity.Auditorium) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type auditoriumRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAuditoriumRepository(db database.PgxIface, log *zap.Logger) AuditoriumRepository {
	return &auditoriumRepository{
		db:  db,
		log: log.With(zap.String("repository", "auditorium")),
	}
}

func (r *auditoriumRepository) Create(ctx context.Context, auditorium *entity.Auditorium) error {
	query := `
		INSERT INTO auditoriums (id, name, capacity, facilities, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		auditorium.ID,
		auditorium.Name,
		auditorium.Capacity,
		auditorium.Facilities,
		auditorium.CreatedAt,
		auditorium.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create auditorium",
			zap.Error(err),
			zap.String("name", auditorium.Name),
		)
		return fmt.Errorf("create auditorium %s: %w", auditorium.Name, err)
	}

	return nil
}

func (r *auditoriumRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Auditorium, error) {
	query := `
		SELECT id, name, capacity, facilities, created_at, updated_at
		FROM auditoriums
		WHERE id = $1
	`

	var auditorium entity.Auditorium
	err := r.db.QueryRow(ctx, query, id).Scan(
		&auditorium.ID,
		&auditorium.Name,
		&auditorium.Capacity,
		&auditorium.Facilities,
		&auditorium.CreatedAt,
		&auditorium.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find auditorium by ID",
			zap.Error(err),
			zap.String("auditorium_id", id.String()),
		)
		return nil, fmt.Errorf("find auditorium by ID %s: %w", id.String(), err)
	}

	return &auditorium, nil
}

func (r *auditoriumRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Auditorium, error) {
	query := `
		SELECT id, name, capacity, facilities, created_at, updated_at
		FROM auditoriums
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find auditoriums",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find auditoriums: %w", err)
	}
	defer rows.Close()

	var auditoriums []*entity.Auditorium
	for rows.Next() {
		var auditorium entity.Auditorium
		err := rows.Scan(
			&auditorium.ID,
			&auditorium.Name,
			&auditorium.Capacity,
			&auditorium.Facilities,
			&auditorium.CreatedAt,
			&auditorium.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan auditorium row", zap.Error(err))
			return nil, fmt.Errorf("scan auditorium row: %w", err)
		}
		auditoriums = append(auditoriums, &auditorium)
	}

	return auditoriums, nil
}

func (r *auditoriumRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM auditoriums`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count auditoriums", zap.Error(err))
		return 0, fmt.Errorf("count auditoriums: %w", err)
	}

	return count, nil
}

func (r *auditoriumRepository) Update(ctx context.Context, auditorium *entity.Auditorium) error {
	query := `
		UPDATE auditoriums
		SET name = $2, capacity = $3, facilities = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		auditorium.ID,
		auditorium.Name,
		auditorium.Capacity,
		auditorium.Facilities,
		auditorium.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update auditorium",
			zap.Error(err),
			zap.String("auditorium_id", auditorium.ID.String()),
		)
		return fmt.Errorf("update auditorium %s: %w", auditorium.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update auditorium %s: %w", auditorium.ID.String(), entity.ErrNotFound)
	}

	return nil
}

func (r *auditoriumRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM auditoriums WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("delete auditorium %s: %w", id.String(), entity.ErrHasDependents)
		}
		r.log.Error("Failed to delete auditorium",
			zap.Error(err),
			zap.String("auditorium_id", id.String()),
		)
		return fmt.Errorf("delete auditorium %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete auditorium %s: %w", id.String(), entity.ErrNotFound)
	}

	r.log.Info("Auditorium deleted", zap.String("auditorium_id", id.String()))
	return nil
}
