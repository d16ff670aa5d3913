package usecase

import (
	"context"
	"fmt"
	"time"

	"screening-booking/internal/data/entity"
	"screening-booking/internal/data/repository"
	"screening-booking/internal/dto/request"
	"screening-booking/internal/dto/response"
	"screening-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FilmService interface {
	CreateFilm(ctx context.Context, req *request.FilmRequest) (*response.FilmResponse, error)
	UpdateFilm(ctx context.Context, filmID string, req *request.FilmRequest) (*response.FilmResponse, error)
	GetFilmByID(ctx context.Context, filmID string) (*response.FilmResponse, error)
	GetFilms(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.FilmResponse], error)
	DeleteFilm(ctx context.Context, filmID string) error
}

type filmService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFilmService(repo *repository.Repository, log *zap.Logger) FilmService {
	return &filmService{
		repo: repo,
		log:  log.With(zap.String("service", "film")),
	}
}

func (s *filmService) CreateFilm(ctx context.Context, req *request.FilmRequest) (*response.FilmResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Film validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	film := &entity.Film{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:           req.Title,
		Genre:           req.Genre,
		DurationMinutes: req.DurationMinutes,
		Description:     req.Description,
	}

	if err := s.repo.Film.Create(ctx, film); err != nil {
		return nil, fmt.Errorf("create film: %w", err)
	}

	s.log.Info("Film created",
		zap.String("film_id", film.ID.String()),
		zap.String("title", film.Title),
	)

	resp := response.FilmToResponse(film)
	return &resp, nil
}

func (s *filmService) UpdateFilm(ctx context.Context, filmID string, req *request.FilmRequest) (*response.FilmResponse, error) {
	id, err := uuid.Parse(filmID)
	if err != nil {
		return nil, fmt.Errorf("invalid film ID format %s: %w", filmID, err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Film validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Film.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get film %s: %w", filmID, err)
	}
	if existing == nil {
		return nil, fmt.Errorf("film %s: %w", filmID, entity.ErrNotFound)
	}

	existing.Title = req.Title
	existing.Genre = req.Genre
	existing.DurationMinutes = req.DurationMinutes
	existing.Description = req.Description
	existing.UpdatedAt = time.Now()

	if err := s.repo.Film.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update film: %w", err)
	}

	s.log.Info("Film updated",
		zap.String("film_id", filmID),
		zap.String("title", existing.Title),
	)

	resp := response.FilmToResponse(existing)
	return &resp, nil
}

func (s *filmService) GetFilmByID(ctx context.Context, filmID string) (*response.FilmResponse, error) {
	id, err := uuid.Parse(filmID)
	if err != nil {
		return nil, fmt.Errorf("invalid film ID format %s: %w", filmID, err)
	}

	film, err := s.repo.Film.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get film %s: %w", filmID, err)
	}
	if film == nil {
		return nil, fmt.Errorf("film %s: %w", filmID, entity.ErrNotFound)
	}

	resp := response.FilmToResponse(film)
	return &resp, nil
}

func (s *filmService) GetFilms(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.FilmResponse], error) {
	films, err := s.repo.Film.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get films", zap.Error(err))
		return nil, fmt.Errorf("get films: %w", err)
	}

	total, err := s.repo.Film.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count films", zap.Error(err))
		return nil, fmt.Errorf("count films: %w", err)
	}

	filmResponses := make([]response.FilmResponse, len(films))
	for i, film := range films {
		filmResponses[i] = response.FilmToResponse(film)
	}

	return response.NewPaginatedResponse(filmResponses, req.Page, req.PerPage, total), nil
}

func (s *filmService) DeleteFilm(ctx context.Context, filmID string) error {
	id, err := uuid.Parse(filmID)
	if err != nil {
		return fmt.Errorf("invalid film ID format %s: %w", filmID, err)
	}

	film, err := s.repo.Film.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get film %s: %w", filmID, err)
	}
	if film == nil {
		return fmt.Errorf("film %s: %w", filmID, entity.ErrNotFound)
	}

	hasSchedules, err := s.repo.Consistency.FilmHasSchedules(ctx, id)
	if err != nil {
		return fmt.Errorf("check schedules for film %s: %w", filmID, err)
	}
	if hasSchedules {
		s.log.Warn("Film delete blocked by schedules", zap.String("film_id", filmID))
		return fmt.Errorf("film %s has schedules: %w", filmID, entity.ErrHasDependents)
	}

	if err := s.repo.Film.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete film: %w", err)
	}

	return nil
}
