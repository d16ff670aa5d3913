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

type AuditoriumService interface {
	CreateAuditorium(ctx context.Context, req *request.AuditoriumRequest) (*response.AuditoriumResponse, error)
	UpdateAuditorium(ctx context.Context, auditoriumID string, req *request.AuditoriumRequest) (*response.AuditoriumResponse, error)
	GetAuditoriumByID(ctx context.Context, auditoriumID string) (*response.AuditoriumResponse, error)
	GetAuditoriums(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.AuditoriumResponse], error)
	DeleteAuditorium(ctx context.Context, auditoriumID string) error
}

type auditoriumService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAuditoriumService(repo *repository.Repository, log *zap.Logger) AuditoriumService {
	return &auditoriumService{
		repo: repo,
		log:  log.With(zap.String("service", "auditorium")),
	}
}

func (s *auditoriumService) CreateAuditorium(ctx context.Context, req *request.AuditoriumRequest) (*response.AuditoriumResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Auditorium validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	auditorium := &entity.Auditorium{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:       req.Name,
		Capacity:   req.Capacity,
		Facilities: req.Facilities,
	}

	if err := s.repo.Auditorium.Create(ctx, auditorium); err != nil {
		return nil, fmt.Errorf("create auditorium: %w", err)
	}

	s.log.Info("Auditorium created",
		zap.String("auditorium_id", auditorium.ID.String()),
		zap.String("name", auditorium.Name),
		zap.Int("capacity", auditorium.Capacity),
	)

	resp := response.AuditoriumToResponse(auditorium)
	return &resp, nil
}

func (s *auditoriumService) UpdateAuditorium(ctx context.Context, auditoriumID string, req *request.AuditoriumRequest) (*response.AuditoriumResponse, error) {
	id, err := uuid.Parse(auditoriumID)
	if err != nil {
		return nil, fmt.Errorf("invalid auditorium ID format %s: %w", auditoriumID, err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Auditorium validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Auditorium.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get auditorium %s: %w", auditoriumID, err)
	}
	if existing == nil {
		return nil, fmt.Errorf("auditorium %s: %w", auditoriumID, entity.ErrNotFound)
	}

	existing.Name = req.Name
	existing.Capacity = req.Capacity
	existing.Facilities = req.Facilities
	existing.UpdatedAt = time.Now()

	if err := s.repo.Auditorium.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update auditorium: %w", err)
	}

	s.log.Info("Auditorium updated",
		zap.String("auditorium_id", auditoriumID),
		zap.String("name", existing.Name),
	)

	resp := response.AuditoriumToResponse(existing)
	return &resp, nil
}

func (s *auditoriumService) GetAuditoriumByID(ctx context.Context, auditoriumID string) (*response.AuditoriumResponse, error) {
	id, err := uuid.Parse(auditoriumID)
	if err != nil {
		return nil, fmt.Errorf("invalid auditorium ID format %s: %w", auditoriumID, err)
	}

	auditorium, err := s.repo.Auditorium.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get auditorium %s: %w", auditoriumID, err)
	}
	if auditorium == nil {
		return nil, fmt.Errorf("auditorium %s: %w", auditoriumID, entity.ErrNotFound)
	}

	resp := response.AuditoriumToResponse(auditorium)
	return &resp, nil
}

func (s *auditoriumService) GetAuditoriums(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.AuditoriumResponse], error) {
	auditoriums, err := s.repo.Auditorium.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get auditoriums", zap.Error(err))
		return nil, fmt.Errorf("get auditoriums: %w", err)
	}

	total, err := s.repo.Auditorium.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count auditoriums", zap.Error(err))
		return nil, fmt.Errorf("count auditoriums: %w", err)
	}

	auditoriumResponses := make([]response.AuditoriumResponse, len(auditoriums))
	for i, auditorium := range auditoriums {
		auditoriumResponses[i] = response.AuditoriumToResponse(auditorium)
	}

	return response.NewPaginatedResponse(auditoriumResponses, req.Page, req.PerPage, total), nil
}

func (s *auditoriumService) DeleteAuditorium(ctx context.Context, auditoriumID string) error {
	id, err := uuid.Parse(auditoriumID)
	if err != nil {
		return fmt.Errorf("invalid auditorium ID format %s: %w", auditoriumID, err)
	}

	auditorium, err := s.repo.Auditorium.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get auditorium %s: %w", auditoriumID, err)
	}
	if auditorium == nil {
		return fmt.Errorf("auditorium %s: %w", auditoriumID, entity.ErrNotFound)
	}

	hasSchedules, err := s.repo.Consistency.AuditoriumHasSchedules(ctx, id)
	if err != nil {
		return fmt.Errorf("check schedules for auditorium %s: %w", auditoriumID, err)
	}
	if hasSchedules {
		s.log.Warn("Auditorium delete blocked by schedules", zap.String("auditorium_id", auditoriumID))
		return fmt.Errorf("auditorium %s has schedules: %w", auditoriumID, entity.ErrHasDependents)
	}

	if err := s.repo.Auditorium.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete auditorium: %w", err)
	}

	return nil
}
