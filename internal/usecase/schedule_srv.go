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

type ScheduleService interface {
	CreateSchedule(ctx context.Context, req *request.ScheduleRequest) (*response.ScheduleDetailResponse, error)
	UpdateSchedule(ctx context.Context, scheduleID string, req *request.ScheduleRequest) (*response.ScheduleDetailResponse, error)
	GetScheduleByID(ctx context.Context, scheduleID string) (*response.ScheduleDetailResponse, error)
	GetSchedules(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ScheduleDetailResponse], error)
	DeleteSchedule(ctx context.Context, scheduleID string) error
}

type scheduleService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewScheduleService(repo *repository.Repository, log *zap.Logger) ScheduleService {
	return &scheduleService{
		repo: repo,
		log:  log.With(zap.String("service", "schedule")),
		now:  time.Now,
	}
}

// resolveReferences fetches the film and auditorium a schedule points at,
// so create/update validate existence and the response carries a snapshot
// read at the same instant.
func (s *scheduleService) resolveReferences(ctx context.Context, auditoriumID, filmID uuid.UUID) (*entity.Auditorium, *entity.Film, error) {
	auditorium, err := s.repo.Auditorium.FindByID(ctx, auditoriumID)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve auditorium: %w", err)
	}
	if auditorium == nil {
		return nil, nil, fmt.Errorf("auditorium %s: %w", auditoriumID.String(), entity.ErrReferenceNotFound)
	}

	film, err := s.repo.Film.FindByID(ctx, filmID)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve film: %w", err)
	}
	if film == nil {
		return nil, nil, fmt.Errorf("film %s: %w", filmID.String(), entity.ErrReferenceNotFound)
	}

	return auditorium, film, nil
}

func (s *scheduleService) validateRequest(req *request.ScheduleRequest) (uuid.UUID, uuid.UUID, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Schedule validation failed", zap.Any("errors", errs))
		return uuid.Nil, uuid.Nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	auditoriumID, err := uuid.Parse(req.AuditoriumID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid auditorium ID format %s: %w", req.AuditoriumID, err)
	}

	filmID, err := uuid.Parse(req.FilmID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid film ID format %s: %w", req.FilmID, err)
	}

	if req.Price <= 0 {
		return uuid.Nil, uuid.Nil, fmt.Errorf("price %.2f: %w", req.Price, entity.ErrInvalidAmount)
	}

	if !req.ShowTime.After(s.now()) {
		return uuid.Nil, uuid.Nil, fmt.Errorf("show time %s: %w",
			req.ShowTime.Format(time.RFC3339), entity.ErrShowTimeInPast)
	}

	return auditoriumID, filmID, nil
}

func (s *scheduleService) CreateSchedule(ctx context.Context, req *request.ScheduleRequest) (*response.ScheduleDetailResponse, error) {
	auditoriumID, filmID, err := s.validateRequest(req)
	if err != nil {
		return nil, err
	}

	auditorium, film, err := s.resolveReferences(ctx, auditoriumID, filmID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	schedule := &entity.Schedule{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		AuditoriumID: auditoriumID,
		FilmID:       filmID,
		ShowTime:     req.ShowTime,
		Price:        req.Price,
	}

	if err := s.repo.Schedule.Create(ctx, schedule); err != nil {
		s.log.Error("Failed to create schedule",
			zap.Error(err),
			zap.String("film_id", req.FilmID),
			zap.String("auditorium_id", req.AuditoriumID),
		)
		return nil, fmt.Errorf("create schedule: %w", err)
	}

	s.log.Info("Schedule created",
		zap.String("schedule_id", schedule.ID.String()),
		zap.String("film", film.Title),
		zap.String("auditorium", auditorium.Name),
		zap.Time("show_time", schedule.ShowTime),
		zap.Float64("price", schedule.Price),
	)

	return buildScheduleDetail(schedule, film, auditorium), nil
}

func (s *scheduleService) UpdateSchedule(ctx context.Context, scheduleID string, req *request.ScheduleRequest) (*response.ScheduleDetailResponse, error) {
	id, err := uuid.Parse(scheduleID)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule ID format %s: %w", scheduleID, err)
	}

	auditoriumID, filmID, err := s.validateRequest(req)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.Schedule.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get schedule %s: %w", scheduleID, err)
	}
	if existing == nil {
		return nil, fmt.Errorf("schedule %s: %w", scheduleID, entity.ErrNotFound)
	}

	auditorium, film, err := s.resolveReferences(ctx, auditoriumID, filmID)
	if err != nil {
		return nil, err
	}

	// Wholesale replacement: auditorium, film, show time and price move
	// together, no partial update.
	existing.AuditoriumID = auditoriumID
	existing.FilmID = filmID
	existing.ShowTime = req.ShowTime
	existing.Price = req.Price
	existing.UpdatedAt = s.now()

	if err := s.repo.Schedule.Update(ctx, existing); err != nil {
		s.log.Error("Failed to update schedule",
			zap.Error(err),
			zap.String("schedule_id", scheduleID),
		)
		return nil, fmt.Errorf("update schedule: %w", err)
	}

	s.log.Info("Schedule updated",
		zap.String("schedule_id", scheduleID),
		zap.Time("show_time", existing.ShowTime),
	)

	return buildScheduleDetail(existing, film, auditorium), nil
}

func (s *scheduleService) GetScheduleByID(ctx context.Context, scheduleID string) (*response.ScheduleDetailResponse, error) {
	id, err := uuid.Parse(scheduleID)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule ID format %s: %w", scheduleID, err)
	}

	schedule, err := s.repo.Schedule.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get schedule %s: %w", scheduleID, err)
	}
	if schedule == nil {
		return nil, fmt.Errorf("schedule %s: %w", scheduleID, entity.ErrNotFound)
	}

	auditorium, film, err := s.resolveReferences(ctx, schedule.AuditoriumID, schedule.FilmID)
	if err != nil {
		return nil, err
	}

	return buildScheduleDetail(schedule, film, auditorium), nil
}

func (s *scheduleService) GetSchedules(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ScheduleDetailResponse], error) {
	schedules, err := s.repo.Schedule.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get schedules", zap.Error(err))
		return nil, fmt.Errorf("get schedules: %w", err)
	}

	total, err := s.repo.Schedule.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count schedules", zap.Error(err))
		return nil, fmt.Errorf("count schedules: %w", err)
	}

	details := make([]response.ScheduleDetailResponse, 0, len(schedules))
	for _, schedule := range schedules {
		auditorium, film, err := s.resolveReferences(ctx, schedule.AuditoriumID, schedule.FilmID)
		if err != nil {
			s.log.Warn("Skipping schedule with unresolved references",
				zap.Error(err),
				zap.String("schedule_id", schedule.ID.String()),
			)
			continue
		}
		details = append(details, *buildScheduleDetail(schedule, film, auditorium))
	}

	return response.NewPaginatedResponse(details, req.Page, req.PerPage, total), nil
}

func (s *scheduleService) DeleteSchedule(ctx context.Context, scheduleID string) error {
	id, err := uuid.Parse(scheduleID)
	if err != nil {
		return fmt.Errorf("invalid schedule ID format %s: %w", scheduleID, err)
	}

	schedule, err := s.repo.Schedule.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get schedule %s: %w", scheduleID, err)
	}
	if schedule == nil {
		return fmt.Errorf("schedule %s: %w", scheduleID, entity.ErrNotFound)
	}

	// Any referencing booking, cancelled included, anchors payment
	// history to the schedule; the delete is rejected, never cascaded.
	// The foreign key from bookings enforces the same rule in the store.
	hasBookings, err := s.repo.Consistency.ScheduleHasBookings(ctx, id)
	if err != nil {
		return fmt.Errorf("check bookings for schedule %s: %w", scheduleID, err)
	}
	if hasBookings {
		s.log.Warn("Schedule delete blocked by bookings",
			zap.String("schedule_id", scheduleID),
		)
		return fmt.Errorf("schedule %s has bookings: %w", scheduleID, entity.ErrHasDependents)
	}

	if err := s.repo.Schedule.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}

	return nil
}

func buildScheduleDetail(schedule *entity.Schedule, film *entity.Film, auditorium *entity.Auditorium) *response.ScheduleDetailResponse {
	return &response.ScheduleDetailResponse{
		ScheduleResponse: response.ScheduleToResponse(schedule),
		Film:             response.FilmToResponse(film),
		Auditorium:       response.AuditoriumToResponse(auditorium),
	}
}
