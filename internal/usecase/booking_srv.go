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

type BookingService interface {
	Reserve(ctx context.Context, req *request.ReserveSeatRequest) (*response.BookingDetailResponse, error)
	ChangeSeat(ctx context.Context, bookingID string, req *request.ChangeSeatRequest) (*response.BookingDetailResponse, error)
	CancelBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	ExpireBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error)
	GetBookings(ctx context.Context, req *request.PaginatedRequest, accountID, scheduleID *string) (*response.PaginatedResponse[response.BookingResponse], error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
		now:  time.Now,
	}
}

func (s *bookingService) Reserve(ctx context.Context, req *request.ReserveSeatRequest) (*response.BookingDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Reserve validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	scheduleID, err := uuid.Parse(req.ScheduleID)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule ID format %s: %w", req.ScheduleID, err)
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("invalid account ID format %s: %w", req.AccountID, err)
	}

	schedule, err := s.repo.Schedule.FindByID(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("resolve schedule: %w", err)
	}
	if schedule == nil {
		return nil, fmt.Errorf("schedule %s: %w", req.ScheduleID, entity.ErrReferenceNotFound)
	}

	account, err := s.repo.Account.FindByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("resolve account: %w", err)
	}
	if account == nil {
		return nil, fmt.Errorf("account %s: %w", req.AccountID, entity.ErrReferenceNotFound)
	}

	// Advisory read so an obviously taken seat fails before the write.
	// The partial unique index behind CreateActive is the authority when
	// two requests race past this check.
	free, err := s.repo.Consistency.SeatFree(ctx, scheduleID, req.SeatCode, nil)
	if err != nil {
		return nil, fmt.Errorf("check seat availability: %w", err)
	}
	if !free {
		return nil, fmt.Errorf("schedule %s seat %s: %w", req.ScheduleID, req.SeatCode, entity.ErrSeatTaken)
	}

	now := s.now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ScheduleID: scheduleID,
		AccountID:  accountID,
		SeatCode:   req.SeatCode,
		Status:     entity.BookingStatusActive,
		BookedAt:   now,
	}

	if err := s.repo.Booking.CreateActive(ctx, booking); err != nil {
		return nil, err
	}

	s.log.Info("Seat reserved",
		zap.String("booking_id", booking.ID.String()),
		zap.String("schedule_id", req.ScheduleID),
		zap.String("account_id", req.AccountID),
		zap.String("seat_code", req.SeatCode),
	)

	return s.buildBookingDetail(ctx, booking, schedule, account)
}

func (s *bookingService) ChangeSeat(ctx context.Context, bookingID string, req *request.ChangeSeatRequest) (*response.BookingDetailResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Change seat validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	scheduleID, err := uuid.Parse(req.ScheduleID)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule ID format %s: %w", req.ScheduleID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, entity.ErrNotFound)
	}
	if booking.Status.Terminal() {
		return nil, fmt.Errorf("booking %s is %s: %w", bookingID, booking.Status, entity.ErrBookingNotActive)
	}

	schedule, err := s.repo.Schedule.FindByID(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("resolve schedule: %w", err)
	}
	if schedule == nil {
		return nil, fmt.Errorf("schedule %s: %w", req.ScheduleID, entity.ErrReferenceNotFound)
	}

	// The booking keeps its row; the conflict scan must not count the row
	// itself when it already holds the destination slot.
	free, err := s.repo.Consistency.SeatFree(ctx, scheduleID, req.SeatCode, &id)
	if err != nil {
		return nil, fmt.Errorf("check seat availability: %w", err)
	}
	if !free {
		return nil, fmt.Errorf("schedule %s seat %s: %w", req.ScheduleID, req.SeatCode, entity.ErrSeatTaken)
	}

	if err := s.repo.Booking.MoveSlot(ctx, id, scheduleID, req.SeatCode); err != nil {
		return nil, err
	}

	booking.ScheduleID = scheduleID
	booking.SeatCode = req.SeatCode
	booking.UpdatedAt = s.now()

	s.log.Info("Booking moved",
		zap.String("booking_id", bookingID),
		zap.String("schedule_id", req.ScheduleID),
		zap.String("seat_code", req.SeatCode),
	)

	account, err := s.repo.Account.FindByID(ctx, booking.AccountID)
	if err != nil || account == nil {
		return nil, fmt.Errorf("resolve account for booking %s: %w", bookingID, entity.ErrReferenceNotFound)
	}

	return s.buildBookingDetail(ctx, booking, schedule, account)
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	return s.transition(ctx, bookingID, (*entity.Booking).Cancel)
}

func (s *bookingService) ExpireBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	return s.transition(ctx, bookingID, (*entity.Booking).Expire)
}

// transition applies a terminal status change. Repeating the call on an
// already terminal booking is a no-op, not an error.
func (s *bookingService) transition(ctx context.Context, bookingID string, next func(*entity.Booking) entity.BookingStatus) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, entity.ErrNotFound)
	}

	status := next(booking)
	if status != booking.Status {
		if err := s.repo.Booking.UpdateStatus(ctx, id, status); err != nil {
			return nil, err
		}
		booking.Status = status

		s.log.Info("Booking status changed",
			zap.String("booking_id", bookingID),
			zap.String("status", string(status)),
		)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, entity.ErrNotFound)
	}

	schedule, err := s.repo.Schedule.FindByID(ctx, booking.ScheduleID)
	if err != nil || schedule == nil {
		return nil, fmt.Errorf("resolve schedule for booking %s: %w", bookingID, entity.ErrReferenceNotFound)
	}

	account, err := s.repo.Account.FindByID(ctx, booking.AccountID)
	if err != nil || account == nil {
		return nil, fmt.Errorf("resolve account for booking %s: %w", bookingID, entity.ErrReferenceNotFound)
	}

	return s.buildBookingDetail(ctx, booking, schedule, account)
}

func (s *bookingService) GetBookings(ctx context.Context, req *request.PaginatedRequest, accountID, scheduleID *string) (*response.PaginatedResponse[response.BookingResponse], error) {
	var bookings []*entity.Booking
	var err error
	var total int64

	switch {
	case scheduleID != nil:
		id, parseErr := uuid.Parse(*scheduleID)
		if parseErr != nil {
			return nil, fmt.Errorf("invalid schedule ID format %s: %w", *scheduleID, parseErr)
		}
		bookings, err = s.repo.Booking.FindByScheduleID(ctx, id, req.Limit(), req.Offset())
		if err == nil {
			total, err = s.repo.Booking.CountByScheduleID(ctx, id)
		}
	case accountID != nil:
		id, parseErr := uuid.Parse(*accountID)
		if parseErr != nil {
			return nil, fmt.Errorf("invalid account ID format %s: %w", *accountID, parseErr)
		}
		bookings, err = s.repo.Booking.FindByAccountID(ctx, id, req.Limit(), req.Offset())
		if err == nil {
			total, err = s.repo.Booking.CountAll(ctx)
		}
	default:
		bookings, err = s.repo.Booking.FindAll(ctx, req.Limit(), req.Offset())
		if err == nil {
			total, err = s.repo.Booking.CountAll(ctx)
		}
	}
	if err != nil {
		s.log.Error("Failed to get bookings", zap.Error(err))
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (s *bookingService) buildBookingDetail(ctx context.Context, booking *entity.Booking, schedule *entity.Schedule, account *entity.Account) (*response.BookingDetailResponse, error) {
	film, err := s.repo.Film.FindByID(ctx, schedule.FilmID)
	if err != nil || film == nil {
		return nil, fmt.Errorf("resolve film for schedule %s: %w", schedule.ID.String(), entity.ErrReferenceNotFound)
	}

	auditorium, err := s.repo.Auditorium.FindByID(ctx, schedule.AuditoriumID)
	if err != nil || auditorium == nil {
		return nil, fmt.Errorf("resolve auditorium for schedule %s: %w", schedule.ID.String(), entity.ErrReferenceNotFound)
	}

	return &response.BookingDetailResponse{
		BookingResponse: response.BookingToResponse(booking),
		Schedule:        response.ScheduleToResponse(schedule),
		Film:            response.FilmToResponse(film),
		Auditorium:      response.AuditoriumToResponse(auditorium),
		Account:         response.AccountToResponse(account),
	}, nil
}
