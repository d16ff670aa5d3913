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

type PaymentService interface {
	RecordPayment(ctx context.Context, req *request.PaymentRequest) (*response.PaymentDetailResponse, error)
	UpdatePayment(ctx context.Context, paymentID string, req *request.PaymentRequest) (*response.PaymentDetailResponse, error)
	GetPaymentByID(ctx context.Context, paymentID string) (*response.PaymentDetailResponse, error)
	GetPayments(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PaymentResponse], error)
	GetPaymentsByAccount(ctx context.Context, accountID string) ([]response.PaymentResponse, error)
	GetPaymentsByBooking(ctx context.Context, bookingID string) ([]response.PaymentResponse, error)
}

type paymentService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewPaymentService(repo *repository.Repository, log *zap.Logger) PaymentService {
	return &paymentService{
		repo: repo,
		log:  log.With(zap.String("service", "payment")),
		now:  time.Now,
	}
}

// validatePayment runs the shared checks for record and update. The
// excludePaymentID carries the id of the payment being updated so it
// does not conflict with itself.
func (s *paymentService) validatePayment(ctx context.Context, req *request.PaymentRequest, excludePaymentID *uuid.UUID) (*entity.Booking, *entity.Account, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Payment validation failed", zap.Any("errors", errs))
		return nil, nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if req.Amount <= 0 {
		return nil, nil, fmt.Errorf("amount %.2f: %w", req.Amount, entity.ErrInvalidAmount)
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid booking ID format %s: %w", req.BookingID, err)
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid account ID format %s: %w", req.AccountID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve booking: %w", err)
	}
	if booking == nil {
		return nil, nil, fmt.Errorf("booking %s: %w", req.BookingID, entity.ErrReferenceNotFound)
	}

	if booking.Status == entity.BookingStatusCancelled {
		return nil, nil, fmt.Errorf("booking %s: %w", req.BookingID, entity.ErrBookingNotPayable)
	}

	account, err := s.repo.Account.FindByID(ctx, accountID)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve account: %w", err)
	}
	if account == nil {
		return nil, nil, fmt.Errorf("account %s: %w", req.AccountID, entity.ErrReferenceNotFound)
	}

	// Advisory read; the partial unique index on successful payments is
	// the authority when concurrent writes race.
	if entity.PaymentStatus(req.Status) == entity.PaymentStatusSuccess {
		none, err := s.repo.Consistency.NoSuccessfulPayment(ctx, bookingID, excludePaymentID)
		if err != nil {
			return nil, nil, fmt.Errorf("check successful payment: %w", err)
		}
		if !none {
			return nil, nil, fmt.Errorf("booking %s: %w", req.BookingID, entity.ErrAlreadyPaid)
		}
	}

	return booking, account, nil
}

func (s *paymentService) RecordPayment(ctx context.Context, req *request.PaymentRequest) (*response.PaymentDetailResponse, error) {
	booking, account, err := s.validatePayment(ctx, req, nil)
	if err != nil {
		return nil, err
	}

	// recorded_at is server time; whatever the caller thinks the time is
	// never enters the ledger.
	now := s.now()
	payment := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID:  booking.ID,
		AccountID:  account.ID,
		Amount:     req.Amount,
		Method:     entity.PaymentMethod(req.Method),
		Status:     entity.PaymentStatus(req.Status),
		RecordedAt: now,
		Reference:  req.Reference,
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.log.Info("Payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("booking_id", req.BookingID),
		zap.Float64("amount", payment.Amount),
		zap.String("method", string(payment.Method)),
		zap.String("status", string(payment.Status)),
	)

	return s.buildPaymentDetail(ctx, payment, booking, account)
}

func (s *paymentService) UpdatePayment(ctx context.Context, paymentID string, req *request.PaymentRequest) (*response.PaymentDetailResponse, error) {
	id, err := uuid.Parse(paymentID)
	if err != nil {
		return nil, fmt.Errorf("invalid payment ID format %s: %w", paymentID, err)
	}

	existing, err := s.repo.Payment.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get payment %s: %w", paymentID, err)
	}
	if existing == nil {
		return nil, fmt.Errorf("payment %s: %w", paymentID, entity.ErrNotFound)
	}

	booking, account, err := s.validatePayment(ctx, req, &id)
	if err != nil {
		return nil, err
	}

	existing.BookingID = booking.ID
	existing.AccountID = account.ID
	existing.Amount = req.Amount
	existing.Method = entity.PaymentMethod(req.Method)
	existing.Status = entity.PaymentStatus(req.Status)
	existing.Reference = req.Reference
	existing.UpdatedAt = s.now()

	if err := s.repo.Payment.Update(ctx, existing); err != nil {
		return nil, err
	}

	s.log.Info("Payment updated",
		zap.String("payment_id", paymentID),
		zap.String("status", string(existing.Status)),
	)

	return s.buildPaymentDetail(ctx, existing, booking, account)
}

func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID string) (*response.PaymentDetailResponse, error) {
	id, err := uuid.Parse(paymentID)
	if err != nil {
		return nil, fmt.Errorf("invalid payment ID format %s: %w", paymentID, err)
	}

	payment, err := s.repo.Payment.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get payment %s: %w", paymentID, err)
	}
	if payment == nil {
		return nil, fmt.Errorf("payment %s: %w", paymentID, entity.ErrNotFound)
	}

	booking, err := s.repo.Booking.FindByID(ctx, payment.BookingID)
	if err != nil || booking == nil {
		return nil, fmt.Errorf("resolve booking for payment %s: %w", paymentID, entity.ErrReferenceNotFound)
	}

	account, err := s.repo.Account.FindByID(ctx, payment.AccountID)
	if err != nil || account == nil {
		return nil, fmt.Errorf("resolve account for payment %s: %w", paymentID, entity.ErrReferenceNotFound)
	}

	return s.buildPaymentDetail(ctx, payment, booking, account)
}

func (s *paymentService) GetPayments(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PaymentResponse], error) {
	payments, err := s.repo.Payment.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get payments", zap.Error(err))
		return nil, fmt.Errorf("get payments: %w", err)
	}

	total, err := s.repo.Payment.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count payments", zap.Error(err))
		return nil, fmt.Errorf("count payments: %w", err)
	}

	paymentResponses := make([]response.PaymentResponse, len(payments))
	for i, payment := range payments {
		paymentResponses[i] = response.PaymentToResponse(payment)
	}

	return response.NewPaginatedResponse(paymentResponses, req.Page, req.PerPage, total), nil
}

func (s *paymentService) GetPaymentsByAccount(ctx context.Context, accountID string) ([]response.PaymentResponse, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, fmt.Errorf("invalid account ID format %s: %w", accountID, err)
	}

	exists, err := s.repo.Consistency.Exists(ctx, repository.KindAccount, id)
	if err != nil {
		return nil, fmt.Errorf("check account %s: %w", accountID, err)
	}
	if !exists {
		return nil, fmt.Errorf("account %s: %w", accountID, entity.ErrNotFound)
	}

	payments, err := s.repo.Payment.FindByAccountID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get payments by account: %w", err)
	}

	paymentResponses := make([]response.PaymentResponse, len(payments))
	for i, payment := range payments {
		paymentResponses[i] = response.PaymentToResponse(payment)
	}

	return paymentResponses, nil
}

func (s *paymentService) GetPaymentsByBooking(ctx context.Context, bookingID string) ([]response.PaymentResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	exists, err := s.repo.Consistency.Exists(ctx, repository.KindBooking, id)
	if err != nil {
		return nil, fmt.Errorf("check booking %s: %w", bookingID, err)
	}
	if !exists {
		return nil, fmt.Errorf("booking %s: %w", bookingID, entity.ErrNotFound)
	}

	payments, err := s.repo.Payment.FindByBookingID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get payments by booking: %w", err)
	}

	paymentResponses := make([]response.PaymentResponse, len(payments))
	for i, payment := range payments {
		paymentResponses[i] = response.PaymentToResponse(payment)
	}

	return paymentResponses, nil
}

func (s *paymentService) buildPaymentDetail(ctx context.Context, payment *entity.Payment, booking *entity.Booking, account *entity.Account) (*response.PaymentDetailResponse, error) {
	schedule, err := s.repo.Schedule.FindByID(ctx, booking.ScheduleID)
	if err != nil || schedule == nil {
		return nil, fmt.Errorf("resolve schedule for booking %s: %w", booking.ID.String(), entity.ErrReferenceNotFound)
	}

	film, err := s.repo.Film.FindByID(ctx, schedule.FilmID)
	if err != nil || film == nil {
		return nil, fmt.Errorf("resolve film for schedule %s: %w", schedule.ID.String(), entity.ErrReferenceNotFound)
	}

	auditorium, err := s.repo.Auditorium.FindByID(ctx, schedule.AuditoriumID)
	if err != nil || auditorium == nil {
		return nil, fmt.Errorf("resolve auditorium for schedule %s: %w", schedule.ID.String(), entity.ErrReferenceNotFound)
	}

	return &response.PaymentDetailResponse{
		PaymentResponse: response.PaymentToResponse(payment),
		Booking:         response.BookingToResponse(booking),
		Schedule:        response.ScheduleToResponse(schedule),
		Film:            response.FilmToResponse(film),
		Auditorium:      response.AuditoriumToResponse(auditorium),
		Account:         response.AccountToResponse(account),
	}, nil
}
