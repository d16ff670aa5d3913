package usecase

import (
	"screening-booking/internal/data/repository"

	"go.uber.org/zap"
)

// Service bundles every use case behind one value for wiring.
type Service struct {
	Film       FilmService
	Auditorium AuditoriumService
	Account    AccountService
	Schedule   ScheduleService
	Booking    BookingService
	Payment    PaymentService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Film:       NewFilmService(repo, log),
		Auditorium: NewAuditoriumService(repo, log),
		Account:    NewAccountService(repo, log),
		Schedule:   NewScheduleService(repo, log),
		Booking:    NewBookingService(repo, log),
		Payment:    NewPaymentService(repo, log),
	}
}
