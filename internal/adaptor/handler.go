package adaptor

import (
	"screening-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Film       *FilmHandler
	Auditorium *AuditoriumHandler
	Account    *AccountHandler
	Schedule   *ScheduleHandler
	Booking    *BookingHandler
	Payment    *PaymentHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Film:       NewFilmHandler(service.Film, log),
		Auditorium: NewAuditoriumHandler(service.Auditorium, log),
		Account:    NewAccountHandler(service.Account, service.Payment, log),
		Schedule:   NewScheduleHandler(service.Schedule, log),
		Booking:    NewBookingHandler(service.Booking, service.Payment, log),
		Payment:    NewPaymentHandler(service.Payment, log),
	}
}
