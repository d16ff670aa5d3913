package wire

import (
	"screening-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, h *adaptor.BookingHandler) {
	r.Route("/api/bookings", func(r chi.Router) {
		r.Get("/", h.GetBookings)
		r.Post("/", h.Reserve)
		r.Get("/{id}", h.GetBookingByID)
		r.Put("/{id}/seat", h.ChangeSeat)
		r.Put("/{id}/cancel", h.CancelBooking)
		r.Put("/{id}/expire", h.ExpireBooking)
		r.Get("/{id}/payments", h.GetBookingPayments)
	})
}
