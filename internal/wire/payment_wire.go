package wire

import (
	"screening-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePayment(r chi.Router, h *adaptor.PaymentHandler) {
	r.Route("/api/payments", func(r chi.Router) {
		r.Get("/", h.GetPayments)
		r.Post("/", h.RecordPayment)
		r.Get("/{id}", h.GetPaymentByID)
		r.Put("/{id}", h.UpdatePayment)
	})
}
