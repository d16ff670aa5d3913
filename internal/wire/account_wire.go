package wire

import (
	"screening-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAccount(r chi.Router, h *adaptor.AccountHandler) {
	r.Route("/api/accounts", func(r chi.Router) {
		r.Get("/", h.GetAccounts)
		r.Post("/", h.Register)
		r.Get("/{id}", h.GetAccountByID)
		r.Put("/{id}/deactivate", h.DeactivateAccount)
		r.Get("/{id}/payments", h.GetAccountPayments)
	})
}
