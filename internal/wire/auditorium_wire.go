package wire

import (
	"screening-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuditorium(r chi.Router, h *adaptor.AuditoriumHandler) {
	r.Route("/api/auditoriums", func(r chi.Router) {
		r.Get("/", h.GetAuditoriums)
		r.Post("/", h.CreateAuditorium)
		r.Get("/{id}", h.GetAuditoriumByID)
		r.Put("/{id}", h.UpdateAuditorium)
		r.Delete("/{id}", h.DeleteAuditorium)
	})
}
