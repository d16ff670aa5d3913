package wire

import (
	"screening-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFilm(r chi.Router, h *adaptor.FilmHandler) {
	r.Route("/api/films", func(r chi.Router) {
		r.Get("/", h.GetFilms)
		r.Post("/", h.CreateFilm)
		r.Get("/{id}", h.GetFilmByID)
		r.Put("/{id}", h.UpdateFilm)
		r.Delete("/{id}", h.DeleteFilm)
	})
}
