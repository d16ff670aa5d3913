package wire

import (
	"screening-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSchedule(r chi.Router, h *adaptor.ScheduleHandler) {
	r.Route("/api/schedules", func(r chi.Router) {
		r.Get("/", h.GetSchedules)
		r.Post("/", h.CreateSchedule)
		r.Get("/{id}", h.GetScheduleByID)
		r.Put("/{id}", h.UpdateSchedule)
		r.Delete("/{id}", h.DeleteSchedule)
	})
}
