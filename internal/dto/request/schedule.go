package request

import "time"

type ScheduleRequest struct {
	AuditoriumID string    `json:"auditorium_id" validate:"required,uuid4"`
	FilmID       string    `json:"film_id" validate:"required,uuid4"`
	ShowTime     time.Time `json:"show_time" validate:"required"`
	Price        float64   `json:"price" validate:"required"`
}
