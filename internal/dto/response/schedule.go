package response

import (
	"time"

	"screening-booking/internal/data/entity"
)

type ScheduleResponse struct {
	ID           string    `json:"id"`
	AuditoriumID string    `json:"auditorium_id"`
	FilmID       string    `json:"film_id"`
	ShowTime     time.Time `json:"show_time"`
	Price        float64   `json:"price"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ScheduleDetailResponse joins the film and auditorium snapshot read at
// the instant of the call.
type ScheduleDetailResponse struct {
	ScheduleResponse
	Film       FilmResponse       `json:"film"`
	Auditorium AuditoriumResponse `json:"auditorium"`
}

func ScheduleToResponse(schedule *entity.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:           schedule.ID.String(),
		AuditoriumID: schedule.AuditoriumID.String(),
		FilmID:       schedule.FilmID.String(),
		ShowTime:     schedule.ShowTime,
		Price:        schedule.Price,
		CreatedAt:    schedule.CreatedAt,
		UpdatedAt:    schedule.UpdatedAt,
	}
}
