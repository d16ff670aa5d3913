package response

import (
	"time"

	"screening-booking/internal/data/entity"
)

type AuditoriumResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Capacity   int       `json:"capacity"`
	Facilities *string   `json:"facilities,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func AuditoriumToResponse(auditorium *entity.Auditorium) AuditoriumResponse {
	return AuditoriumResponse{
		ID:         auditorium.ID.String(),
		Name:       auditorium.Name,
		Capacity:   auditorium.Capacity,
		Facilities: auditorium.Facilities,
		CreatedAt:  auditorium.CreatedAt,
		UpdatedAt:  auditorium.UpdatedAt,
	}
}
