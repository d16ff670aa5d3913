package response

import (
	"time"

	"screening-booking/internal/data/entity"
)

type FilmResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Genre           *string   `json:"genre,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	Description     *string   `json:"description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FilmToResponse(film *entity.Film) FilmResponse {
	return FilmResponse{
		ID:              film.ID.String(),
		Title:           film.Title,
		Genre:           film.Genre,
		DurationMinutes: film.DurationMinutes,
		Description:     film.Description,
		CreatedAt:       film.CreatedAt,
		UpdatedAt:       film.UpdatedAt,
	}
}
