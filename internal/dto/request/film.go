package request

type FilmRequest struct {
	Title           string  `json:"title" validate:"required,min=1,max=200"`
	Genre           *string `json:"genre,omitempty" validate:"omitempty,max=100"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,gt=0"`
	Description     *string `json:"description,omitempty"`
}
