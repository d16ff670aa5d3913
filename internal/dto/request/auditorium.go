package request

type AuditoriumRequest struct {
	Name       string  `json:"name" validate:"required,min=1,max=100"`
	Capacity   int     `json:"capacity" validate:"required,min=1,max=1000"`
	Facilities *string `json:"facilities,omitempty"`
}
