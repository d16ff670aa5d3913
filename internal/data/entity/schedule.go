package entity

import (
	"time"

	"github.com/google/uuid"
)

type Schedule struct {
	Base
	AuditoriumID uuid.UUID `db:"auditorium_id"`
	FilmID       uuid.UUID `db:"film_id"`
	ShowTime     time.Time `db:"show_time"`
	Price        float64   `db:"price"`
}
