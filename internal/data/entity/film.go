package entity

type Film struct {
	Base
	Title           string  `db:"title"`
	Genre           *string `db:"genre"`
	DurationMinutes int     `db:"duration_minutes"`
	Description     *string `db:"description"`
}
