package entity

type Auditorium struct {
	Base
	Name       string  `db:"name"`
	Capacity   int     `db:"capacity"`
	Facilities *string `db:"facilities"`
}
