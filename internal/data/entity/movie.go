package entity

import "time"

type Movie struct {
	ID          int64      `db:"id"`
	Title       string     `db:"title"`
	Description *string    `db:"description"`
	ReleaseDate *time.Time `db:"release_date"`
	Duration    *int       `db:"duration"` // minutes
	Poster      *string    `db:"poster"`
	CreatedAt   time.Time  `db:"created_at"`
}
