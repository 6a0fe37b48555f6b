package entity

import "time"

type Booking struct {
	ID          int64      `db:"id"`
	MovieID     int64      `db:"movie_id"`
	SeatID      int64      `db:"seat_id"`
	UserName    string     `db:"user_name"`
	UserEmail   *string    `db:"user_email"`
	BookingDate time.Time  `db:"booking_date"`
	Showtime    *time.Time `db:"showtime"`
}
