package entity

type Seat struct {
	ID         int64  `db:"id"`
	SeatNumber string `db:"seat_number"` // A1, A2, B1, etc.
	IsBooked   bool   `db:"is_booked"`
}
