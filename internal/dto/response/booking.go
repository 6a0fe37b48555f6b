package response

import (
	"time"

	"movie-booking/internal/data/entity"
)

// BookingResponse denormalizes movie_title and seat_number for display.
// Both are looked up explicitly at serialization time; they are not stored
// on the booking record.
type BookingResponse struct {
	ID          int64      `json:"id"`
	MovieID     int64      `json:"movie_id"`
	MovieTitle  *string    `json:"movie_title"`
	SeatID      int64      `json:"seat_id"`
	SeatNumber  *string    `json:"seat_number"`
	UserName    string     `json:"user_name"`
	UserEmail   *string    `json:"user_email"`
	BookingDate time.Time  `json:"booking_date"`
	Showtime    *time.Time `json:"showtime"`
}

// Helper converters. movie and seat may be nil when the referenced record
// has been removed independently; the field stays null in that case.
func BookingToResponse(booking *entity.Booking, movie *entity.Movie, seat *entity.Seat) BookingResponse {
	resp := BookingResponse{
		ID:          booking.ID,
		MovieID:     booking.MovieID,
		SeatID:      booking.SeatID,
		UserName:    booking.UserName,
		UserEmail:   booking.UserEmail,
		BookingDate: booking.BookingDate,
		Showtime:    booking.Showtime,
	}

	if movie != nil {
		resp.MovieTitle = &movie.Title
	}
	if seat != nil {
		resp.SeatNumber = &seat.SeatNumber
	}

	return resp
}
