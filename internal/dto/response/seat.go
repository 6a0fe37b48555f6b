package response

import "movie-booking/internal/data/entity"

type SeatResponse struct {
	ID         int64  `json:"id"`
	SeatNumber string `json:"seat_number"`
	IsBooked   bool   `json:"is_booked"`
}

// Helper converters
func SeatToResponse(seat *entity.Seat) SeatResponse {
	return SeatResponse{
		ID:         seat.ID,
		SeatNumber: seat.SeatNumber,
		IsBooked:   seat.IsBooked,
	}
}

func SeatsToResponse(seats []*entity.Seat) []SeatResponse {
	responses := make([]SeatResponse, len(seats))
	for i, seat := range seats {
		responses[i] = SeatToResponse(seat)
	}
	return responses
}
