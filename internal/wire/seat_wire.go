package wire

import (
	"movie-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSeat(r chi.Router, seatHandler *adaptor.SeatHandler) {
	r.Route("/seats", func(r chi.Router) {
		r.Get("/", seatHandler.GetSeats)
		r.Post("/", seatHandler.CreateSeat)
		r.Get("/available", seatHandler.GetAvailableSeats)
		r.Get("/{id}", seatHandler.GetSeatByID)
		r.Post("/{id}/book", seatHandler.BookSeat)
		r.Post("/{id}/release", seatHandler.ReleaseSeat)
	})
}
