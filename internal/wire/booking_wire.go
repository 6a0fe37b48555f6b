package wire

import (
	"movie-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/bookings", func(r chi.Router) {
		r.Get("/", bookingHandler.GetBookings)
		r.Post("/", bookingHandler.CreateBooking)
		r.Get("/user/{name}", bookingHandler.GetUserBookings)
		r.Get("/{id}", bookingHandler.GetBookingByID)
		r.Delete("/{id}", bookingHandler.CancelBooking)
	})
}
