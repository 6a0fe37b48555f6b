package repository

import (
	"context"

	"movie-booking/pkg/database"

	"go.uber.org/zap"
)

// TxRunner runs a function inside a storage transaction. Every compound
// booking operation goes through it so the seat flag and the booking
// record change as one unit.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type Repository struct {
	Tx      TxRunner
	Movie   MovieRepository
	Seat    SeatRepository
	Booking BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Tx:      db,
		Movie:   NewMovieRepository(db, log),
		Seat:    NewSeatRepository(db, log),
		Booking: NewBookingRepository(db, log),
	}
}
