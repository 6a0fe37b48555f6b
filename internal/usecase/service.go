package usecase

import (
	"movie-booking/internal/data/repository"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Movie   MovieService
	Seat    SeatService
	Booking BookingService
}

func NewService(repo *repository.Repository, clock utils.Clock, log *zap.Logger) *Service {
	booking := NewBookingService(repo, clock, log)
	return &Service{
		Movie:   NewMovieService(repo, booking, clock, log),
		Seat:    NewSeatService(repo, log),
		Booking: booking,
	}
}
