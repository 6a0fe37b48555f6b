package usecase

import (
	"context"
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

// BookingService is the only component allowed to mutate Seat.is_booked
// and Booking existence. Every compound operation runs inside a storage
// transaction with the seat row locked, so the invariant - a seat is
// booked iff a live booking references it - holds before and after each
// call.
type BookingService interface {
	GetBookings(ctx context.Context) ([]response.BookingResponse, error)
	GetBookingByID(ctx context.Context, bookingID int64) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userName string) ([]response.BookingResponse, error)

	CreateBooking(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID int64) error

	// Low-level seat escape hatch, kept for compatibility: marks a seat
	// without creating a booking record.
	BookSeat(ctx context.Context, seatID int64) (*response.SeatResponse, error)
	ReleaseSeat(ctx context.Context, seatID int64) (*response.SeatResponse, error)

	// DeleteMovieCascade removes a movie together with its bookings,
	// releasing every affected seat in the same transaction.
	DeleteMovieCascade(ctx context.Context, movieID int64) error
}

type bookingService struct {
	repo  *repository.Repository
	clock utils.Clock
	log   *zap.Logger
}

func NewBookingService(repo *repository.Repository, clock utils.Clock, log *zap.Logger) BookingService {
	return &bookingService{
		repo:  repo,
		clock: clock,
		log:   log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) GetBookings(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get bookings: %w", err)
	}
	return s.buildBookingResponses(ctx, bookings)
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID int64) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking %d: %w", bookingID, err)
	}
	if booking == nil {
		return nil, entity.ErrBookingNotFound
	}

	resp, err := s.buildBookingResponse(ctx, booking)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userName string) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByUserName(ctx, userName)
	if err != nil {
		return nil, fmt.Errorf("get bookings for user %s: %w", userName, err)
	}
	return s.buildBookingResponses(ctx, bookings)
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error) {
	// Validate before touching storage; all field errors come back at once
	fields, validationErrors := req.Validate()
	if validationErrors != nil {
		s.log.Warn("Create booking validation failed", zap.Any("errors", validationErrors))
		return nil, entity.NewValidationError(validationErrors)
	}

	booking := &entity.Booking{
		MovieID:     fields.MovieID,
		SeatID:      fields.SeatID,
		UserName:    fields.UserName,
		UserEmail:   fields.UserEmail,
		BookingDate: s.clock.Now(),
		Showtime:    fields.Showtime,
	}

	// The booking record and the seat flag change as one atomic unit.
	// Locking the seat row first means two concurrent calls for the same
	// free seat end with exactly one success.
	err := s.repo.Tx.WithTx(ctx, func(ctx context.Context) error {
		movie, err := s.repo.Movie.FindByID(ctx, fields.MovieID)
		if err != nil {
			return err
		}
		if movie == nil {
			return entity.ErrMovieNotFound
		}

		seat, err := s.repo.Seat.FindByIDForUpdate(ctx, fields.SeatID)
		if err != nil {
			return err
		}
		if seat == nil {
			return entity.ErrSeatNotFound
		}
		if seat.IsBooked {
			return entity.ErrSeatAlreadyBooked
		}

		if err := s.repo.Booking.Create(ctx, booking); err != nil {
			return err
		}
		return s.repo.Seat.UpdateBooked(ctx, seat.ID, true)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking created",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("movie_id", booking.MovieID),
		zap.Int64("seat_id", booking.SeatID),
		zap.String("user_name", booking.UserName),
	)

	resp, err := s.buildBookingResponse(ctx, booking)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID int64) error {
	err := s.repo.Tx.WithTx(ctx, func(ctx context.Context) error {
		booking, err := s.repo.Booking.FindByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if booking == nil {
			return entity.ErrBookingNotFound
		}

		if err := s.repo.Booking.Delete(ctx, bookingID); err != nil {
			return err
		}

		// A dangling seat reference never blocks cancellation; the
		// release is simply skipped when the seat is gone.
		seat, err := s.repo.Seat.FindByIDForUpdate(ctx, booking.SeatID)
		if err != nil {
			return err
		}
		if seat == nil {
			s.log.Warn("Cancelled booking referenced a missing seat",
				zap.Int64("booking_id", bookingID),
				zap.Int64("seat_id", booking.SeatID),
			)
			return nil
		}
		return s.repo.Seat.UpdateBooked(ctx, seat.ID, false)
	})
	if err != nil {
		return err
	}

	s.log.Info("Booking cancelled", zap.Int64("booking_id", bookingID))
	return nil
}

func (s *bookingService) BookSeat(ctx context.Context, seatID int64) (*response.SeatResponse, error) {
	var booked entity.Seat

	err := s.repo.Tx.WithTx(ctx, func(ctx context.Context) error {
		seat, err := s.repo.Seat.FindByIDForUpdate(ctx, seatID)
		if err != nil {
			return err
		}
		if seat == nil {
			return entity.ErrSeatNotFound
		}
		if seat.IsBooked {
			// Booking twice in a row fails the second time on purpose;
			// "already booked" is a real state, not a no-op.
			return entity.ErrSeatAlreadyBooked
		}

		if err := s.repo.Seat.UpdateBooked(ctx, seat.ID, true); err != nil {
			return err
		}
		booked = *seat
		booked.IsBooked = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Seat booked", zap.Int64("seat_id", seatID))
	resp := response.SeatToResponse(&booked)
	return &resp, nil
}

func (s *bookingService) ReleaseSeat(ctx context.Context, seatID int64) (*response.SeatResponse, error) {
	var released entity.Seat

	err := s.repo.Tx.WithTx(ctx, func(ctx context.Context) error {
		seat, err := s.repo.Seat.FindByIDForUpdate(ctx, seatID)
		if err != nil {
			return err
		}
		if seat == nil {
			return entity.ErrSeatNotFound
		}

		// Releasing an already-free seat succeeds; release is always safe.
		if err := s.repo.Seat.UpdateBooked(ctx, seat.ID, false); err != nil {
			return err
		}
		released = *seat
		released.IsBooked = false
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Seat released", zap.Int64("seat_id", seatID))
	resp := response.SeatToResponse(&released)
	return &resp, nil
}

func (s *bookingService) DeleteMovieCascade(ctx context.Context, movieID int64) error {
	err := s.repo.Tx.WithTx(ctx, func(ctx context.Context) error {
		movie, err := s.repo.Movie.FindByID(ctx, movieID)
		if err != nil {
			return err
		}
		if movie == nil {
			return entity.ErrMovieNotFound
		}

		bookings, err := s.repo.Booking.FindByMovieID(ctx, movieID)
		if err != nil {
			return err
		}

		for _, booking := range bookings {
			seat, err := s.repo.Seat.FindByIDForUpdate(ctx, booking.SeatID)
			if err != nil {
				return err
			}
			if seat == nil {
				continue
			}
			if err := s.repo.Seat.UpdateBooked(ctx, seat.ID, false); err != nil {
				return err
			}
		}

		if err := s.repo.Booking.DeleteByMovieID(ctx, movieID); err != nil {
			return err
		}
		return s.repo.Movie.Delete(ctx, movieID)
	})
	if err != nil {
		return err
	}

	s.log.Info("Movie deleted with cascade", zap.Int64("movie_id", movieID))
	return nil
}

// buildBookingResponse joins in movie_title and seat_number for display.
func (s *bookingService) buildBookingResponse(ctx context.Context, booking *entity.Booking) (response.BookingResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, booking.MovieID)
	if err != nil {
		return response.BookingResponse{}, err
	}
	seat, err := s.repo.Seat.FindByID(ctx, booking.SeatID)
	if err != nil {
		return response.BookingResponse{}, err
	}
	return response.BookingToResponse(booking, movie, seat), nil
}

func (s *bookingService) buildBookingResponses(ctx context.Context, bookings []*entity.Booking) ([]response.BookingResponse, error) {
	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		resp, err := s.buildBookingResponse(ctx, booking)
		if err != nil {
			return nil, err
		}
		responses[i] = resp
	}
	return responses, nil
}
