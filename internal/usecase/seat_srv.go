package usecase

import (
	"context"
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"

	"go.uber.org/zap"
)

// SeatService covers reads and layout growth. Toggling the booked flag is
// the booking service's job.
type SeatService interface {
	GetSeats(ctx context.Context) ([]response.SeatResponse, error)
	GetAvailableSeats(ctx context.Context) ([]response.SeatResponse, error)
	GetSeatByID(ctx context.Context, seatID int64) (*response.SeatResponse, error)
	CreateSeat(ctx context.Context, req *request.SeatRequest) (*response.SeatResponse, error)
}

type seatService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSeatService(repo *repository.Repository, log *zap.Logger) SeatService {
	return &seatService{
		repo: repo,
		log:  log.With(zap.String("service", "seat")),
	}
}

func (s *seatService) GetSeats(ctx context.Context) ([]response.SeatResponse, error) {
	seats, err := s.repo.Seat.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get seats: %w", err)
	}
	return response.SeatsToResponse(seats), nil
}

func (s *seatService) GetAvailableSeats(ctx context.Context) ([]response.SeatResponse, error) {
	seats, err := s.repo.Seat.FindAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("get available seats: %w", err)
	}
	return response.SeatsToResponse(seats), nil
}

func (s *seatService) GetSeatByID(ctx context.Context, seatID int64) (*response.SeatResponse, error) {
	seat, err := s.repo.Seat.FindByID(ctx, seatID)
	if err != nil {
		return nil, fmt.Errorf("get seat %d: %w", seatID, err)
	}
	if seat == nil {
		return nil, entity.ErrSeatNotFound
	}

	resp := response.SeatToResponse(seat)
	return &resp, nil
}

func (s *seatService) CreateSeat(ctx context.Context, req *request.SeatRequest) (*response.SeatResponse, error) {
	fields, validationErrors := req.Validate()
	if validationErrors != nil {
		s.log.Warn("Create seat validation failed", zap.Any("errors", validationErrors))
		return nil, entity.NewValidationError(validationErrors)
	}

	seat := &entity.Seat{
		SeatNumber: fields.SeatNumber,
		IsBooked:   fields.IsBooked,
	}

	if err := s.repo.Seat.Create(ctx, seat); err != nil {
		return nil, err
	}

	s.log.Info("Seat created",
		zap.Int64("seat_id", seat.ID),
		zap.String("seat_number", seat.SeatNumber),
	)

	resp := response.SeatToResponse(seat)
	return &resp, nil
}
