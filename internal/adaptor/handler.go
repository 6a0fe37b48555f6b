package adaptor

import (
	"errors"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"

	"net/http"
)

type Handler struct {
	Movie   *MovieHandler
	Seat    *SeatHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie:   NewMovieHandler(service.Movie, log),
		Seat:    NewSeatHandler(service.Seat, service.Booking, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}

// handleServiceError maps domain errors to HTTP responses. Validation and
// conflict become 400, missing ids 404, anything else is a storage
// failure and becomes 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *entity.ValidationError
	if errors.As(err, &validationErr) {
		log.Warn(operation+" failed - validation",
			zap.Any("errors", validationErr.Fields))
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)
		return
	}

	switch {
	case errors.Is(err, entity.ErrMovieNotFound),
		errors.Is(err, entity.ErrSeatNotFound),
		errors.Is(err, entity.ErrBookingNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, entity.ErrSeatAlreadyBooked):
		log.Warn(operation+" failed - seat already booked", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
