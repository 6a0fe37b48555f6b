package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-booking/internal/dto/request"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type SeatHandler struct {
	service usecase.SeatService
	booking usecase.BookingService
	log     *zap.Logger
}

func NewSeatHandler(service usecase.SeatService, booking usecase.BookingService, log *zap.Logger) *SeatHandler {
	return &SeatHandler{
		service: service,
		booking: booking,
		log:     log.With(zap.String("handler", "seat")),
	}
}

// GetSeats handles GET /seats
func (h *SeatHandler) GetSeats(w http.ResponseWriter, r *http.Request) {
	seats, err := h.service.GetSeats(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get seats")
		return
	}

	utils.ResponseSuccess(w, "success", seats)
}

// GetAvailableSeats handles GET /seats/available
func (h *SeatHandler) GetAvailableSeats(w http.ResponseWriter, r *http.Request) {
	seats, err := h.service.GetAvailableSeats(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get available seats")
		return
	}

	utils.ResponseSuccess(w, "success", seats)
}

// GetSeatByID handles GET /seats/{id}
func (h *SeatHandler) GetSeatByID(w http.ResponseWriter, r *http.Request) {
	seatID, ok := parseID(r)
	if !ok {
		utils.ResponseNotFound(w, "Seat not found")
		return
	}

	seat, err := h.service.GetSeatByID(r.Context(), seatID)
	if err != nil {
		handleServiceError(w, h.log, err, "get seat by ID")
		return
	}

	utils.ResponseSuccess(w, "Seat retrieved successfully", seat)
}

// CreateSeat handles POST /seats, growing the theater layout
func (h *SeatHandler) CreateSeat(w http.ResponseWriter, r *http.Request) {
	var req request.SeatRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	seat, err := h.service.CreateSeat(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create seat")
		return
	}

	utils.ResponseCreated(w, "Seat created successfully", seat)
}

// BookSeat handles POST /seats/{id}/book
func (h *SeatHandler) BookSeat(w http.ResponseWriter, r *http.Request) {
	seatID, ok := parseID(r)
	if !ok {
		utils.ResponseNotFound(w, "Seat not found")
		return
	}

	seat, err := h.booking.BookSeat(r.Context(), seatID)
	if err != nil {
		handleServiceError(w, h.log, err, "book seat")
		return
	}

	utils.ResponseSuccess(w, "Seat booked successfully", seat)
}

// ReleaseSeat handles POST /seats/{id}/release
func (h *SeatHandler) ReleaseSeat(w http.ResponseWriter, r *http.Request) {
	seatID, ok := parseID(r)
	if !ok {
		utils.ResponseNotFound(w, "Seat not found")
		return
	}

	seat, err := h.booking.ReleaseSeat(r.Context(), seatID)
	if err != nil {
		handleServiceError(w, h.log, err, "release seat")
		return
	}

	utils.ResponseSuccess(w, "Seat released successfully", seat)
}
