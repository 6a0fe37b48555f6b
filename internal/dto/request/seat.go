package request

import "strings"

// SeatRequest is the untyped payload for adding a seat to the layout.
type SeatRequest struct {
	SeatNumber any `json:"seat_number"`
	IsBooked   any `json:"is_booked"`
}

// SeatFields is the checked, typed field set produced by Validate.
type SeatFields struct {
	SeatNumber string
	IsBooked   bool
}

// Validate normalizes the seat label (trimmed, uppercased) and collects
// field errors.
func (r *SeatRequest) Validate() (*SeatFields, map[string]string) {
	errors := make(map[string]string)
	fields := &SeatFields{}

	if number, ok := asString(r.SeatNumber); ok && number != "" {
		fields.SeatNumber = strings.ToUpper(number)
	} else {
		errors["seat_number"] = "Seat number is required"
	}

	fields.IsBooked = asBool(r.IsBooked)

	if len(errors) > 0 {
		return nil, errors
	}
	return fields, nil
}
