package request

import (
	"strings"
	"time"
)

// showtime is accepted in two textual forms
var showtimeLayouts = []string{"2006-01-02T15:04", "2006-01-02 15:04"}

// BookingRequest is the untyped create payload.
type BookingRequest struct {
	MovieID   any `json:"movie_id"`
	SeatID    any `json:"seat_id"`
	UserName  any `json:"user_name"`
	UserEmail any `json:"user_email"`
	Showtime  any `json:"showtime"`
}

// BookingFields is the checked, typed field set produced by Validate.
type BookingFields struct {
	MovieID   int64
	SeatID    int64
	UserName  string
	UserEmail *string
	Showtime  *time.Time
}

// Validate checks the payload and reports every violated field at once,
// so a single bad request lists all three required fields when empty.
func (r *BookingRequest) Validate() (*BookingFields, map[string]string) {
	errors := make(map[string]string)
	fields := &BookingFields{}

	if !present(r.MovieID) {
		errors["movie_id"] = "Movie Id is required"
	} else if id, ok := asInt(r.MovieID); ok {
		fields.MovieID = id
	} else {
		errors["movie_id"] = "Movie ID must be a valid integer"
	}

	if !present(r.SeatID) {
		errors["seat_id"] = "Seat Id is required"
	} else if id, ok := asInt(r.SeatID); ok {
		fields.SeatID = id
	} else {
		errors["seat_id"] = "Seat ID must be a valid integer"
	}

	if name, ok := asString(r.UserName); ok && name != "" {
		fields.UserName = name
	} else {
		errors["user_name"] = "User Name is required"
	}

	if present(r.UserEmail) {
		if email, ok := asString(r.UserEmail); ok && email != "" {
			if !strings.Contains(email, "@") {
				errors["user_email"] = "Invalid email format"
			} else {
				fields.UserEmail = &email
			}
		}
	}

	if present(r.Showtime) {
		raw, _ := asString(r.Showtime)
		parsed := false
		for _, layout := range showtimeLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				fields.Showtime = &t
				parsed = true
				break
			}
		}
		if !parsed {
			errors["showtime"] = "Showtime must be in YYYY-MM-DDTHH:MM format"
		}
	}

	if len(errors) > 0 {
		return nil, errors
	}
	return fields, nil
}
