package request

import (
	"testing"
	"time"
)

func TestBookingRequest_Validate(t *testing.T) {
	t.Parallel()

	t.Run("ids as numbers", func(t *testing.T) {
		req := &BookingRequest{MovieID: float64(1), SeatID: float64(2), UserName: "alice"}
		fields, errs := req.Validate()
		if errs != nil {
			t.Fatalf("expected no errors, got %v", errs)
		}
		if fields.MovieID != 1 || fields.SeatID != 2 || fields.UserName != "alice" {
			t.Fatalf("unexpected fields: %+v", fields)
		}
		if fields.UserEmail != nil || fields.Showtime != nil {
			t.Fatalf("expected optional fields to stay nil")
		}
	})

	t.Run("ids as strings", func(t *testing.T) {
		req := &BookingRequest{MovieID: "1", SeatID: " 2 ", UserName: "alice"}
		fields, errs := req.Validate()
		if errs != nil {
			t.Fatalf("expected no errors, got %v", errs)
		}
		if fields.MovieID != 1 || fields.SeatID != 2 {
			t.Fatalf("unexpected ids: %+v", fields)
		}
	})

	t.Run("empty payload lists every required field", func(t *testing.T) {
		_, errs := (&BookingRequest{}).Validate()
		want := map[string]string{
			"movie_id":  "Movie Id is required",
			"seat_id":   "Seat Id is required",
			"user_name": "User Name is required",
		}
		if len(errs) != len(want) {
			t.Fatalf("expected %d errors, got %v", len(want), errs)
		}
		for field, message := range want {
			if errs[field] != message {
				t.Fatalf("expected %q for %s, got %q", message, field, errs[field])
			}
		}
	})

	t.Run("showtime accepts both layouts", func(t *testing.T) {
		want := time.Date(2025, 6, 1, 19, 30, 0, 0, time.UTC)
		for _, raw := range []string{"2025-06-01T19:30", "2025-06-01 19:30"} {
			req := &BookingRequest{MovieID: float64(1), SeatID: float64(2), UserName: "alice", Showtime: raw}
			fields, errs := req.Validate()
			if errs != nil {
				t.Fatalf("%q: expected no errors, got %v", raw, errs)
			}
			if fields.Showtime == nil || !fields.Showtime.Equal(want) {
				t.Fatalf("%q: expected showtime %v, got %v", raw, want, fields.Showtime)
			}
		}
	})

	errorCases := []struct {
		name    string
		req     BookingRequest
		field   string
		message string
	}{
		{"textual movie id", BookingRequest{MovieID: "one", SeatID: float64(2), UserName: "alice"}, "movie_id", "Movie ID must be a valid integer"},
		{"fractional seat id", BookingRequest{MovieID: float64(1), SeatID: 2.5, UserName: "alice"}, "seat_id", "Seat ID must be a valid integer"},
		{"blank user name", BookingRequest{MovieID: float64(1), SeatID: float64(2), UserName: "   "}, "user_name", "User Name is required"},
		{"email without at sign", BookingRequest{MovieID: float64(1), SeatID: float64(2), UserName: "alice", UserEmail: "alice.example.com"}, "user_email", "Invalid email format"},
		{"bad showtime", BookingRequest{MovieID: float64(1), SeatID: float64(2), UserName: "alice", Showtime: "tonight"}, "showtime", "Showtime must be in YYYY-MM-DDTHH:MM format"},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			fields, errs := tc.req.Validate()
			if fields != nil {
				t.Fatalf("expected no fields on error")
			}
			if got := errs[tc.field]; got != tc.message {
				t.Fatalf("expected %q for %s, got %q (all: %v)", tc.message, tc.field, got, errs)
			}
		})
	}

	t.Run("valid email is kept", func(t *testing.T) {
		req := &BookingRequest{MovieID: float64(1), SeatID: float64(2), UserName: "alice", UserEmail: "alice@example.com"}
		fields, errs := req.Validate()
		if errs != nil {
			t.Fatalf("expected no errors, got %v", errs)
		}
		if fields.UserEmail == nil || *fields.UserEmail != "alice@example.com" {
			t.Fatalf("expected email to be kept, got %v", fields.UserEmail)
		}
	})
}

func TestSeatRequest_Validate(t *testing.T) {
	t.Parallel()

	t.Run("label is trimmed and uppercased", func(t *testing.T) {
		fields, errs := (&SeatRequest{SeatNumber: " a12 "}).Validate()
		if errs != nil {
			t.Fatalf("expected no errors, got %v", errs)
		}
		if fields.SeatNumber != "A12" {
			t.Fatalf("expected A12, got %q", fields.SeatNumber)
		}
		if fields.IsBooked {
			t.Fatalf("expected is_booked to default to false")
		}
	})

	t.Run("missing label", func(t *testing.T) {
		_, errs := (&SeatRequest{}).Validate()
		if errs["seat_number"] != "Seat number is required" {
			t.Fatalf("expected seat_number error, got %v", errs)
		}
	})

	t.Run("is_booked truthiness", func(t *testing.T) {
		for raw, want := range map[any]bool{true: true, false: false, "yes": true, float64(0): false} {
			fields, errs := (&SeatRequest{SeatNumber: "B1", IsBooked: raw}).Validate()
			if errs != nil {
				t.Fatalf("expected no errors, got %v", errs)
			}
			if fields.IsBooked != want {
				t.Fatalf("is_booked=%v: expected %v, got %v", raw, want, fields.IsBooked)
			}
		}
	})
}
