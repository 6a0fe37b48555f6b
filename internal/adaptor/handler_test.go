package adaptor_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/testutil"
	"movie-booking/internal/wire"

	"go.uber.org/zap"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

func newTestAPI(t *testing.T, store *testutil.Store) *httptest.Server {
	t.Helper()
	app := wire.Wiring(store.Repository(), zap.NewNop())
	server := httptest.NewServer(app.Router)
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url string, body any) (int, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, env
}

func TestBookingFlow(t *testing.T) {
	store := testutil.NewStore()
	movie := store.AddMovie(entity.Movie{Title: "Inception", CreatedAt: time.Now()})
	a1 := store.AddSeat(entity.Seat{SeatNumber: "A1"})
	store.AddSeat(entity.Seat{SeatNumber: "A2"})
	a3 := store.AddSeat(entity.Seat{SeatNumber: "A3", IsBooked: true})
	blocker := store.AddBooking(entity.Booking{MovieID: movie.ID, SeatID: a3.ID, UserName: "bob", BookingDate: time.Now()})
	server := newTestAPI(t, store)

	t.Run("booking a taken seat fails both ways", func(t *testing.T) {
		code, _ := doJSON(t, http.MethodPost, fmt.Sprintf("%s/seats/%d/book", server.URL, a3.ID), nil)
		if code != http.StatusBadRequest {
			t.Fatalf("expected 400 booking a taken seat, got %d", code)
		}

		code, _ = doJSON(t, http.MethodPost, server.URL+"/bookings", map[string]any{
			"movie_id":  movie.ID,
			"seat_id":   a3.ID,
			"user_name": "alice",
		})
		if code != http.StatusBadRequest {
			t.Fatalf("expected 400 creating booking on taken seat, got %d", code)
		}
	})

	t.Run("cancelling frees the seat", func(t *testing.T) {
		code, _ := doJSON(t, http.MethodDelete, fmt.Sprintf("%s/bookings/%d", server.URL, blocker.ID), nil)
		if code != http.StatusOK {
			t.Fatalf("expected 200 cancelling booking, got %d", code)
		}

		code, env := doJSON(t, http.MethodGet, fmt.Sprintf("%s/seats/%d", server.URL, a3.ID), nil)
		if code != http.StatusOK {
			t.Fatalf("expected 200 fetching seat, got %d", code)
		}
		var seat struct {
			IsBooked bool `json:"is_booked"`
		}
		if err := json.Unmarshal(env.Data, &seat); err != nil {
			t.Fatalf("decode seat: %v", err)
		}
		if seat.IsBooked {
			t.Fatalf("expected seat to be free after cancellation")
		}
	})

	t.Run("seat can then be booked normally", func(t *testing.T) {
		code, env := doJSON(t, http.MethodPost, server.URL+"/bookings", map[string]any{
			"movie_id":  movie.ID,
			"seat_id":   a3.ID,
			"user_name": "alice",
			"showtime":  "2025-06-01T19:30",
		})
		if code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", code, env.Message)
		}
		var booking struct {
			ID         int64   `json:"id"`
			SeatNumber *string `json:"seat_number"`
		}
		if err := json.Unmarshal(env.Data, &booking); err != nil {
			t.Fatalf("decode booking: %v", err)
		}
		if booking.SeatNumber == nil || *booking.SeatNumber != "A3" {
			t.Fatalf("expected seat_number A3, got %v", booking.SeatNumber)
		}
	})

	t.Run("spare seat roundtrip via escape hatch", func(t *testing.T) {
		code, _ := doJSON(t, http.MethodPost, fmt.Sprintf("%s/seats/%d/book", server.URL, a1.ID), nil)
		if code != http.StatusOK {
			t.Fatalf("expected 200 booking free seat, got %d", code)
		}
		code, _ = doJSON(t, http.MethodPost, fmt.Sprintf("%s/seats/%d/release", server.URL, a1.ID), nil)
		if code != http.StatusOK {
			t.Fatalf("expected 200 releasing seat, got %d", code)
		}
	})
}

func TestCreateBookingValidation(t *testing.T) {
	server := newTestAPI(t, testutil.NewStore())

	code, env := doJSON(t, http.MethodPost, server.URL+"/bookings", map[string]any{})
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if env.Message != "Validation failed" {
		t.Fatalf("expected validation message, got %q", env.Message)
	}

	var fields map[string]string
	if err := json.Unmarshal(env.Errors, &fields); err != nil {
		t.Fatalf("decode errors: %v", err)
	}
	for _, field := range []string{"movie_id", "seat_id", "user_name"} {
		if _, ok := fields[field]; !ok {
			t.Fatalf("expected error for %s, got %v", field, fields)
		}
	}
}

func TestNotFoundResponses(t *testing.T) {
	store := testutil.NewStore()
	store.AddSeat(entity.Seat{SeatNumber: "A1"})
	server := newTestAPI(t, store)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/movies/99"},
		{http.MethodGet, "/seats/99"},
		{http.MethodGet, "/bookings/99"},
		{http.MethodDelete, "/movies/99"},
		{http.MethodDelete, "/bookings/99"},
		{http.MethodPost, "/seats/99/book"},
	}
	for _, tc := range paths {
		code, _ := doJSON(t, tc.method, server.URL+tc.path, nil)
		if code != http.StatusNotFound {
			t.Fatalf("%s %s: expected 404, got %d", tc.method, tc.path, code)
		}
	}

	code, _ := doJSON(t, http.MethodPost, server.URL+"/bookings", map[string]any{
		"movie_id":  99,
		"seat_id":   1,
		"user_name": "alice",
	})
	if code != http.StatusNotFound {
		t.Fatalf("expected 404 for booking on missing movie, got %d", code)
	}
}

func TestMovieEndpoints(t *testing.T) {
	store := testutil.NewStore()
	server := newTestAPI(t, store)

	var movieID int64
	t.Run("create", func(t *testing.T) {
		code, env := doJSON(t, http.MethodPost, server.URL+"/movies", map[string]any{
			"title":        "Interstellar",
			"duration":     169,
			"release_date": "2014-11-07",
		})
		if code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", code, env.Message)
		}
		var movie struct {
			ID          int64   `json:"id"`
			Title       string  `json:"title"`
			ReleaseDate *string `json:"release_date"`
		}
		if err := json.Unmarshal(env.Data, &movie); err != nil {
			t.Fatalf("decode movie: %v", err)
		}
		if movie.Title != "Interstellar" {
			t.Fatalf("unexpected title %q", movie.Title)
		}
		if movie.ReleaseDate == nil || *movie.ReleaseDate != "2014-11-07" {
			t.Fatalf("expected release_date 2014-11-07, got %v", movie.ReleaseDate)
		}
		movieID = movie.ID
	})

	t.Run("create without title", func(t *testing.T) {
		code, env := doJSON(t, http.MethodPost, server.URL+"/movies", map[string]any{"duration": 90})
		if code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", code)
		}
		var fields map[string]string
		if err := json.Unmarshal(env.Errors, &fields); err != nil {
			t.Fatalf("decode errors: %v", err)
		}
		if fields["title"] != "Title is required" {
			t.Fatalf("expected title error, got %v", fields)
		}
	})

	t.Run("partial update", func(t *testing.T) {
		code, env := doJSON(t, http.MethodPut, fmt.Sprintf("%s/movies/%d", server.URL, movieID), map[string]any{
			"description": "Space and time",
		})
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", code, env.Message)
		}
		var movie struct {
			Title       string  `json:"title"`
			Description *string `json:"description"`
		}
		if err := json.Unmarshal(env.Data, &movie); err != nil {
			t.Fatalf("decode movie: %v", err)
		}
		if movie.Title != "Interstellar" {
			t.Fatalf("expected title to survive partial update, got %q", movie.Title)
		}
		if movie.Description == nil || *movie.Description != "Space and time" {
			t.Fatalf("expected updated description, got %v", movie.Description)
		}
	})

	t.Run("patch errors use wire field names", func(t *testing.T) {
		code, env := doJSON(t, http.MethodPut, fmt.Sprintf("%s/movies/%d", server.URL, movieID), map[string]any{
			"release_date": "July 2010",
		})
		if code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", code)
		}
		var fields map[string]string
		if err := json.Unmarshal(env.Errors, &fields); err != nil {
			t.Fatalf("decode errors: %v", err)
		}
		if _, ok := fields["release_date"]; !ok {
			t.Fatalf("expected release_date key, got %v", fields)
		}
	})

	t.Run("delete cascades bookings", func(t *testing.T) {
		seat := store.AddSeat(entity.Seat{SeatNumber: "C1"})
		code, _ := doJSON(t, http.MethodPost, server.URL+"/bookings", map[string]any{
			"movie_id":  movieID,
			"seat_id":   seat.ID,
			"user_name": "alice",
		})
		if code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", code)
		}

		code, _ = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/movies/%d", server.URL, movieID), nil)
		if code != http.StatusOK {
			t.Fatalf("expected 200 deleting movie, got %d", code)
		}

		if store.Seats[seat.ID].IsBooked {
			t.Fatalf("expected cascade to free the seat")
		}
		if len(store.Bookings) != 0 {
			t.Fatalf("expected bookings to be gone, got %d", len(store.Bookings))
		}
	})
}

func TestUserBookingsEndpoint(t *testing.T) {
	store := testutil.NewStore()
	movie := store.AddMovie(entity.Movie{Title: "Inception", CreatedAt: time.Now()})
	seat := store.AddSeat(entity.Seat{SeatNumber: "A1", IsBooked: true})
	store.AddBooking(entity.Booking{MovieID: movie.ID, SeatID: seat.ID, UserName: "alice", BookingDate: time.Now()})
	server := newTestAPI(t, store)

	code, env := doJSON(t, http.MethodGet, server.URL+"/bookings/user/alice", nil)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var bookings []struct {
		UserName string `json:"user_name"`
	}
	if err := json.Unmarshal(env.Data, &bookings); err != nil {
		t.Fatalf("decode bookings: %v", err)
	}
	if len(bookings) != 1 || bookings[0].UserName != "alice" {
		t.Fatalf("unexpected bookings: %v", bookings)
	}

	code, env = doJSON(t, http.MethodGet, server.URL+"/bookings/user/carol", nil)
	if code != http.StatusOK {
		t.Fatalf("expected 200 for unknown user, got %d", code)
	}
	if string(env.Data) != "" && string(env.Data) != "null" && string(env.Data) != "[]" {
		var none []json.RawMessage
		if err := json.Unmarshal(env.Data, &none); err != nil || len(none) != 0 {
			t.Fatalf("expected empty booking list, got %s", env.Data)
		}
	}
}
