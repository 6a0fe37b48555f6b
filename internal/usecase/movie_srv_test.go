package usecase

import (
	"context"
	"errors"
	"testing"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/testutil"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

func newMovieService(store *testutil.Store) MovieService {
	repo := store.Repository()
	clock := utils.NewFixedClock(testTime)
	log := zap.NewNop()
	return NewMovieService(repo, NewBookingService(repo, clock, log), clock, log)
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestMovieService_CreateMovie(t *testing.T) {
	t.Parallel()

	t.Run("stamps creation time from the clock", func(t *testing.T) {
		store := testutil.NewStore()
		svc := newMovieService(store)

		resp, err := svc.CreateMovie(context.Background(), &request.MovieRequest{Title: "Inception"})
		if err != nil {
			t.Fatalf("create movie: %v", err)
		}
		if resp.ID == 0 {
			t.Fatalf("expected movie ID to be set")
		}
		if got := store.Movies[resp.ID].CreatedAt; !got.Equal(testTime) {
			t.Fatalf("expected created_at %v, got %v", testTime, got)
		}
	})

	t.Run("rejects invalid payloads with field errors", func(t *testing.T) {
		svc := newMovieService(testutil.NewStore())

		_, err := svc.CreateMovie(context.Background(), &request.MovieRequest{Duration: float64(-1)})

		var validationErr *entity.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if validationErr.Fields["title"] != "Title is required" {
			t.Fatalf("expected title error, got %v", validationErr.Fields)
		}
		if validationErr.Fields["duration"] != "Duration must be a positive number" {
			t.Fatalf("expected duration error, got %v", validationErr.Fields)
		}
	})
}

func TestMovieService_UpdateMovie(t *testing.T) {
	t.Parallel()

	t.Run("patches only the fields present", func(t *testing.T) {
		store := testutil.NewStore()
		movie := store.AddMovie(entity.Movie{Title: "Inception", Duration: intPtr(148), CreatedAt: testTime})
		svc := newMovieService(store)

		resp, err := svc.UpdateMovie(context.Background(), movie.ID, &request.MovieUpdateRequest{
			Description: strPtr("Dreams within dreams"),
		})
		if err != nil {
			t.Fatalf("update movie: %v", err)
		}
		if resp.Title != "Inception" {
			t.Fatalf("expected title untouched, got %q", resp.Title)
		}
		if resp.Description == nil || *resp.Description != "Dreams within dreams" {
			t.Fatalf("expected new description, got %v", resp.Description)
		}
		if resp.Duration == nil || *resp.Duration != 148 {
			t.Fatalf("expected duration untouched, got %v", resp.Duration)
		}
	})

	t.Run("empty release date clears it", func(t *testing.T) {
		store := testutil.NewStore()
		movie := store.AddMovie(entity.Movie{Title: "Inception", ReleaseDate: &testTime, CreatedAt: testTime})
		svc := newMovieService(store)

		resp, err := svc.UpdateMovie(context.Background(), movie.ID, &request.MovieUpdateRequest{
			ReleaseDate: strPtr(""),
		})
		if err != nil {
			t.Fatalf("update movie: %v", err)
		}
		if resp.ReleaseDate != nil {
			t.Fatalf("expected release_date cleared, got %v", *resp.ReleaseDate)
		}
	})

	t.Run("malformed release date is a field error", func(t *testing.T) {
		store := testutil.NewStore()
		movie := store.AddMovie(entity.Movie{Title: "Inception", CreatedAt: testTime})
		svc := newMovieService(store)

		_, err := svc.UpdateMovie(context.Background(), movie.ID, &request.MovieUpdateRequest{
			ReleaseDate: strPtr("July 2010"),
		})
		var validationErr *entity.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("unknown movie", func(t *testing.T) {
		svc := newMovieService(testutil.NewStore())
		_, err := svc.UpdateMovie(context.Background(), 9, &request.MovieUpdateRequest{Title: strPtr("X")})
		if !errors.Is(err, entity.ErrMovieNotFound) {
			t.Fatalf("expected ErrMovieNotFound, got %v", err)
		}
	})
}

func TestMovieService_DeleteMovie(t *testing.T) {
	t.Parallel()

	store := testutil.NewStore()
	movie := store.AddMovie(entity.Movie{Title: "Inception", CreatedAt: testTime})
	seat := store.AddSeat(entity.Seat{SeatNumber: "A1", IsBooked: true})
	store.AddBooking(entity.Booking{MovieID: movie.ID, SeatID: seat.ID, UserName: "alice", BookingDate: testTime})
	svc := newMovieService(store)

	if err := svc.DeleteMovie(context.Background(), movie.ID); err != nil {
		t.Fatalf("delete movie: %v", err)
	}
	if _, ok := store.Movies[movie.ID]; ok {
		t.Fatalf("expected movie gone")
	}
	if store.Seats[seat.ID].IsBooked {
		t.Fatalf("expected seat released by the cascade")
	}
	if len(store.Bookings) != 0 {
		t.Fatalf("expected bookings gone, got %d", len(store.Bookings))
	}
}

func TestSeatService_CreateSeat(t *testing.T) {
	t.Parallel()

	store := testutil.NewStore()
	svc := NewSeatService(store.Repository(), zap.NewNop())

	resp, err := svc.CreateSeat(context.Background(), &request.SeatRequest{SeatNumber: " f1 "})
	if err != nil {
		t.Fatalf("create seat: %v", err)
	}
	if resp.SeatNumber != "F1" {
		t.Fatalf("expected normalized label F1, got %q", resp.SeatNumber)
	}

	_, err = svc.CreateSeat(context.Background(), &request.SeatRequest{})
	var validationErr *entity.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
