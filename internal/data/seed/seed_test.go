package seed

import (
	"context"
	"testing"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/testutil"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

var theater = utils.TheaterConfig{Seed: true, Rows: "A,B,C,D,E", SeatsPerRow: 8}

func TestSeatGrid(t *testing.T) {
	t.Parallel()

	seats := SeatGrid("A,B,C,D,E", 8)
	if len(seats) != 40 {
		t.Fatalf("expected 40 seats, got %d", len(seats))
	}
	if seats[0].SeatNumber != "A1" || seats[7].SeatNumber != "A8" || seats[39].SeatNumber != "E8" {
		t.Fatalf("unexpected labels: %s ... %s", seats[0].SeatNumber, seats[39].SeatNumber)
	}
	for _, seat := range seats {
		if seat.IsBooked {
			t.Fatalf("seed seats must start free, %s is booked", seat.SeatNumber)
		}
	}

	lower := SeatGrid(" a , b ", 2)
	if len(lower) != 4 || lower[0].SeatNumber != "A1" || lower[3].SeatNumber != "B2" {
		t.Fatalf("expected normalized row letters, got %v", lower)
	}

	if got := SeatGrid("", 8); len(got) != 0 {
		t.Fatalf("expected no seats for empty rows, got %d", len(got))
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	clock := utils.NewFixedClock(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	t.Run("fills an empty store", func(t *testing.T) {
		store := testutil.NewStore()

		if err := Run(context.Background(), store.Repository(), theater, clock, zap.NewNop()); err != nil {
			t.Fatalf("seed: %v", err)
		}

		if len(store.Movies) != 4 {
			t.Fatalf("expected 4 sample movies, got %d", len(store.Movies))
		}
		if len(store.Seats) != 40 {
			t.Fatalf("expected 40 seats, got %d", len(store.Seats))
		}
	})

	t.Run("leaves existing data untouched", func(t *testing.T) {
		store := testutil.NewStore()
		store.AddMovie(entity.Movie{Title: "Existing"})
		store.AddSeat(entity.Seat{SeatNumber: "Z9"})

		if err := Run(context.Background(), store.Repository(), theater, clock, zap.NewNop()); err != nil {
			t.Fatalf("seed: %v", err)
		}

		if len(store.Movies) != 1 {
			t.Fatalf("expected existing catalog to stay, got %d movies", len(store.Movies))
		}
		if len(store.Seats) != 1 {
			t.Fatalf("expected existing layout to stay, got %d seats", len(store.Seats))
		}
	})

	t.Run("seeds seats even when movies exist", func(t *testing.T) {
		store := testutil.NewStore()
		store.AddMovie(entity.Movie{Title: "Existing"})

		if err := Run(context.Background(), store.Repository(), theater, clock, zap.NewNop()); err != nil {
			t.Fatalf("seed: %v", err)
		}

		if len(store.Movies) != 1 {
			t.Fatalf("expected movies untouched, got %d", len(store.Movies))
		}
		if len(store.Seats) != 40 {
			t.Fatalf("expected 40 seats, got %d", len(store.Seats))
		}
	})
}
