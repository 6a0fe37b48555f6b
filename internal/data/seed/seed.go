package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

func ptr[T any](v T) *T {
	return &v
}

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

// sampleMovies is the fixture catalog inserted on first startup.
func sampleMovies(now time.Time) []*entity.Movie {
	return []*entity.Movie{
		{
			Title:       "The Dark Knight",
			Description: ptr("Batman faces the Joker in this epic thriller."),
			ReleaseDate: date(2008, time.July, 18),
			Duration:    ptr(152),
			CreatedAt:   now,
		},
		{
			Title:       "Inception",
			Description: ptr("A thief who steals corporate secrets through dream-sharing technology."),
			ReleaseDate: date(2010, time.July, 16),
			Duration:    ptr(148),
			CreatedAt:   now,
		},
		{
			Title:       "Interstellar",
			Description: ptr("A team of explorers travel through a wormhole in space."),
			ReleaseDate: date(2014, time.November, 7),
			Duration:    ptr(169),
			CreatedAt:   now,
		},
		{
			Title:       "The Matrix",
			Description: ptr("A computer programmer discovers the true nature of reality."),
			ReleaseDate: date(1999, time.March, 31),
			Duration:    ptr(136),
			CreatedAt:   now,
		},
	}
}

// Run fills empty tables with the sample catalog and the configured seat
// grid. Tables with data are left untouched, so restarts are safe.
func Run(ctx context.Context, repo *repository.Repository, config utils.TheaterConfig, clock utils.Clock, log *zap.Logger) error {
	log = log.With(zap.String("component", "seed"))

	movieCount, err := repo.Movie.Count(ctx)
	if err != nil {
		return fmt.Errorf("count movies: %w", err)
	}

	if movieCount == 0 {
		now := clock.Now()
		for _, movie := range sampleMovies(now) {
			if err := repo.Movie.Create(ctx, movie); err != nil {
				return fmt.Errorf("seed movie %q: %w", movie.Title, err)
			}
		}
		log.Info("Sample movies seeded", zap.Int("count", len(sampleMovies(now))))
	}

	seatCount, err := repo.Seat.Count(ctx)
	if err != nil {
		return fmt.Errorf("count seats: %w", err)
	}

	if seatCount == 0 {
		seats := SeatGrid(config.Rows, config.SeatsPerRow)
		if err := repo.Seat.CreateBatch(ctx, seats); err != nil {
			return fmt.Errorf("seed seats: %w", err)
		}
		log.Info("Seat layout seeded", zap.Int("count", len(seats)))
	}

	return nil
}

// SeatGrid builds the fixed theater layout: one seat per row letter and
// column number, labeled A1..A8, B1..B8 and so on.
func SeatGrid(rows string, seatsPerRow int) []*entity.Seat {
	var seats []*entity.Seat
	for _, row := range strings.Split(rows, ",") {
		row = strings.TrimSpace(strings.ToUpper(row))
		if row == "" {
			continue
		}
		for num := 1; num <= seatsPerRow; num++ {
			seats = append(seats, &entity.Seat{
				SeatNumber: fmt.Sprintf("%s%d", row, num),
			})
		}
	}
	return seats
}
