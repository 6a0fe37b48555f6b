package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, movieID int64) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID int64, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID int64) error
}

type movieService struct {
	repo    *repository.Repository
	booking BookingService
	clock   utils.Clock
	log     *zap.Logger
}

func NewMovieService(repo *repository.Repository, booking BookingService, clock utils.Clock, log *zap.Logger) MovieService {
	return &movieService{
		repo:    repo,
		booking: booking,
		clock:   clock,
		log:     log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get movies: %w", err)
	}
	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID int64) (*response.MovieResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get movie %d: %w", movieID, err)
	}
	if movie == nil {
		return nil, entity.ErrMovieNotFound
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	fields, validationErrors := req.Validate()
	if validationErrors != nil {
		s.log.Warn("Create movie validation failed", zap.Any("errors", validationErrors))
		return nil, entity.NewValidationError(validationErrors)
	}

	movie := &entity.Movie{
		Title:       fields.Title,
		Description: fields.Description,
		ReleaseDate: fields.ReleaseDate,
		Duration:    fields.Duration,
		Poster:      fields.Poster,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		return nil, err
	}

	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

// UpdateMovie applies a partial patch: only fields present in the request
// are changed.
func (s *movieService) UpdateMovie(ctx context.Context, movieID int64, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get movie %d: %w", movieID, err)
	}
	if movie == nil {
		return nil, entity.ErrMovieNotFound
	}

	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.Description != nil {
		movie.Description = req.Description
	}
	if req.ReleaseDate != nil {
		if *req.ReleaseDate == "" {
			movie.ReleaseDate = nil
		} else {
			date, err := time.Parse("2006-01-02", *req.ReleaseDate)
			if err != nil {
				return nil, entity.NewValidationError(map[string]string{
					"release_date": "Release date must be in YYYY-MM-DD format",
				})
			}
			movie.ReleaseDate = &date
		}
	}
	if req.Duration != nil {
		movie.Duration = req.Duration
	}
	if req.Poster != nil {
		movie.Poster = req.Poster
	}

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		return nil, err
	}

	s.log.Info("Movie updated", zap.Int64("movie_id", movieID))

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

// DeleteMovie cascades through the booking service so every booking for
// the movie is removed and its seat released in the same atomic unit.
func (s *movieService) DeleteMovie(ctx context.Context, movieID int64) error {
	return s.booking.DeleteMovieCascade(ctx, movieID)
}
