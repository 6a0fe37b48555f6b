package response

import (
	"time"

	"movie-booking/internal/data/entity"
)

type MovieResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	ReleaseDate *string   `json:"release_date"`
	Duration    *int      `json:"duration"`
	Poster      *string   `json:"poster"`
	CreatedAt   time.Time `json:"created_at"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	var releaseDate *string
	if movie.ReleaseDate != nil {
		d := movie.ReleaseDate.Format("2006-01-02")
		releaseDate = &d
	}

	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		ReleaseDate: releaseDate,
		Duration:    movie.Duration,
		Poster:      movie.Poster,
		CreatedAt:   movie.CreatedAt,
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	responses := make([]MovieResponse, len(movies))
	for i, movie := range movies {
		responses[i] = MovieToResponse(movie)
	}
	return responses
}
