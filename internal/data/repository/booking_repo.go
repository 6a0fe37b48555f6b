package repository

import (
	"context"
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	FindByID(ctx context.Context, id int64) (*entity.Booking, error)
	FindByUserName(ctx context.Context, userName string) ([]*entity.Booking, error)
	FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Booking, error)
	Delete(ctx context.Context, id int64) error
	DeleteByMovieID(ctx context.Context, movieID int64) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (movie_id, seat_id, user_name, user_email, booking_date, showtime)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		booking.MovieID,
		booking.SeatID,
		booking.UserName,
		booking.UserEmail,
		booking.BookingDate,
		booking.Showtime,
	).Scan(&booking.ID)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int64("movie_id", booking.MovieID),
			zap.Int64("seat_id", booking.SeatID),
			zap.String("user_name", booking.UserName),
		)
		return fmt.Errorf("create booking for seat %d: %w", booking.SeatID, err)
	}

	return nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	query := `
		SELECT id, movie_id, seat_id, user_name, user_email, booking_date, showtime
		FROM bookings
		ORDER BY booking_date DESC
	`

	return r.queryBookings(ctx, query)
}

func (r *bookingRepository) FindByUserName(ctx context.Context, userName string) ([]*entity.Booking, error) {
	query := `
		SELECT id, movie_id, seat_id, user_name, user_email, booking_date, showtime
		FROM bookings
		WHERE user_name = $1
		ORDER BY booking_date DESC
	`

	return r.queryBookings(ctx, query, userName)
}

func (r *bookingRepository) FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Booking, error) {
	query := `
		SELECT id, movie_id, seat_id, user_name, user_email, booking_date, showtime
		FROM bookings
		WHERE movie_id = $1
		ORDER BY booking_date DESC
	`

	return r.queryBookings(ctx, query, movieID)
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]*entity.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find bookings", zap.Error(err))
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.MovieID,
			&booking.SeatID,
			&booking.UserName,
			&booking.UserEmail,
			&booking.BookingDate,
			&booking.Showtime,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate booking rows", zap.Error(err))
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	query := `
		SELECT id, movie_id, seat_id, user_name, user_email, booking_date, showtime
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.MovieID,
		&booking.SeatID,
		&booking.UserName,
		&booking.UserEmail,
		&booking.BookingDate,
		&booking.Showtime,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return nil, fmt.Errorf("find booking by ID %d: %w", id, err)
	}

	return &booking, nil
}

func (r *bookingRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return fmt.Errorf("delete booking %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %d not found", id)
	}

	r.log.Info("Booking deleted", zap.Int64("booking_id", id))
	return nil
}

func (r *bookingRepository) DeleteByMovieID(ctx context.Context, movieID int64) error {
	query := `DELETE FROM bookings WHERE movie_id = $1`

	_, err := r.db.Exec(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to delete bookings by movie ID",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return fmt.Errorf("delete bookings for movie %d: %w", movieID, err)
	}

	return nil
}
