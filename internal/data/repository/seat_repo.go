package repository

import (
	"context"
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SeatRepository interface {
	Create(ctx context.Context, seat *entity.Seat) error
	CreateBatch(ctx context.Context, seats []*entity.Seat) error
	FindAll(ctx context.Context) ([]*entity.Seat, error)
	FindAvailable(ctx context.Context) ([]*entity.Seat, error)
	FindByID(ctx context.Context, id int64) (*entity.Seat, error)

	// FindByIDForUpdate locks the seat row for the rest of the enclosing
	// transaction so check-then-set sequences cannot interleave.
	FindByIDForUpdate(ctx context.Context, id int64) (*entity.Seat, error)
	UpdateBooked(ctx context.Context, id int64, isBooked bool) error
	Count(ctx context.Context) (int64, error)
}

type seatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatRepository(db database.PgxIface, log *zap.Logger) SeatRepository {
	return &seatRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat")),
	}
}

func (r *seatRepository) Create(ctx context.Context, seat *entity.Seat) error {
	query := `
		INSERT INTO seats (seat_number, is_booked)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, seat.SeatNumber, seat.IsBooked).Scan(&seat.ID)
	if err != nil {
		r.log.Error("Failed to create seat",
			zap.Error(err),
			zap.String("seat_number", seat.SeatNumber),
		)
		return fmt.Errorf("create seat %s: %w", seat.SeatNumber, err)
	}

	return nil
}

func (r *seatRepository) CreateBatch(ctx context.Context, seats []*entity.Seat) error {
	if len(seats) == 0 {
		return nil
	}

	// Build batch insert
	query := `INSERT INTO seats (seat_number, is_booked) VALUES `
	args := []interface{}{}

	for i, seat := range seats {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d)", i*2+1, i*2+2)
		args = append(args, seat.SeatNumber, seat.IsBooked)
	}

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to create batch seats",
			zap.Error(err),
			zap.Int("count", len(seats)),
		)
		return fmt.Errorf("create batch seats: %w", err)
	}

	return nil
}

func (r *seatRepository) FindAll(ctx context.Context) ([]*entity.Seat, error) {
	query := `
		SELECT id, seat_number, is_booked
		FROM seats
		ORDER BY seat_number
	`

	return r.querySeats(ctx, query)
}

func (r *seatRepository) FindAvailable(ctx context.Context) ([]*entity.Seat, error) {
	query := `
		SELECT id, seat_number, is_booked
		FROM seats
		WHERE is_booked = false
		ORDER BY seat_number
	`

	return r.querySeats(ctx, query)
}

func (r *seatRepository) querySeats(ctx context.Context, query string) ([]*entity.Seat, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find seats", zap.Error(err))
		return nil, fmt.Errorf("find seats: %w", err)
	}
	defer rows.Close()

	var seats []*entity.Seat
	for rows.Next() {
		var seat entity.Seat
		if err := rows.Scan(&seat.ID, &seat.SeatNumber, &seat.IsBooked); err != nil {
			r.log.Error("Failed to scan seat row", zap.Error(err))
			return nil, fmt.Errorf("scan seat row: %w", err)
		}
		seats = append(seats, &seat)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate seat rows", zap.Error(err))
		return nil, fmt.Errorf("iterate seat rows: %w", err)
	}

	return seats, nil
}

func (r *seatRepository) FindByID(ctx context.Context, id int64) (*entity.Seat, error) {
	query := `SELECT id, seat_number, is_booked FROM seats WHERE id = $1`
	return r.querySeat(ctx, query, id)
}

func (r *seatRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Seat, error) {
	query := `SELECT id, seat_number, is_booked FROM seats WHERE id = $1 FOR UPDATE`
	return r.querySeat(ctx, query, id)
}

func (r *seatRepository) querySeat(ctx context.Context, query string, id int64) (*entity.Seat, error) {
	var seat entity.Seat
	err := r.db.QueryRow(ctx, query, id).Scan(&seat.ID, &seat.SeatNumber, &seat.IsBooked)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find seat by ID",
			zap.Error(err),
			zap.Int64("seat_id", id),
		)
		return nil, fmt.Errorf("find seat by ID %d: %w", id, err)
	}

	return &seat, nil
}

func (r *seatRepository) UpdateBooked(ctx context.Context, id int64, isBooked bool) error {
	query := `UPDATE seats SET is_booked = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, isBooked)
	if err != nil {
		r.log.Error("Failed to update seat booked flag",
			zap.Error(err),
			zap.Int64("seat_id", id),
			zap.Bool("is_booked", isBooked),
		)
		return fmt.Errorf("update seat %d booked flag: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("seat %d not found", id)
	}

	return nil
}

func (r *seatRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM seats`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count seats", zap.Error(err))
		return 0, fmt.Errorf("count seats: %w", err)
	}

	return count, nil
}
