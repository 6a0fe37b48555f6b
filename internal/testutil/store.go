// Package testutil provides an in-memory implementation of the repository
// layer so services and handlers can be tested without a database. The
// transaction runner serializes compound operations and rolls the store
// back on error, mirroring the commit/rollback semantics of the real one.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
)

type txKey struct{}

// Store is an in-memory entity store keyed by id.
type Store struct {
	mu sync.Mutex

	Movies   map[int64]*entity.Movie
	Seats    map[int64]*entity.Seat
	Bookings map[int64]*entity.Booking

	nextMovieID   int64
	nextSeatID    int64
	nextBookingID int64

	// FailBookingCreate simulates a storage failure inside the atomic
	// booking operation when set.
	FailBookingCreate error
}

func NewStore() *Store {
	return &Store{
		Movies:   make(map[int64]*entity.Movie),
		Seats:    make(map[int64]*entity.Seat),
		Bookings: make(map[int64]*entity.Booking),
	}
}

// Repository wires the store into the repository aggregate.
func (s *Store) Repository() *repository.Repository {
	return &repository.Repository{
		Tx:      s,
		Movie:   &movieRepo{store: s},
		Seat:    &seatRepo{store: s},
		Booking: &bookingRepo{store: s},
	}
}

// WithTx locks the store for the duration of fn and restores a snapshot
// when fn fails, so a failure partway through leaves no partial state.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.copyState()
	if err := fn(context.WithValue(ctx, txKey{}, struct{}{})); err != nil {
		s.restore(snapshot)
		return err
	}
	return nil
}

// lock acquires the store mutex unless the context already runs inside a
// transaction holding it.
func (s *Store) lock(ctx context.Context) func() {
	if ctx.Value(txKey{}) != nil {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

type state struct {
	movies   map[int64]*entity.Movie
	seats    map[int64]*entity.Seat
	bookings map[int64]*entity.Booking
}

func (s *Store) copyState() state {
	st := state{
		movies:   make(map[int64]*entity.Movie, len(s.Movies)),
		seats:    make(map[int64]*entity.Seat, len(s.Seats)),
		bookings: make(map[int64]*entity.Booking, len(s.Bookings)),
	}
	for id, m := range s.Movies {
		cp := *m
		st.movies[id] = &cp
	}
	for id, seat := range s.Seats {
		cp := *seat
		st.seats[id] = &cp
	}
	for id, b := range s.Bookings {
		cp := *b
		st.bookings[id] = &cp
	}
	return st
}

func (s *Store) restore(st state) {
	s.Movies = st.movies
	s.Seats = st.seats
	s.Bookings = st.bookings
}

// AddMovie inserts a movie directly, for test fixtures.
func (s *Store) AddMovie(movie entity.Movie) *entity.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextMovieID++
	movie.ID = s.nextMovieID
	s.Movies[movie.ID] = &movie
	return &movie
}

// AddSeat inserts a seat directly, for test fixtures.
func (s *Store) AddSeat(seat entity.Seat) *entity.Seat {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSeatID++
	seat.ID = s.nextSeatID
	s.Seats[seat.ID] = &seat
	return &seat
}

// AddBooking inserts a booking directly, for test fixtures.
func (s *Store) AddBooking(booking entity.Booking) *entity.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextBookingID++
	booking.ID = s.nextBookingID
	s.Bookings[booking.ID] = &booking
	return &booking
}

// ---------------- movie repository ----------------

type movieRepo struct {
	store *Store
}

func (r *movieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	defer r.store.lock(ctx)()
	r.store.nextMovieID++
	movie.ID = r.store.nextMovieID
	cp := *movie
	r.store.Movies[movie.ID] = &cp
	return nil
}

func (r *movieRepo) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	defer r.store.lock(ctx)()
	movies := make([]*entity.Movie, 0, len(r.store.Movies))
	for _, m := range r.store.Movies {
		cp := *m
		movies = append(movies, &cp)
	}
	sort.Slice(movies, func(i, j int) bool { return movies[i].ID < movies[j].ID })
	return movies, nil
}

func (r *movieRepo) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	defer r.store.lock(ctx)()
	movie, ok := r.store.Movies[id]
	if !ok {
		return nil, nil
	}
	cp := *movie
	return &cp, nil
}

func (r *movieRepo) Update(ctx context.Context, movie *entity.Movie) error {
	defer r.store.lock(ctx)()
	if _, ok := r.store.Movies[movie.ID]; !ok {
		return fmt.Errorf("movie %d not found", movie.ID)
	}
	cp := *movie
	r.store.Movies[movie.ID] = &cp
	return nil
}

func (r *movieRepo) Delete(ctx context.Context, id int64) error {
	defer r.store.lock(ctx)()
	if _, ok := r.store.Movies[id]; !ok {
		return fmt.Errorf("movie %d not found", id)
	}
	delete(r.store.Movies, id)
	return nil
}

func (r *movieRepo) Count(ctx context.Context) (int64, error) {
	defer r.store.lock(ctx)()
	return int64(len(r.store.Movies)), nil
}

// ---------------- seat repository ----------------

type seatRepo struct {
	store *Store
}

func (r *seatRepo) Create(ctx context.Context, seat *entity.Seat) error {
	defer r.store.lock(ctx)()
	r.store.nextSeatID++
	seat.ID = r.store.nextSeatID
	cp := *seat
	r.store.Seats[seat.ID] = &cp
	return nil
}

func (r *seatRepo) CreateBatch(ctx context.Context, seats []*entity.Seat) error {
	for _, seat := range seats {
		if err := r.Create(ctx, seat); err != nil {
			return err
		}
	}
	return nil
}

func (r *seatRepo) FindAll(ctx context.Context) ([]*entity.Seat, error) {
	defer r.store.lock(ctx)()
	return r.collect(func(*entity.Seat) bool { return true }), nil
}

func (r *seatRepo) FindAvailable(ctx context.Context) ([]*entity.Seat, error) {
	defer r.store.lock(ctx)()
	return r.collect(func(seat *entity.Seat) bool { return !seat.IsBooked }), nil
}

func (r *seatRepo) collect(keep func(*entity.Seat) bool) []*entity.Seat {
	seats := make([]*entity.Seat, 0, len(r.store.Seats))
	for _, seat := range r.store.Seats {
		if keep(seat) {
			cp := *seat
			seats = append(seats, &cp)
		}
	}
	sort.Slice(seats, func(i, j int) bool { return seats[i].SeatNumber < seats[j].SeatNumber })
	return seats
}

func (r *seatRepo) FindByID(ctx context.Context, id int64) (*entity.Seat, error) {
	defer r.store.lock(ctx)()
	seat, ok := r.store.Seats[id]
	if !ok {
		return nil, nil
	}
	cp := *seat
	return &cp, nil
}

func (r *seatRepo) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Seat, error) {
	return r.FindByID(ctx, id)
}

func (r *seatRepo) UpdateBooked(ctx context.Context, id int64, isBooked bool) error {
	defer r.store.lock(ctx)()
	seat, ok := r.store.Seats[id]
	if !ok {
		return fmt.Errorf("seat %d not found", id)
	}
	seat.IsBooked = isBooked
	return nil
}

func (r *seatRepo) Count(ctx context.Context) (int64, error) {
	defer r.store.lock(ctx)()
	return int64(len(r.store.Seats)), nil
}

// ---------------- booking repository ----------------

type bookingRepo struct {
	store *Store
}

func (r *bookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	defer r.store.lock(ctx)()
	if err := r.store.FailBookingCreate; err != nil {
		return err
	}
	r.store.nextBookingID++
	booking.ID = r.store.nextBookingID
	cp := *booking
	r.store.Bookings[booking.ID] = &cp
	return nil
}

func (r *bookingRepo) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	defer r.store.lock(ctx)()
	return r.collect(func(*entity.Booking) bool { return true }), nil
}

func (r *bookingRepo) FindByUserName(ctx context.Context, userName string) ([]*entity.Booking, error) {
	defer r.store.lock(ctx)()
	return r.collect(func(b *entity.Booking) bool { return b.UserName == userName }), nil
}

func (r *bookingRepo) FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Booking, error) {
	defer r.store.lock(ctx)()
	return r.collect(func(b *entity.Booking) bool { return b.MovieID == movieID }), nil
}

// collect returns bookings newest first, ties broken by id like the
// database index does.
func (r *bookingRepo) collect(keep func(*entity.Booking) bool) []*entity.Booking {
	bookings := make([]*entity.Booking, 0, len(r.store.Bookings))
	for _, b := range r.store.Bookings {
		if keep(b) {
			cp := *b
			bookings = append(bookings, &cp)
		}
	}
	sort.Slice(bookings, func(i, j int) bool {
		if !bookings[i].BookingDate.Equal(bookings[j].BookingDate) {
			return bookings[i].BookingDate.After(bookings[j].BookingDate)
		}
		return bookings[i].ID > bookings[j].ID
	})
	return bookings
}

func (r *bookingRepo) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	defer r.store.lock(ctx)()
	booking, ok := r.store.Bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *booking
	return &cp, nil
}

func (r *bookingRepo) Delete(ctx context.Context, id int64) error {
	defer r.store.lock(ctx)()
	if _, ok := r.store.Bookings[id]; !ok {
		return fmt.Errorf("booking %d not found", id)
	}
	delete(r.store.Bookings, id)
	return nil
}

func (r *bookingRepo) DeleteByMovieID(ctx context.Context, movieID int64) error {
	defer r.store.lock(ctx)()
	for id, b := range r.store.Bookings {
		if b.MovieID == movieID {
			delete(r.store.Bookings, id)
		}
	}
	return nil
}
