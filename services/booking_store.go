package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/yahiasanji/spaceodysseybooking/database"
	"github.com/yahiasanji/spaceodysseybooking/models"
)

// Package-level store wiring, set once at startup (or per test)
var (
	bookingStore BookingStore
	draftStore   DraftStore
	sessionStore SessionStore
)

// InitStores installs the persistence backends for bookings, pending
// drafts and auth sessions
func InitStores(bookings BookingStore, drafts DraftStore, sessions SessionStore) {
	bookingStore = bookings
	draftStore = drafts
	sessionStore = sessions
}

// BookingStore is the append-only booking collection
type BookingStore interface {
	Append(ctx context.Context, booking *models.Booking) error
	ListByUser(ctx context.Context, userEmail string) ([]models.Booking, error)
	Get(ctx context.Context, id string) (*models.Booking, error)
}

// PostgresBookingStore persists bookings in the bookings and
// booking_passengers tables
type PostgresBookingStore struct{}

// NewPostgresBookingStore creates the Postgres-backed booking collection
func NewPostgresBookingStore() *PostgresBookingStore {
	return &PostgresBookingStore{}
}

// Append inserts the booking and its passengers in one transaction
func (s *PostgresBookingStore) Append(ctx context.Context, b *models.Booking) error {
	db := database.GetDB()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO bookings (
			id, user_id, user_email, booking_date, status,
			destination_id, destination_name, destination_description,
			travel_duration, distance, gravity, temperature,
			destination_price, currency, departure_date,
			accommodation_id, accommodation_name, accommodation_description,
			accommodation_size, occupancy, price_per_day,
			total_price, party_type
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
	`,
		b.ID, b.UserID, b.UserEmail, b.BookingDate, b.Status,
		b.Destination.ID, b.Destination.Name, b.Destination.Description,
		b.Destination.TravelDuration, b.Destination.Distance, b.Destination.Gravity, b.Destination.Temperature,
		b.Destination.Price, b.Destination.Currency, b.DepartureDate,
		b.Accommodation.ID, b.Accommodation.Name, b.Accommodation.ShortDescription,
		b.Accommodation.Size, b.Accommodation.Occupancy, b.Accommodation.PricePerDay,
		b.TotalPrice, string(b.PartyType),
	)
	if err != nil {
		return fmt.Errorf("failed to save booking: %w", err)
	}

	for _, p := range b.Passengers {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO booking_passengers (booking_id, position, first_name, last_name, email, phone, special_requirements)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, b.ID, p.Position, p.FirstName, p.LastName, p.Email, p.Phone, p.SpecialRequirements)
		if err != nil {
			return fmt.Errorf("failed to save passenger: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit booking: %w", err)
	}
	return nil
}

const bookingColumns = `
	id, user_id, user_email, booking_date, status,
	destination_id, destination_name, destination_description,
	travel_duration, distance, gravity, temperature,
	destination_price, currency, departure_date,
	accommodation_id, accommodation_name, accommodation_description,
	accommodation_size, occupancy, price_per_day,
	total_price, party_type`

func scanBooking(row interface{ Scan(...interface{}) error }) (*models.Booking, error) {
	var b models.Booking
	var partyType string
	err := row.Scan(
		&b.ID, &b.UserID, &b.UserEmail, &b.BookingDate, &b.Status,
		&b.Destination.ID, &b.Destination.Name, &b.Destination.Description,
		&b.Destination.TravelDuration, &b.Destination.Distance, &b.Destination.Gravity, &b.Destination.Temperature,
		&b.Destination.Price, &b.Destination.Currency, &b.DepartureDate,
		&b.Accommodation.ID, &b.Accommodation.Name, &b.Accommodation.ShortDescription,
		&b.Accommodation.Size, &b.Accommodation.Occupancy, &b.Accommodation.PricePerDay,
		&b.TotalPrice, &partyType,
	)
	if err != nil {
		return nil, err
	}
	b.PartyType = models.PartyType(partyType)
	return &b, nil
}

func (s *PostgresBookingStore) loadPassengers(ctx context.Context, bookingID string) ([]models.Passenger, error) {
	db := database.GetDB()

	rows, err := db.QueryContext(ctx, `
		SELECT position, first_name, last_name, email, phone, special_requirements
		FROM booking_passengers
		WHERE booking_id = $1
		ORDER BY position
	`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var passengers []models.Passenger
	for rows.Next() {
		var p models.Passenger
		if err := rows.Scan(&p.Position, &p.FirstName, &p.LastName, &p.Email, &p.Phone, &p.SpecialRequirements); err != nil {
			return nil, err
		}
		passengers = append(passengers, p)
	}
	return passengers, rows.Err()
}

// ListByUser returns the user's bookings, newest first
func (s *PostgresBookingStore) ListByUser(ctx context.Context, userEmail string) ([]models.Booking, error) {
	db := database.GetDB()

	rows, err := db.QueryContext(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE user_email = $1
		ORDER BY booking_date DESC
	`, userEmail)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning booking: %w", err)
		}
		bookings = append(bookings, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range bookings {
		passengers, err := s.loadPassengers(ctx, bookings[i].ID)
		if err != nil {
			return nil, err
		}
		bookings[i].Passengers = passengers
	}
	return bookings, nil
}

// Get returns one booking by id
func (s *PostgresBookingStore) Get(ctx context.Context, id string) (*models.Booking, error) {
	db := database.GetDB()

	row := db.QueryRowContext(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE id = $1
	`, id)

	b, err := scanBooking(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	b.Passengers, err = s.loadPassengers(ctx, id)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// MemoryBookingStore is an in-process booking collection for tests and
// local runs
type MemoryBookingStore struct {
	mu       sync.Mutex
	bookings []models.Booking
}

// NewMemoryBookingStore creates an empty in-memory booking collection
func NewMemoryBookingStore() *MemoryBookingStore {
	return &MemoryBookingStore{}
}

func (s *MemoryBookingStore) Append(_ context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, *b)
	return nil
}

func (s *MemoryBookingStore) ListByUser(_ context.Context, userEmail string) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Booking
	for _, b := range s.bookings {
		if b.UserEmail == userEmail {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *MemoryBookingStore) Get(_ context.Context, id string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.ID == id {
			booking := b
			return &booking, nil
		}
	}
	return nil, ErrBookingNotFound
}
