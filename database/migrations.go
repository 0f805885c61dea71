package database

import (
	"database/sql"
	"log"
)

// RunMigrations ensures all required tables exist
// Note: In production, use a proper migration tool
func RunMigrations(db *sql.DB) error {
	log.Println("Checking database schema...")

	// Check if tables exist
	var exists bool
	err := db.QueryRow(`
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_name = 'bookings'
		)
	`).Scan(&exists)

	if err != nil {
		return err
	}

	if exists {
		log.Println("Database schema already exists, skipping migrations")
		return nil
	}

	log.Println("Creating database schema...")

	// Bookings are append-only records with denormalized destination and
	// accommodation snapshots, so catalog edits never invalidate them.
	_, err = db.Exec(`
		CREATE TABLE bookings (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			user_email TEXT NOT NULL,
			booking_date TIMESTAMPTZ NOT NULL,
			status TEXT NOT NULL,
			destination_id TEXT NOT NULL,
			destination_name TEXT NOT NULL,
			destination_description TEXT NOT NULL DEFAULT '',
			travel_duration TEXT NOT NULL,
			distance TEXT NOT NULL DEFAULT '',
			gravity TEXT NOT NULL DEFAULT '',
			temperature TEXT NOT NULL DEFAULT '',
			destination_price DOUBLE PRECISION NOT NULL,
			currency TEXT NOT NULL DEFAULT 'USD',
			departure_date TEXT NOT NULL,
			accommodation_id TEXT NOT NULL,
			accommodation_name TEXT NOT NULL,
			accommodation_description TEXT NOT NULL DEFAULT '',
			accommodation_size TEXT NOT NULL DEFAULT '',
			occupancy TEXT NOT NULL DEFAULT '',
			price_per_day DOUBLE PRECISION NOT NULL,
			total_price DOUBLE PRECISION NOT NULL,
			party_type TEXT NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		CREATE TABLE booking_passengers (
			id SERIAL PRIMARY KEY,
			booking_id TEXT NOT NULL REFERENCES bookings(id),
			position INT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			special_requirements TEXT NOT NULL DEFAULT ''
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`CREATE INDEX idx_bookings_user_email ON bookings(user_email)`)
	if err != nil {
		return err
	}

	log.Println("Database schema created")
	return nil
}
