package models

import "time"

// PartyType is the passenger-count category chosen on the form
type PartyType string

const (
	PartySolo   PartyType = "solo"
	PartyCouple PartyType = "couple"
	PartyGroup  PartyType = "group"
)

// Valid reports whether the party type is one of the known categories
func (p PartyType) Valid() bool {
	switch p {
	case PartySolo, PartyCouple, PartyGroup:
		return true
	}
	return false
}

// MaxPassengers returns the upper bound on passenger forms for the party type
func (p PartyType) MaxPassengers() int {
	switch p {
	case PartyCouple:
		return 2
	case PartyGroup:
		return 6
	default:
		return 1
	}
}

// DefaultPassengers returns the number of forms the roster reconciles to
// when switching to the party type (solo 1, couple 2, group 3)
func (p PartyType) DefaultPassengers() int {
	switch p {
	case PartyCouple:
		return 2
	case PartyGroup:
		return 3
	default:
		return 1
	}
}

// Passenger holds the fields of one passenger form entry
type Passenger struct {
	Position            int    `json:"position"` // 1-based, contiguous
	FirstName           string `json:"first_name"`
	LastName            string `json:"last_name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	SpecialRequirements string `json:"special_requirements"`
}

// Booking status
const (
	BookingStatusConfirmed = "confirmed"
)

// Booking represents a completed booking record. Destination and
// accommodation are denormalized snapshots so the record stays valid even if
// the catalog changes later. Records are append-only and never mutated.
type Booking struct {
	ID            string        `json:"booking_id"`
	UserID        string        `json:"user_id"`
	UserEmail     string        `json:"user_email"`
	BookingDate   time.Time     `json:"booking_date"`
	Status        string        `json:"status"`
	Destination   Destination   `json:"destination"`
	DepartureDate string        `json:"departure_date"` // YYYY-MM-DD
	Accommodation Accommodation `json:"accommodation"`
	Passengers    []Passenger   `json:"passengers"`
	TotalPrice    float64       `json:"total_price"`
	PartyType     PartyType     `json:"party_type"`
}

// PendingDraft is the snapshot of in-progress form state saved when a
// submit hits the login gate. One slot per form session, overwritten on
// every gated submit, deleted after a successful resume.
type PendingDraft struct {
	DestinationID   string      `json:"destination_id"`
	DepartureDate   string      `json:"departure_date"`
	PartyType       PartyType   `json:"party_type"`
	AccommodationID string      `json:"accommodation_id"`
	Passengers      []Passenger `json:"passengers"`
	SavedAt         time.Time   `json:"saved_at"`
}

// User is the identity exposed by the auth collaborator
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
