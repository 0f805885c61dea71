package models

// Form session statuses. Editing is the resting state; the submit path
// moves through validating into one of blocked, auth_gate or confirmed.
type FormStatus string

const (
	FormEditing    FormStatus = "editing"
	FormValidating FormStatus = "validating"
	FormBlocked    FormStatus = "blocked"
	FormAuthGate   FormStatus = "auth_gate"
	FormConfirmed  FormStatus = "confirmed"
)

// FieldError is a per-field validation failure with the user-facing message
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FormPassenger is a passenger entry as rendered to the client, including
// whether the entry carries an individual remove affordance
type FormPassenger struct {
	Passenger
	Removable bool `json:"removable"`
}

// FormState is a point-in-time snapshot of a form session
type FormState struct {
	SessionID       string          `json:"session_id"`
	DestinationID   string          `json:"destination_id"`
	AccommodationID string          `json:"accommodation_id"`
	DepartureDate   string          `json:"departure_date"`
	PartyType       PartyType       `json:"party_type"`
	Passengers      []FormPassenger `json:"passengers"`
	CanAddPassenger bool            `json:"can_add_passenger"`
	TotalPrice      float64         `json:"total_price"`
	PriceDisplay    string          `json:"price_display"`
	Status          FormStatus      `json:"status"`
}

// Request bodies for the form session endpoints

type SelectDestinationRequest struct {
	DestinationID string `json:"destination_id"`
}

type SelectAccommodationRequest struct {
	AccommodationID string `json:"accommodation_id" binding:"required"`
}

type DepartureDateRequest struct {
	DepartureDate string `json:"departure_date" binding:"required"`
}

type PartyTypeRequest struct {
	PartyType PartyType `json:"party_type" binding:"required"`
}

type PassengerUpdateRequest struct {
	FirstName           string `json:"first_name"`
	LastName            string `json:"last_name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	SpecialRequirements string `json:"special_requirements"`
}

type ValidateFieldRequest struct {
	FieldType string `json:"field_type" binding:"required"` // name, email or phone
	Value     string `json:"value"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// SubmitResponse is the outcome of a submit attempt
type SubmitResponse struct {
	Status   FormStatus   `json:"status"`
	Errors   []FieldError `json:"errors,omitempty"`
	Redirect string       `json:"redirect,omitempty"`
	Booking  *Booking     `json:"booking,omitempty"`
}

// ResumeResponse reports whether a pending draft was restored
type ResumeResponse struct {
	Restored bool      `json:"restored"`
	Message  string    `json:"message,omitempty"`
	State    FormState `json:"state"`
}
