package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/yahiasanji/spaceodysseybooking/models"
)

// Field rules, kept byte-for-byte with the booking form's messages
const (
	msgRequired      = "This field is required"
	msgInvalidName   = "Please enter a valid name (2-50 characters, letters only)"
	msgInvalidEmail  = "Please enter a valid email address"
	msgInvalidPhone  = "Please enter a valid phone number"
	msgNoDestination = "Please select a destination"
	msgNoDate        = "Please select a departure date"
	msgPastDate      = "Departure date must be today or in the future"
	msgNoAccommodat  = "Please select an accommodation type"
)

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z\s]{2,50}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\+?[1-9][0-9]{0,15}$`)
)

// ValidName reports whether the value is 2-50 characters of letters and spaces
func ValidName(name string) bool {
	return nameRe.MatchString(strings.TrimSpace(name))
}

// ValidEmail reports whether the value has a local@domain.tld shape
func ValidEmail(email string) bool {
	return emailRe.MatchString(strings.TrimSpace(email))
}

// ValidPhone reports whether the value is a phone number: optional leading
// "+", first digit 1-9, up to 16 digits. Internal spaces are stripped first.
func ValidPhone(phone string) bool {
	return phoneRe.MatchString(strings.ReplaceAll(phone, " ", ""))
}

// ValidDepartureDate reports whether the value is a YYYY-MM-DD date that is
// today or later, compared at day granularity
func ValidDepartureDate(date string) bool {
	selected, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return false
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	return !selected.Before(today)
}

// ValidateField applies the blur-time rule for one field. The required
// check runs before the type-specific rule. A nil result means the field
// passed.
func ValidateField(fieldType, value string) *models.FieldError {
	if strings.TrimSpace(value) == "" {
		return &models.FieldError{Field: fieldType, Message: msgRequired}
	}

	var valid bool
	var message string
	switch fieldType {
	case "name":
		valid = ValidName(value)
		message = msgInvalidName
	case "email":
		valid = ValidEmail(value)
		message = msgInvalidEmail
	case "phone":
		valid = ValidPhone(value)
		message = msgInvalidPhone
	default:
		return &models.FieldError{Field: fieldType, Message: "Unknown field type"}
	}

	if !valid {
		return &models.FieldError{Field: fieldType, Message: message}
	}
	return nil
}

// ValidatePassenger checks the typed fields of one entry and returns the
// failures with field paths scoped to the entry's ordinal. Special
// requirements is always optional.
func ValidatePassenger(p models.Passenger) []models.FieldError {
	var errs []models.FieldError
	prefix := fmt.Sprintf("passengers[%d]", p.Position)

	checks := []struct {
		field     string
		fieldType string
		value     string
	}{
		{"first_name", "name", p.FirstName},
		{"last_name", "name", p.LastName},
		{"email", "email", p.Email},
		{"phone", "phone", p.Phone},
	}
	for _, c := range checks {
		if fe := ValidateField(c.fieldType, c.value); fe != nil {
			errs = append(errs, models.FieldError{
				Field:   prefix + "." + c.field,
				Message: fe.Message,
			})
		}
	}
	return errs
}

// ValidateForm runs whole-form validation over a form snapshot. Every field
// is checked; failures never block other fields from being reported.
func ValidateForm(state models.FormState) []models.FieldError {
	var errs []models.FieldError

	if state.DestinationID == "" {
		errs = append(errs, models.FieldError{Field: "destination", Message: msgNoDestination})
	}

	if state.DepartureDate == "" {
		errs = append(errs, models.FieldError{Field: "departure_date", Message: msgNoDate})
	} else if !ValidDepartureDate(state.DepartureDate) {
		errs = append(errs, models.FieldError{Field: "departure_date", Message: msgPastDate})
	}

	if state.AccommodationID == "" {
		errs = append(errs, models.FieldError{Field: "accommodation", Message: msgNoAccommodat})
	}

	for _, p := range state.Passengers {
		errs = append(errs, ValidatePassenger(p.Passenger)...)
	}

	return errs
}
