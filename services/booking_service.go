package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yahiasanji/spaceodysseybooking/metrics"
	"github.com/yahiasanji/spaceodysseybooking/models"
)

// LoginRedirect is where an auth-gated submit sends the client
const LoginRedirect = "/login"

// Submit drives the form through validation and into one of three
// outcomes: blocked (field errors, no side effects), auth gate (draft
// saved, client redirected to login) or confirmed (booking appended, form
// reset). A persistence failure returns an error and leaves the form state
// untouched so the user can retry.
func Submit(ctx context.Context, s *FormSession, token string) (*models.SubmitResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = models.FormValidating
	state := s.stateLocked()

	if errs := ValidateForm(state); len(errs) > 0 {
		metrics.ValidationFailures.Inc()
		s.status = models.FormEditing
		return &models.SubmitResponse{Status: models.FormBlocked, Errors: errs}, nil
	}

	user, err := CurrentUser(ctx, token)
	if err == ErrNoActiveSession {
		// Park the whole form as a pending draft and send the user to log in
		draft := draftFromState(state)
		if err := draftStore.Save(ctx, s.ID, draft); err != nil {
			s.status = models.FormEditing
			return nil, fmt.Errorf("failed to save pending draft: %w", err)
		}
		metrics.DraftsSaved.Inc()
		s.status = models.FormEditing
		log.Printf("Submit gated on login for session %s (%d passengers parked)", s.ID, len(draft.Passengers))
		return &models.SubmitResponse{Status: models.FormAuthGate, Redirect: LoginRedirect}, nil
	}
	if err != nil {
		s.status = models.FormEditing
		return nil, fmt.Errorf("failed to query auth session: %w", err)
	}

	booking, err := buildBooking(state, user)
	if err != nil {
		s.status = models.FormEditing
		return nil, err
	}

	if err := bookingStore.Append(ctx, booking); err != nil {
		// Form state is preserved for a retry
		s.status = models.FormEditing
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	if err := draftStore.Clear(ctx, s.ID); err != nil {
		log.Printf("Failed to clear draft for session %s: %v", s.ID, err)
	}

	metrics.BookingsConfirmed.Inc()
	log.Printf("Booking confirmed: %s for %d passengers to %s", booking.ID, len(booking.Passengers), booking.Destination.Name)

	// Ready for a new booking
	s.resetLocked()

	return &models.SubmitResponse{Status: models.FormConfirmed, Booking: booking}, nil
}

func draftFromState(state models.FormState) *models.PendingDraft {
	passengers := make([]models.Passenger, len(state.Passengers))
	for i, p := range state.Passengers {
		passengers[i] = p.Passenger
	}
	return &models.PendingDraft{
		DestinationID:   state.DestinationID,
		DepartureDate:   state.DepartureDate,
		PartyType:       state.PartyType,
		AccommodationID: state.AccommodationID,
		Passengers:      passengers,
		SavedAt:         time.Now(),
	}
}

// buildBooking assembles the immutable record with denormalized snapshots
func buildBooking(state models.FormState, user *models.User) (*models.Booking, error) {
	cat, err := GetCatalog()
	if err != nil {
		return nil, err
	}
	dest, err := cat.DestinationByID(state.DestinationID)
	if err != nil {
		return nil, err
	}
	acc, err := cat.AccommodationByID(state.AccommodationID)
	if err != nil {
		return nil, err
	}

	passengers := make([]models.Passenger, len(state.Passengers))
	for i, p := range state.Passengers {
		passengers[i] = p.Passenger
	}

	return &models.Booking{
		ID:            newBookingID(),
		UserID:        user.ID,
		UserEmail:     user.Email,
		BookingDate:   time.Now(),
		Status:        models.BookingStatusConfirmed,
		Destination:   *dest,
		DepartureDate: state.DepartureDate,
		Accommodation: *acc,
		Passengers:    passengers,
		TotalPrice:    state.TotalPrice,
		PartyType:     state.PartyType,
	}, nil
}

// newBookingID generates a unique reference like BK-1724812345678-3f9a1c2b
func newBookingID() string {
	return fmt.Sprintf("BK-%d-%s", time.Now().UnixMilli(), strings.Split(uuid.NewString(), "-")[0])
}

// Resume rehydrates the form from the pending draft after the user returns
// from the login page. It is idempotent: with no draft stored it is a
// no-op. Requires an active auth session, like the page-load check did.
func Resume(ctx context.Context, s *FormSession, token string) (*models.ResumeResponse, error) {
	if !IsSessionActive(ctx, token) {
		return &models.ResumeResponse{Restored: false, State: s.State()}, nil
	}

	draft, err := draftStore.Load(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return &models.ResumeResponse{Restored: false, State: s.State()}, nil
	}

	s.mu.Lock()

	// Selections first, then the roster, mirroring the original fill order.
	// A draft can outlive a catalog change; unknown ids simply stay unset.
	s.destinationID = ""
	s.accommodationID = ""
	if cat, err := GetCatalog(); err == nil {
		if dest, err := cat.DestinationByID(draft.DestinationID); err == nil {
			s.destinationID = draft.DestinationID
			for _, a := range cat.AccommodationsFor(dest) {
				if a.ID == draft.AccommodationID {
					s.accommodationID = draft.AccommodationID
					break
				}
			}
		}
	}
	s.departureDate = draft.DepartureDate
	s.roster.Restore(draft.PartyType, draft.Passengers)
	s.recompute()
	s.status = models.FormEditing
	state := s.stateLocked()
	s.mu.Unlock()

	if err := draftStore.Clear(ctx, s.ID); err != nil {
		log.Printf("Failed to clear restored draft for session %s: %v", s.ID, err)
	}
	metrics.DraftsResumed.Inc()

	return &models.ResumeResponse{
		Restored: true,
		Message:  "We found your pending booking. Your form has been auto-filled.",
		State:    state,
	}, nil
}

// ListBookings returns the identified user's bookings
func ListBookings(ctx context.Context, token string) ([]models.Booking, error) {
	user, err := CurrentUser(ctx, token)
	if err != nil {
		return nil, err
	}
	return bookingStore.ListByUser(ctx, user.Email)
}

// GetBooking returns one booking record by id
func GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return bookingStore.Get(ctx, id)
}
