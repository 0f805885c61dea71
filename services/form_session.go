package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yahiasanji/spaceodysseybooking/models"
)

// FormSession is the server-side state of one booking form: the selections,
// the passenger roster and the derived price. One session corresponds to
// one browser tab; operations are serialized by the session lock.
type FormSession struct {
	ID        string
	CreatedAt time.Time

	mu              sync.Mutex
	destinationID   string
	accommodationID string
	departureDate   string
	roster          *Roster
	totalPrice      float64
	priceDisplay    string
	status          models.FormStatus
}

func newFormSession() *FormSession {
	return &FormSession{
		ID:           uuid.NewString(),
		CreatedAt:    time.Now(),
		roster:       NewRoster(),
		priceDisplay: PriceSentinel,
		status:       models.FormEditing,
	}
}

var formSessions = struct {
	mu       sync.RWMutex
	sessions map[string]*FormSession
}{sessions: make(map[string]*FormSession)}

// CreateFormSession opens a new empty booking form
func CreateFormSession() *FormSession {
	s := newFormSession()
	formSessions.mu.Lock()
	formSessions.sessions[s.ID] = s
	formSessions.mu.Unlock()
	return s
}

// GetFormSession looks up an open form session by id
func GetFormSession(id string) (*FormSession, error) {
	formSessions.mu.RLock()
	defer formSessions.mu.RUnlock()
	s, ok := formSessions.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// SelectDestination sets the destination (empty id clears it) and
// auto-selects the first accommodation available there, then recomputes the
// price
func (s *FormSession) SelectDestination(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		s.destinationID = ""
		s.accommodationID = ""
		s.recompute()
		return nil
	}

	cat, err := GetCatalog()
	if err != nil {
		return err
	}
	dest, err := cat.DestinationByID(id)
	if err != nil {
		return err
	}

	s.destinationID = id

	// First available accommodation is pre-selected, as on the form
	s.accommodationID = ""
	if available := cat.AccommodationsFor(dest); len(available) > 0 {
		s.accommodationID = available[0].ID
	}

	s.recompute()
	return nil
}

// SelectAccommodation sets the accommodation; it must be offered at the
// currently selected destination
func (s *FormSession) SelectAccommodation(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cat, err := GetCatalog()
	if err != nil {
		return err
	}
	if s.destinationID == "" {
		return ErrUnknownAccommodation
	}
	dest, err := cat.DestinationByID(s.destinationID)
	if err != nil {
		return err
	}
	for _, a := range cat.AccommodationsFor(dest) {
		if a.ID == id {
			s.accommodationID = id
			s.recompute()
			return nil
		}
	}
	return ErrUnknownAccommodation
}

// SetDepartureDate stores the departure date; validation happens on blur
// and at submit
func (s *FormSession) SetDepartureDate(date string) {
	s.mu.Lock()
	s.departureDate = date
	s.mu.Unlock()
}

// SetPartyType switches the travel-party type and reconciles the roster,
// then recomputes the price
func (s *FormSession) SetPartyType(partyType models.PartyType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.roster.SetPartyType(partyType); err != nil {
		return err
	}
	s.recompute()
	return nil
}

// AddPassenger appends a manually added passenger form, which always
// carries a remove affordance, and recomputes the price
func (s *FormSession) AddPassenger() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	position, err := s.roster.Add(true)
	if err != nil {
		return 0, err
	}
	s.recompute()
	return position, nil
}

// RemovePassenger removes the form at the ordinal and recomputes the price
func (s *FormSession) RemovePassenger(position int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.roster.Remove(position); err != nil {
		return err
	}
	s.recompute()
	return nil
}

// UpdatePassenger edits the fields of one passenger form. Field edits never
// trigger a price recomputation.
func (s *FormSession) UpdatePassenger(position int, p models.Passenger) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roster.SetEntry(position, p)
}

// State returns a consistent snapshot of the form
func (s *FormSession) State() models.FormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *FormSession) stateLocked() models.FormState {
	return models.FormState{
		SessionID:       s.ID,
		DestinationID:   s.destinationID,
		AccommodationID: s.accommodationID,
		DepartureDate:   s.departureDate,
		PartyType:       s.roster.PartyType(),
		Passengers:      s.roster.Entries(),
		CanAddPassenger: s.roster.CanAdd(),
		TotalPrice:      s.totalPrice,
		PriceDisplay:    s.priceDisplay,
		Status:          s.status,
	}
}

// recompute derives the total from the current destination, accommodation
// and passenger count. Callers hold the session lock, so the price always
// reflects the state after the triggering mutation, never an intermediate
// one. An unresolvable destination or accommodation yields the "$0"
// sentinel, not a computed zero.
func (s *FormSession) recompute() {
	s.totalPrice = 0
	s.priceDisplay = PriceSentinel

	if s.destinationID == "" {
		return
	}
	cat, err := GetCatalog()
	if err != nil {
		return
	}
	dest, err := cat.DestinationByID(s.destinationID)
	if err != nil {
		return
	}
	acc, err := cat.AccommodationByID(s.accommodationID)
	if err != nil {
		return
	}

	s.totalPrice = ComputeTotal(dest, acc, s.roster.Count())
	s.priceDisplay = FormatPrice(s.totalPrice)
}

// reset clears the form back to a blank solo booking after a confirmation
func (s *FormSession) resetLocked() {
	s.destinationID = ""
	s.accommodationID = ""
	s.departureDate = ""
	s.roster.Reset()
	s.totalPrice = 0
	s.priceDisplay = PriceSentinel
	s.status = models.FormEditing
}
