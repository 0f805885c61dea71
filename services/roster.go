package services

import (
	"time"

	"github.com/yahiasanji/spaceodysseybooking/models"
)

// reconcileCooldown absorbs rapid duplicate party-type events from the
// input device after a reconciliation completes
const reconcileCooldown = 500 * time.Millisecond

type rosterOp int

const (
	opAdd rosterOp = iota
	opRemove
)

// rosterStep is one queued add/remove command of a reconciliation
type rosterStep struct {
	op        rosterOp
	position  int
	removable bool
}

// Roster owns the passenger sub-forms of one booking form. It replaces the
// page-global passengerCount/maxPassengers pair with an explicit state
// object; all mutation happens under the form session lock, and party-type
// reconciliation drains its queued steps to completion before returning, so
// price recomputation never observes an intermediate state.
//
// Invariants after every operation:
//   - 1 <= len(entries) <= partyType.MaxPassengers()
//   - positions are exactly the contiguous range 1..len(entries)
type Roster struct {
	partyType models.PartyType
	entries   []models.FormPassenger

	lastReconciled time.Time
	lastTarget     models.PartyType
	now            func() time.Time // swapped in tests
}

// NewRoster starts with a single primary passenger (solo)
func NewRoster() *Roster {
	r := &Roster{partyType: models.PartySolo, now: time.Now}
	r.entries = []models.FormPassenger{{Passenger: models.Passenger{Position: 1}}}
	return r
}

// PartyType returns the current party type
func (r *Roster) PartyType() models.PartyType {
	return r.partyType
}

// Count returns the current number of passenger forms
func (r *Roster) Count() int {
	return len(r.entries)
}

// CanAdd reports whether the manual add control is available: it is shown
// for group only, and only while the roster is below the maximum
func (r *Roster) CanAdd() bool {
	return r.partyType == models.PartyGroup && len(r.entries) < r.partyType.MaxPassengers()
}

// Entries returns a copy of the current passenger forms
func (r *Roster) Entries() []models.FormPassenger {
	out := make([]models.FormPassenger, len(r.entries))
	copy(out, r.entries)
	return out
}

// SetPartyType reconciles the roster to the new type's default count by
// draining queued add/remove steps. Entries kept or created for the default
// set lose any individual remove affordance. A duplicate event for the type
// that was just applied, arriving inside the cool-down window, is dropped.
func (r *Roster) SetPartyType(partyType models.PartyType) error {
	if !partyType.Valid() {
		return ErrUnknownPartyType
	}

	if partyType == r.lastTarget && r.now().Sub(r.lastReconciled) < reconcileCooldown {
		return nil
	}

	previousMax := r.partyType.MaxPassengers()
	r.partyType = partyType

	if previousMax != partyType.MaxPassengers() {
		r.drain(r.reconcileSteps())
	}

	// Default slots never carry a remove affordance
	for i := 0; i < len(r.entries) && i < partyType.DefaultPassengers(); i++ {
		r.entries[i].Removable = false
	}

	r.lastReconciled = r.now()
	r.lastTarget = partyType
	return nil
}

// reconcileSteps builds the command queue that moves the roster from its
// current count to the new party type's default, one form at a time
func (r *Roster) reconcileSteps() []rosterStep {
	target := r.partyType.DefaultPassengers()
	var steps []rosterStep
	for n := len(r.entries); n > target; n-- {
		steps = append(steps, rosterStep{op: opRemove, position: n})
	}
	for n := len(r.entries); n < target; n++ {
		steps = append(steps, rosterStep{op: opAdd, removable: false})
	}
	return steps
}

func (r *Roster) drain(steps []rosterStep) {
	for _, step := range steps {
		switch step.op {
		case opAdd:
			r.append(step.removable)
		case opRemove:
			r.removeAt(step.position)
		}
	}
}

// Add appends a passenger form at the next ordinal. The manual "+Add"
// control always requests a remove affordance; reconciliation never does
// for default slots.
func (r *Roster) Add(removable bool) (int, error) {
	if len(r.entries) >= r.partyType.MaxPassengers() {
		return 0, ErrRosterFull
	}
	r.append(removable)
	return len(r.entries), nil
}

func (r *Roster) append(removable bool) {
	position := len(r.entries) + 1
	r.entries = append(r.entries, models.FormPassenger{
		Passenger: models.Passenger{Position: position},
		Removable: removable && position > 1,
	})
}

// Remove deletes the form at the given ordinal and renumbers the survivors
// to the contiguous range 1..count. Only entries carrying a remove
// affordance can be removed.
func (r *Roster) Remove(position int) error {
	if position < 1 || position > len(r.entries) {
		return ErrNoSuchPassenger
	}
	if !r.entries[position-1].Removable {
		return ErrNotRemovable
	}
	r.removeAt(position)
	return nil
}

func (r *Roster) removeAt(position int) {
	if position < 1 || position > len(r.entries) {
		return
	}
	r.entries = append(r.entries[:position-1], r.entries[position:]...)
	r.renumber()
}

func (r *Roster) renumber() {
	for i := range r.entries {
		r.entries[i].Position = i + 1
	}
}

// SetEntry updates the editable fields of the form at the given ordinal
func (r *Roster) SetEntry(position int, p models.Passenger) error {
	if position < 1 || position > len(r.entries) {
		return ErrNoSuchPassenger
	}
	entry := &r.entries[position-1]
	entry.FirstName = p.FirstName
	entry.LastName = p.LastName
	entry.Email = p.Email
	entry.Phone = p.Phone
	entry.SpecialRequirements = p.SpecialRequirements
	return nil
}

// Restore replaces the roster from a pending draft. Entries beyond the
// party type's maximum are silently dropped; group entries past the default
// three regain their remove affordance.
func (r *Roster) Restore(partyType models.PartyType, passengers []models.Passenger) {
	if !partyType.Valid() {
		partyType = models.PartySolo
	}
	r.partyType = partyType

	max := partyType.MaxPassengers()
	r.entries = r.entries[:0]
	for i, p := range passengers {
		if i >= max {
			break
		}
		r.entries = append(r.entries, models.FormPassenger{
			Passenger: p,
			Removable: partyType == models.PartyGroup && i >= partyType.DefaultPassengers(),
		})
	}
	if len(r.entries) == 0 {
		r.entries = append(r.entries, models.FormPassenger{})
	}
	r.renumber()
}

// Reset returns the roster to a single blank primary passenger
func (r *Roster) Reset() {
	r.partyType = models.PartySolo
	r.entries = []models.FormPassenger{{Passenger: models.Passenger{Position: 1}}}
	r.lastReconciled = time.Time{}
	r.lastTarget = ""
}
