package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yahiasanji/spaceodysseybooking/models"
)

// stepClock returns a clock that jumps past the reconcile cool-down on every
// read, so scripted sequences are never absorbed as duplicate events
func stepClock() func() time.Time {
	t := time.Now()
	return func() time.Time {
		t = t.Add(reconcileCooldown + time.Second)
		return t
	}
}

// assertContiguous checks the core roster invariants: ordinals are exactly
// 1..count and the count respects the party type's bounds
func assertContiguous(t *testing.T, r *Roster) {
	t.Helper()
	entries := r.Entries()
	require.GreaterOrEqual(t, len(entries), 1)
	require.LessOrEqual(t, len(entries), r.PartyType().MaxPassengers())
	for i, e := range entries {
		assert.Equal(t, i+1, e.Position)
	}
}

func TestRosterDefaults(t *testing.T) {
	r := NewRoster()
	assert.Equal(t, models.PartySolo, r.PartyType())
	assert.Equal(t, 1, r.Count())
	assert.False(t, r.CanAdd())
	assertContiguous(t, r)
}

func TestRosterSetPartyType(t *testing.T) {
	t.Run("solo to group yields three forms, none removable", func(t *testing.T) {
		r := NewRoster()
		require.NoError(t, r.SetPartyType(models.PartyGroup))
		require.Equal(t, 3, r.Count())
		for _, e := range r.Entries() {
			assert.False(t, e.Removable)
		}
		assert.True(t, r.CanAdd())
		assertContiguous(t, r)
	})

	t.Run("group to couple drops to two forms, none removable", func(t *testing.T) {
		r := NewRoster()
		r.now = stepClock()
		require.NoError(t, r.SetPartyType(models.PartyGroup))
		_, err := r.Add(true)
		require.NoError(t, err)
		_, err = r.Add(true)
		require.NoError(t, err)
		require.Equal(t, 5, r.Count())

		require.NoError(t, r.SetPartyType(models.PartyCouple))
		require.Equal(t, 2, r.Count())
		for _, e := range r.Entries() {
			assert.False(t, e.Removable)
		}
		assert.False(t, r.CanAdd())
		assertContiguous(t, r)
	})

	t.Run("couple to solo keeps only the primary passenger", func(t *testing.T) {
		r := NewRoster()
		r.now = stepClock()
		require.NoError(t, r.SetPartyType(models.PartyCouple))
		require.NoError(t, r.SetEntry(2, models.Passenger{FirstName: "Zara"}))
		require.NoError(t, r.SetPartyType(models.PartySolo))
		require.Equal(t, 1, r.Count())
		assertContiguous(t, r)
	})

	t.Run("unknown party type rejected", func(t *testing.T) {
		r := NewRoster()
		assert.ErrorIs(t, r.SetPartyType("flotilla"), ErrUnknownPartyType)
	})
}

func TestRosterAddRemove(t *testing.T) {
	r := NewRoster()
	r.now = stepClock()
	require.NoError(t, r.SetPartyType(models.PartyGroup))

	// Manual adds carry a remove affordance
	for i := 4; i <= 6; i++ {
		pos, err := r.Add(true)
		require.NoError(t, err)
		assert.Equal(t, i, pos)
		assert.True(t, r.Entries()[pos-1].Removable)
	}
	assert.False(t, r.CanAdd())

	_, err := r.Add(true)
	assert.ErrorIs(t, err, ErrRosterFull)

	// Removing a middle entry renumbers the survivors
	require.NoError(t, r.SetEntry(5, models.Passenger{FirstName: "Mira"}))
	require.NoError(t, r.SetEntry(6, models.Passenger{FirstName: "Kai"}))
	require.NoError(t, r.Remove(5))
	require.Equal(t, 5, r.Count())
	assertContiguous(t, r)
	assert.Equal(t, "Kai", r.Entries()[4].FirstName)
	assert.True(t, r.Entries()[4].Removable)

	// Default slots carry no affordance and cannot be removed
	assert.ErrorIs(t, r.Remove(1), ErrNotRemovable)
	assert.ErrorIs(t, r.Remove(99), ErrNoSuchPassenger)
}

func TestRosterSoloAndCoupleNeverAdd(t *testing.T) {
	r := NewRoster()
	_, err := r.Add(true)
	assert.ErrorIs(t, err, ErrRosterFull)

	r.now = stepClock()
	require.NoError(t, r.SetPartyType(models.PartyCouple))
	assert.False(t, r.CanAdd())
	_, err = r.Add(true)
	assert.ErrorIs(t, err, ErrRosterFull)
}

func TestRosterInvariantsUnderRapidSequences(t *testing.T) {
	r := NewRoster()
	r.now = stepClock()

	script := []func(){
		func() { r.SetPartyType(models.PartyGroup) },
		func() { r.Add(true) },
		func() { r.Add(true) },
		func() { r.SetPartyType(models.PartyCouple) },
		func() { r.SetPartyType(models.PartyGroup) },
		func() { r.Add(true) },
		func() { r.Remove(4) },
		func() { r.SetPartyType(models.PartySolo) },
		func() { r.SetPartyType(models.PartyGroup) },
		func() { r.Add(true) },
		func() { r.Add(true) },
		func() { r.Add(true) },
		func() { r.Add(true) }, // over the max, must be rejected
		func() { r.Remove(6) },
		func() { r.Remove(5) },
	}
	for _, step := range script {
		step()
		assertContiguous(t, r)
	}
}

func TestRosterDuplicateEventCooldown(t *testing.T) {
	r := NewRoster()
	// Frozen clock: every event lands inside the cool-down window
	frozen := time.Now()
	r.now = func() time.Time { return frozen }

	require.NoError(t, r.SetPartyType(models.PartyGroup))
	require.Equal(t, 3, r.Count())

	// Rapid duplicate events for the same type are absorbed
	require.NoError(t, r.SetPartyType(models.PartyGroup))
	require.NoError(t, r.SetPartyType(models.PartyGroup))
	assert.Equal(t, 3, r.Count())

	// A genuine type change still goes through
	require.NoError(t, r.SetPartyType(models.PartyCouple))
	assert.Equal(t, 2, r.Count())
	assertContiguous(t, r)
}

func TestRosterRestore(t *testing.T) {
	passengers := []models.Passenger{
		{FirstName: "Ada"}, {FirstName: "Ben"}, {FirstName: "Cleo"},
		{FirstName: "Dee"}, {FirstName: "Edo"}, {FirstName: "Fay"}, {FirstName: "Gus"},
	}

	t.Run("entries beyond the maximum are dropped", func(t *testing.T) {
		r := NewRoster()
		r.Restore(models.PartyGroup, passengers)
		require.Equal(t, 6, r.Count())
		assertContiguous(t, r)
		// Group entries past the default three regain the affordance
		for i, e := range r.Entries() {
			assert.Equal(t, i >= 3, e.Removable, "entry %d", i+1)
		}
	})

	t.Run("couple draft restores two fixed forms", func(t *testing.T) {
		r := NewRoster()
		r.Restore(models.PartyCouple, passengers[:4])
		require.Equal(t, 2, r.Count())
		for _, e := range r.Entries() {
			assert.False(t, e.Removable)
		}
	})

	t.Run("empty draft falls back to one blank form", func(t *testing.T) {
		r := NewRoster()
		r.Restore(models.PartySolo, nil)
		require.Equal(t, 1, r.Count())
		assertContiguous(t, r)
	})
}
