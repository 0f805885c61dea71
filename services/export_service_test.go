package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/yahiasanji/spaceodysseybooking/models"
)

func TestExportBooking(t *testing.T) {
	booking := &models.Booking{
		ID:          "BK-1724812345678-3f9a1c2b",
		UserEmail:   "ada@odyssey.space",
		BookingDate: time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
		Status:      models.BookingStatusConfirmed,
		Destination: models.Destination{
			ID: "mars", Name: "Mars Colony", Price: 10000, TravelDuration: "3 days",
		},
		DepartureDate: "2026-12-01",
		Accommodation: models.Accommodation{ID: "pod", Name: "Sleep Pod", PricePerDay: 50},
		Passengers: []models.Passenger{
			{Position: 1, FirstName: "Ada", LastName: "Lovelace",
				Email: "ada@odyssey.space", Phone: "+11234567890"},
			{Position: 2, FirstName: "Ben", LastName: "Carter",
				Email: "ben@odyssey.space", Phone: "9876543", SpecialRequirements: "window seat"},
		},
		TotalPrice: 10600,
		PartyType:  models.PartyCouple,
	}

	dir := t.TempDir()
	path, err := ExportBooking(booking, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, booking.ID+".xlsx"), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Booking Confirmation", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Space Odyssey Booking Confirmation", title)

	id, err := f.GetCellValue("Booking Confirmation", "B3")
	require.NoError(t, err)
	assert.Equal(t, booking.ID, id)

	total, err := f.GetCellValue("Booking Confirmation", "B12")
	require.NoError(t, err)
	assert.Equal(t, "$10,600 USD", total)

	// Summary block is rows 3-12, header row 14, passengers from row 15
	first, err := f.GetCellValue("Booking Confirmation", "B15")
	require.NoError(t, err)
	assert.Equal(t, "Ada", first)

	reqs, err := f.GetCellValue("Booking Confirmation", "F16")
	require.NoError(t, err)
	assert.Equal(t, "window seat", reqs)
}

func TestExportBookingBadDirectory(t *testing.T) {
	booking := &models.Booking{ID: "BK-1-abc"}
	_, err := ExportBooking(booking, filepath.Join(t.TempDir(), "exports\x00"))
	assert.Error(t, err)
}
