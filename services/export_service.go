package services

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/yahiasanji/spaceodysseybooking/models"
)

const exportSheet = "Booking Confirmation"

// ExportBooking renders a confirmed booking to an .xlsx confirmation file
// under dir and returns the file path
func ExportBooking(b *models.Booking, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating export directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return "", fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return "", fmt.Errorf("error creating style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return "", fmt.Errorf("error creating style: %w", err)
	}

	f.SetCellValue(exportSheet, "A1", "Space Odyssey Booking Confirmation")
	f.SetCellStyle(exportSheet, "A1", "A1", titleStyle)

	summary := [][2]interface{}{
		{"Reservation ID", b.ID},
		{"Booking Date", b.BookingDate.Format("02.01.2006")},
		{"Booked By", b.UserEmail},
		{"Destination", b.Destination.Name},
		{"Departure Date", b.DepartureDate},
		{"Travel Duration", b.Destination.TravelDuration},
		{"Accommodation", b.Accommodation.Name},
		{"Party Type", string(b.PartyType)},
		{"Passengers", len(b.Passengers)},
		{"Total Amount", FormatPrice(b.TotalPrice)},
	}
	row := 3
	for _, entry := range summary {
		f.SetCellValue(exportSheet, fmt.Sprintf("A%d", row), entry[0])
		f.SetCellValue(exportSheet, fmt.Sprintf("B%d", row), entry[1])
		row++
	}

	// Passenger table
	row++
	headers := []string{"#", "First Name", "Last Name", "Email", "Phone", "Special Requirements"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(exportSheet, cell, h)
	}
	firstHeader, _ := excelize.CoordinatesToCellName(1, row)
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), row)
	f.SetCellStyle(exportSheet, firstHeader, lastHeader, headerStyle)

	for _, p := range b.Passengers {
		row++
		values := []interface{}{p.Position, p.FirstName, p.LastName, p.Email, p.Phone, p.SpecialRequirements}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(exportSheet, cell, v)
		}
	}

	f.SetColWidth(exportSheet, "A", "F", 24)

	path := filepath.Join(dir, b.ID+".xlsx")
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("error saving export: %w", err)
	}
	return path, nil
}
