package handlers

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/yahiasanji/spaceodysseybooking/metrics"
	"github.com/yahiasanji/spaceodysseybooking/services"
)

// ListBookings returns the current user's booking records
func ListBookings(c *gin.Context) {
	bookings, err := services.ListBookings(c.Request.Context(), bearerToken(c))
	if errors.Is(err, services.ErrNoActiveSession) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
		return
	}
	if err != nil {
		log.Printf("Error listing bookings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking returns one booking record
func GetBooking(c *gin.Context) {
	booking, err := services.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("Error getting booking: %v", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ExportBooking renders a booking confirmation to a spreadsheet and serves
// it as a download
func ExportBooking(c *gin.Context) {
	booking, err := services.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("Error getting booking: %v", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	path, err := services.ExportBooking(booking, cfg.ExportPath)
	if err != nil {
		log.Printf("Error exporting booking %s: %v", booking.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export booking"})
		return
	}

	metrics.ExportsGenerated.Inc()
	c.FileAttachment(path, filepath.Base(path))
}
