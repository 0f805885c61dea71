package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yahiasanji/spaceodysseybooking/models"
	"github.com/yahiasanji/spaceodysseybooking/services"
)

// sessionFromPath resolves the form session from the :id parameter,
// answering 404 itself when it does not exist
func sessionFromPath(c *gin.Context) (*services.FormSession, bool) {
	s, err := services.GetFormSession(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Form session not found"})
		return nil, false
	}
	return s, true
}

// formError maps service errors onto HTTP statuses
func formError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCatalogUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Catalog unavailable. Please try again later."})
	case errors.Is(err, services.ErrUnknownDestination),
		errors.Is(err, services.ErrUnknownAccommodation),
		errors.Is(err, services.ErrNoSuchPassenger):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// CreateSession opens a new booking form session
func CreateSession(c *gin.Context) {
	s := services.CreateFormSession()
	c.JSON(http.StatusCreated, s.State())
}

// GetSession returns the current form state including the derived price
func GetSession(c *gin.Context) {
	s, ok := sessionFromPath(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.State())
}

// SelectDestination sets (or clears) the selected destination
func SelectDestination(c *gin.Context) {
	s, ok := sessionFromPath(c)
	if !ok {
		return
	}

	var req models.SelectDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.SelectDestination(req.DestinationID); err != nil {
		formError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.State())
}

// SelectAccommodation sets the selected accommodation
func SelectAccommodation(c *gin.Context) {
	s, ok := sessionFromPath(c)
	if !ok {
		return
	}

	var req models.SelectAccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.SelectAccommodation(req.AccommodationID); err != nil {
		formError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.State())
}

// SetDepartureDate stores the departure date
func SetDepartureDate(c *gin.Context) {
	s, ok := sessionFromPath(c)
	if !ok {
		return
	}

	var req models.DepartureDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.SetDepartureDate(req.DepartureDate)
	c.JSON(http.StatusOK, s.State())
}

// SetPartyType switches the travel-party type and reconciles the roster
func SetPartyType(c *gin.Context) {
	s, ok := sessionFromPath(c)
	if !ok {
		return
	}

	var req models.PartyTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.SetPartyType(req.PartyType); err != nil {
		formError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.State())
}

// AddPassenger appends a passenger form (group only, up to the maximum)
func AddPassenger(c *gin.Context) {
	s, ok := sessionFromPath(c)
	if !ok {
		return
	}

	if _, err := s.AddPassenger(); err != nil {
		formError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.State())
}

// RemovePassenger removes the passenger form at the given ordinal
func RemovePassenger(c *gin.Context) {
	s, ok := sessionFromPath(c)
	if !ok {
		return
	}

	position, err := strconv.Atoi(c.Param("pos"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid passenger position"})
		return
	}

	if err := s.RemovePassenger(position); err != nil {
		formError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.State())
}

// UpdatePassenger edits one passenger form's fields and returns live
// validation feedback for the typed fields. Errors are only reported for
// non-empty values: typing clears errors, it never sets them.
func UpdatePassenger(c *gin.Context) {
	s, ok := sessionFromPath(c)
	if !ok {
		return
	}

	position, err := strconv.Atoi(c.Param("pos"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid passenger position"})
		return
	}

	var req models.PassengerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	passenger := models.Passenger{
		Position:            position,
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Email:               req.Email,
		Phone:               req.Phone,
		SpecialRequirements: req.SpecialRequirements,
	}
	if err := s.UpdatePassenger(position, passenger); err != nil {
		formError(c, err)
		return
	}

	var fieldErrors []models.FieldError
	for _, fe := range services.ValidatePassenger(passenger) {
		if fe.Message != "This field is required" {
			fieldErrors = append(fieldErrors, fe)
		}
	}

	c.JSON(http.StatusOK, gin.H{"state": s.State(), "errors": fieldErrors})
}

// ValidateField applies the blur-time rule for a single field value
func ValidateField(c *gin.Context) {
	if _, ok := sessionFromPath(c); !ok {
		return
	}

	var req models.ValidateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if fe := services.ValidateField(req.FieldType, req.Value); fe != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "message": fe.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

// Submit runs whole-form validation and either blocks, gates on login or
// confirms the booking
func Submit(c *gin.Context) {
	s, ok := sessionFromPath(c)
	if !ok {
		return
	}

	result, err := services.Submit(c.Request.Context(), s, bearerToken(c))
	if err != nil {
		log.Printf("Error submitting booking: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "There was an error processing your booking. Please try again."})
		return
	}

	switch result.Status {
	case models.FormBlocked:
		c.JSON(http.StatusUnprocessableEntity, result)
	case models.FormAuthGate:
		c.JSON(http.StatusUnauthorized, result)
	default:
		c.JSON(http.StatusCreated, result)
	}
}

// Resume restores a pending draft after the user returns from login
func Resume(c *gin.Context) {
	s, ok := sessionFromPath(c)
	if !ok {
		return
	}

	result, err := services.Resume(c.Request.Context(), s, bearerToken(c))
	if err != nil {
		log.Printf("Error resuming booking: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to restore pending booking"})
		return
	}
	c.JSON(http.StatusOK, result)
}
