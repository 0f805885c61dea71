package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yahiasanji/spaceodysseybooking/services"
)

// GetDestinations returns all destinations from the catalog
func GetDestinations(c *gin.Context) {
	cat, err := services.GetCatalog()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Unable to load destinations. Please try again later."})
		return
	}
	c.JSON(http.StatusOK, cat.Destinations())
}

// GetAccommodations returns all accommodations from the catalog
func GetAccommodations(c *gin.Context) {
	cat, err := services.GetCatalog()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Unable to load accommodations. Please try again later."})
		return
	}
	c.JSON(http.StatusOK, cat.Accommodations())
}

// GetDestinationAccommodations returns the accommodations offered at one
// destination, in catalog order
func GetDestinationAccommodations(c *gin.Context) {
	cat, err := services.GetCatalog()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Unable to load accommodations. Please try again later."})
		return
	}

	dest, err := cat.DestinationByID(c.Param("id"))
	if errors.Is(err, services.ErrUnknownDestination) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Destination not found"})
		return
	}

	c.JSON(http.StatusOK, cat.AccommodationsFor(dest))
}
