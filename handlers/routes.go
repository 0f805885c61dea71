package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yahiasanji/spaceodysseybooking/config"
)

var cfg *config.Config

// Init wires the handler package with configuration
func Init(config *config.Config) {
	cfg = config
}

// RegisterRoutes attaches all API routes to the router
func RegisterRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		// Catalog routes
		api.GET("/catalog/destinations", GetDestinations)
		api.GET("/catalog/destinations/:id/accommodations", GetDestinationAccommodations)
		api.GET("/catalog/accommodations", GetAccommodations)

		// Auth collaborator
		api.POST("/auth/login", Login)
		api.POST("/auth/logout", Logout)

		// Booking form sessions
		api.POST("/sessions", CreateSession)
		api.GET("/sessions/:id", GetSession)
		api.PUT("/sessions/:id/destination", SelectDestination)
		api.PUT("/sessions/:id/accommodation", SelectAccommodation)
		api.PUT("/sessions/:id/departure-date", SetDepartureDate)
		api.PUT("/sessions/:id/party-type", SetPartyType)
		api.POST("/sessions/:id/passengers", AddPassenger)
		api.PUT("/sessions/:id/passengers/:pos", UpdatePassenger)
		api.DELETE("/sessions/:id/passengers/:pos", RemovePassenger)
		api.POST("/sessions/:id/validate-field", ValidateField)
		api.POST("/sessions/:id/submit", Submit)
		api.POST("/sessions/:id/resume", Resume)

		// Booking records
		api.GET("/bookings", ListBookings)
		api.GET("/bookings/:id", GetBooking)
		api.GET("/bookings/:id/export", ExportBooking)
	}

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}
