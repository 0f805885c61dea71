package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yahiasanji/spaceodysseybooking/models"
	"github.com/yahiasanji/spaceodysseybooking/services"
)

// bearerToken extracts the auth session token from the Authorization header
func bearerToken(c *gin.Context) string {
	return strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer"))
}

// Login opens an auth session for a well-formed email/password pair
func Login(c *gin.Context) {
	var req models.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := services.Login(c.Request.Context(), req.Email, req.Password)
	if err == services.ErrInvalidCredentials {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		log.Printf("Error opening session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{Token: token, User: *user})
}

// Logout closes the auth session for the presented token
func Logout(c *gin.Context) {
	if err := services.Logout(c.Request.Context(), bearerToken(c)); err != nil {
		log.Printf("Error closing session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
