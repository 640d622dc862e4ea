package controllers

import (
	"errors"
	"log"
	"net/http"

	"agridash/store"

	"github.com/gin-gonic/gin"
)

// abortError is the single place a store outcome becomes a transport
// status and error body. Keeping the mapping here means the
// ownership-hiding rule (not-owned and nonexistent both read as not
// found) cannot be undone by an individual handler.
func abortError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, store.ErrFarmAreaNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Farm area not found"})
	case errors.Is(err, store.ErrInvalidAPIKey):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
	case errors.Is(err, store.ErrDuplicateEmail):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
	case errors.Is(err, store.ErrDuplicateAPIKey):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Could not generate a unique API key"})
	default:
		// Internal detail stays in the server log, never in the body.
		log.Printf("internal error: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
