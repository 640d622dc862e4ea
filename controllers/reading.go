package controllers

import (
	"net/http"
	"time"

	"agridash/models"
	"agridash/store"

	"github.com/gin-gonic/gin"
)

type Readings struct {
	Store *store.Store
}

func NewReadings(st *store.Store) *Readings {
	return &Readings{Store: st}
}

// Ingest accepts a device-originated sensor sample authorized solely by
// the farm area's API key. The key check runs before field validation so
// a bad credential never learns which fields were missing.
func (r *Readings) Ingest(c *gin.Context) {
	var req models.IngestReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.APIKey == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "API key is required"})
		return
	}

	area, err := r.Store.FarmAreaByAPIKey(req.APIKey)
	if err != nil {
		abortError(c, err)
		return
	}

	if req.Temperature == nil || req.Humidity == nil || req.SoilMoisture == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "temperature, humidity and soilMoisture are required"})
		return
	}

	reading := models.Reading{
		Temperature:  *req.Temperature,
		Humidity:     *req.Humidity,
		SoilMoisture: *req.SoilMoisture,
		FarmAreaID:   area.ID,
		Timestamp:    time.Now(),
	}
	if req.Timestamp != nil {
		reading.Timestamp = *req.Timestamp
	}

	if err := r.Store.CreateReading(&reading); err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, reading)
}
