package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"agridash/middlewares"
	"agridash/models"
	"agridash/store"
	"agridash/timerange"
	"agridash/utils"

	"github.com/gin-gonic/gin"
)

// apiKeyAttempts bounds the retries when a generated key collides with
// an existing one.
const apiKeyAttempts = 3

type FarmAreas struct {
	Store *store.Store
}

func NewFarmAreas(st *store.Store) *FarmAreas {
	return &FarmAreas{Store: st}
}

// resolveUser maps the session email set by the auth middleware to a
// user record. On failure it writes the response and returns ok=false.
func (f *FarmAreas) resolveUser(c *gin.Context) (models.User, bool) {
	email := c.GetString(middlewares.EmailKey)
	if email == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return models.User{}, false
	}
	user, err := f.Store.UserByEmail(email)
	if err != nil {
		abortError(c, err)
		return models.User{}, false
	}
	return user, true
}

// areaID parses the path parameter. A malformed id is a validation
// failure, distinct from a missing area.
func areaID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid farm area id"})
		return 0, false
	}
	return uint(id), true
}

// List returns the caller's farm areas.
func (f *FarmAreas) List(c *gin.Context) {
	user, ok := f.resolveUser(c)
	if !ok {
		return
	}

	areas, err := f.Store.FarmAreasByUser(user.ID)
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, areas)
}

// Create makes a new farm area with a freshly generated API key,
// retrying on the off chance the key collides with an existing one.
func (f *FarmAreas) Create(c *gin.Context) {
	user, ok := f.resolveUser(c)
	if !ok {
		return
	}

	var req models.CreateFarmAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	var area models.FarmArea
	var err error
	for attempt := 0; attempt < apiKeyAttempts; attempt++ {
		area = models.FarmArea{
			Name:   req.Name,
			APIKey: utils.GenerateAPIKey(),
			UserID: user.ID,
		}
		err = f.Store.CreateFarmArea(&area)
		if !errors.Is(err, store.ErrDuplicateAPIKey) {
			break
		}
	}
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, area.Summary())
}

// Get returns one farm area, scoped to its owner.
func (f *FarmAreas) Get(c *gin.Context) {
	user, ok := f.resolveUser(c)
	if !ok {
		return
	}
	id, ok := areaID(c)
	if !ok {
		return
	}

	area, err := f.Store.FarmAreaForUser(user.ID, id)
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, area)
}

// Readings returns the area's readings inside the requested time window,
// oldest first. An unrecognized or absent timeRange falls back to 24h.
func (f *FarmAreas) Readings(c *gin.Context) {
	user, ok := f.resolveUser(c)
	if !ok {
		return
	}
	id, ok := areaID(c)
	if !ok {
		return
	}

	area, err := f.Store.FarmAreaForUser(user.ID, id)
	if err != nil {
		abortError(c, err)
		return
	}

	start := timerange.StartBoundary(time.Now(), c.Query("timeRange"))
	readings, err := f.Store.ReadingsSince(area.ID, start)
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, readings)
}
