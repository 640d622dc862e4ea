// Package store is the single persistence layer. Every query that hands
// back a farm area on behalf of a user scopes the lookup by owner inside
// the predicate itself, so an area owned by someone else is
// indistinguishable from one that does not exist.
package store

import (
	"errors"
	"time"

	"agridash/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrFarmAreaNotFound = errors.New("farm area not found")
	ErrInvalidAPIKey    = errors.New("invalid api key")
	ErrDuplicateEmail   = errors.New("email already registered")
	ErrDuplicateAPIKey  = errors.New("api key already in use")
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the schema for all models.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&models.User{}, &models.FarmArea{}, &models.Reading{})
}

func (s *Store) CreateUser(u *models.User) error {
	if err := s.db.Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (s *Store) UserByEmail(email string) (models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// CreateFarmArea persists a new area. A collision on the generated API
// key surfaces as ErrDuplicateAPIKey so the caller can retry with a
// fresh key.
func (s *Store) CreateFarmArea(area *models.FarmArea) error {
	if err := s.db.Create(area).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateAPIKey
		}
		return err
	}
	return nil
}

// FarmAreasByUser lists the areas owned by a user, projected to the
// summary fields. The result is never nil so an owner with no areas
// serializes as an empty array.
func (s *Store) FarmAreasByUser(userID uint) ([]models.FarmAreaSummary, error) {
	summaries := make([]models.FarmAreaSummary, 0)
	err := s.db.Model(&models.FarmArea{}).
		Where("user_id = ?", userID).
		Select("id", "name", "api_key", "created_at").
		Order("id").
		Find(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// FarmAreaForUser fetches an area by id scoped to its owner in a single
// predicate. An area owned by a different user yields ErrFarmAreaNotFound,
// same as a nonexistent id.
func (s *Store) FarmAreaForUser(userID, areaID uint) (models.FarmArea, error) {
	var area models.FarmArea
	err := s.db.Where("id = ? AND user_id = ?", areaID, userID).First(&area).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.FarmArea{}, ErrFarmAreaNotFound
		}
		return models.FarmArea{}, err
	}
	return area, nil
}

// FarmAreaByAPIKey authorizes device ingestion by exact key match. No
// session or user is involved; possession of the key is the entire
// authorization model.
func (s *Store) FarmAreaByAPIKey(apiKey string) (models.FarmArea, error) {
	var area models.FarmArea
	err := s.db.Where("api_key = ?", apiKey).First(&area).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.FarmArea{}, ErrInvalidAPIKey
		}
		return models.FarmArea{}, err
	}
	return area, nil
}

func (s *Store) CreateReading(r *models.Reading) error {
	return s.db.Create(r).Error
}

// ReadingsSince returns an area's readings with timestamp >= start,
// oldest first. Ordering matters: charting clients plot the sequence
// left-to-right without re-sorting. Never nil.
func (s *Store) ReadingsSince(areaID uint, start time.Time) ([]models.Reading, error) {
	readings := make([]models.Reading, 0)
	err := s.db.
		Where("farm_area_id = ? AND timestamp >= ?", areaID, start).
		Order("timestamp asc").
		Find(&readings).Error
	if err != nil {
		return nil, err
	}
	return readings, nil
}
