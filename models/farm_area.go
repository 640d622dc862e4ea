package models

import "time"

// FarmArea is a named monitoring zone owned by exactly one user. The API
// key is generated once at creation and grants device write access to
// this area's readings; there is no rotation or expiry.
type FarmArea struct {
	ID        uint      `json:"_id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	APIKey    string    `json:"apiKey" gorm:"uniqueIndex;not null"`
	UserID    uint      `json:"userId" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// FarmAreaSummary is the projection returned by listing and creation.
type FarmAreaSummary struct {
	ID        uint      `json:"_id"`
	Name      string    `json:"name"`
	APIKey    string    `json:"apiKey"`
	CreatedAt time.Time `json:"createdAt"`
}

func (f FarmArea) Summary() FarmAreaSummary {
	return FarmAreaSummary{
		ID:        f.ID,
		Name:      f.Name,
		APIKey:    f.APIKey,
		CreatedAt: f.CreatedAt,
	}
}

type CreateFarmAreaRequest struct {
	Name string `json:"name" binding:"required"`
}
