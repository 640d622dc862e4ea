package models

import "time"

// Reading is one sensor sample belonging to a farm area. Readings are
// created only through the API-key ingestion path and never updated.
type Reading struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Temperature  float64   `json:"temperature" gorm:"not null"`
	Humidity     float64   `json:"humidity" gorm:"not null"`
	SoilMoisture float64   `json:"soilMoisture" gorm:"not null"`
	FarmAreaID   uint      `json:"farmAreaId" gorm:"not null;index"`
	Timestamp    time.Time `json:"timestamp" gorm:"index"`
}

// IngestReadingRequest carries a device-originated sample. Measurement
// fields are pointers so that an absent field can be told apart from a
// legitimate zero; validation ordering (API key before measurements) is
// handled in the controller, not by binding tags.
type IngestReadingRequest struct {
	APIKey       string     `json:"apiKey"`
	Temperature  *float64   `json:"temperature"`
	Humidity     *float64   `json:"humidity"`
	SoilMoisture *float64   `json:"soilMoisture"`
	Timestamp    *time.Time `json:"timestamp"`
}
