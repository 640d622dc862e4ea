package config

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the PostgreSQL connection handed to the store at startup.
// TranslateError lets the store detect unique-constraint violations
// (duplicate email, duplicate API key) as gorm.ErrDuplicatedKey.
func ConnectDB(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}
