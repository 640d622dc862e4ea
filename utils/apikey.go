package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateAPIKey returns an opaque token granting device write access to
// one farm area. Uniqueness is enforced by the store's unique index;
// callers retry on collision.
func GenerateAPIKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
