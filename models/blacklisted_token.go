package models

import (
	"time"

	"gorm.io/gorm"
)

// BlacklistedToken stores logged-out JWTs until they expire on their own
type BlacklistedToken struct {
	gorm.Model
	Token     string    `gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
}
