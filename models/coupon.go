package models

import (
	"time"

	"gorm.io/gorm"
)

// Coupon codes are stored uppercased; handlers uppercase on save and
// look up with LOWER(), so the plain unique index still enforces
// case-insensitive uniqueness.
type Coupon struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Code       string         `gorm:"uniqueIndex:idx_coupons_code" json:"code"`
	Discount   float64        `json:"discount"`   // percent, 0-100
	Expiration *time.Time     `json:"expiration"` // nil = never expires
	IsActive   bool           `json:"is_active" gorm:"default:true"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsExpired reports whether the coupon has passed its expiration date.
// Coupons without an expiration never expire.
func (c *Coupon) IsExpired() bool {
	return c.Expiration != nil && time.Now().After(*c.Expiration)
}
