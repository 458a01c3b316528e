package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a storefront customer
type User struct {
	gorm.Model
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Password     string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone"`
	ProfileImage string    `json:"profile_image"`
	IsBlocked    bool      `json:"is_blocked"`
	IsVerified   bool      `json:"is_verified" gorm:"default:false"`
	OTP          string    `json:"-"`
	OTPExpiresAt time.Time `json:"-"`
	LastLoginAt  time.Time `json:"last_login_at"`
	GoogleID     string    `gorm:"default:null" json:"google_id"`
}

// Admin represents a dashboard administrator
type Admin struct {
	gorm.Model
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	LastLogin time.Time `json:"last_login"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
}

// Vendor represents a seller with access to the vendor portal
type Vendor struct {
	gorm.Model
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `json:"-"`
	StoreName string    `gorm:"not null" json:"store_name"`
	Phone     string    `json:"phone"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	LastLogin time.Time `json:"last_login"`
	Products  []Product `json:"products,omitempty" gorm:"foreignKey:VendorID"`
}
