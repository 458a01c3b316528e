package models

import (
	"gorm.io/gorm"
)

// Size represents a named product size (S, M, L, ...)
type Size struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// Slider represents a homepage banner image with an optional target link
type Slider struct {
	gorm.Model
	ImageURL string `gorm:"not null" json:"image_url"`
	Link     string `json:"link"`
}

// SocialMediaLinks holds the storefront's social profile URLs.
// Each field is independently optional but at least one must be set.
type SocialMediaLinks struct {
	gorm.Model
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	Tiktok    string `json:"tiktok"`
	Pinterest string `json:"pinterest"`
}

// ContactInfo holds the storefront's public contact details
type ContactInfo struct {
	gorm.Model
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// ContactMessage is a message submitted through the storefront contact form
type ContactMessage struct {
	gorm.Model
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Subject string `json:"subject"`
	Message string `gorm:"not null" json:"message"`
}
