package models

import (
	"gorm.io/gorm"
)

// Review statuses
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// Review represents a product review awaiting moderation
type Review struct {
	gorm.Model
	ProductID uint    `gorm:"index;not null" json:"product_id"`
	Product   Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	UserID    uint    `json:"user_id"`
	Reviewer  string  `gorm:"not null" json:"reviewer"`
	Rating    int     `json:"rating" gorm:"check:rating >= 1 AND rating <= 5"`
	Comment   string  `json:"comment"`
	Status    string  `json:"status" gorm:"default:'pending'"`
}
