package models

import (
	"gorm.io/gorm"
)

// CartItem is a single line in a user's cart. Items are keyed by the
// product, size and color combination; adding the same combination
// again merges quantities instead of creating a new line. Unit price
// and discount are snapshotted at add time.
type CartItem struct {
	gorm.Model
	UserID    uint    `gorm:"uniqueIndex:idx_cart_user_product_variant" json:"user_id"`
	ProductID uint    `gorm:"uniqueIndex:idx_cart_user_product_variant" json:"product_id"`
	Size      string  `gorm:"uniqueIndex:idx_cart_user_product_variant" json:"size"`
	Color     string  `gorm:"uniqueIndex:idx_cart_user_product_variant" json:"color"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`    // unit price after discount, snapshotted at add time
	Discount  int     `json:"discount"` // discount percent applied at add time
}

// LineTotal returns the snapshot price times quantity
func (i *CartItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}
