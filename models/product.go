package models

import (
	"gorm.io/gorm"
)

// Product represents a storefront product managed through the vendor portal
type Product struct {
	gorm.Model
	VendorID           uint           `gorm:"index" json:"vendor_id"`
	Vendor             Vendor         `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
	Name               string         `json:"name"`
	Description        string         `json:"description"`
	Price              float64        `json:"price"`
	DiscountPercentage int            `json:"discount_percentage"`
	Stock              int            `json:"stock"`
	Sizes              string         `json:"sizes"`  // comma-separated size names
	Colors             string         `json:"colors"` // comma-separated color names
	ImageURL           string         `json:"image_url"`
	ProductImages      []ProductImage `json:"images" gorm:"foreignKey:ProductID"`
	IsActive           bool           `json:"is_active" gorm:"default:true"`
	IsFeatured         bool           `json:"is_featured" gorm:"default:false"`
	Views              int            `json:"views" gorm:"default:0"`
	Reviews            []Review       `json:"reviews,omitempty"`
	AverageRating      float64        `json:"average_rating" gorm:"default:0"`
	TotalReviews       int            `json:"total_reviews" gorm:"default:0"`
}

// ProductImage holds an additional gallery image for a product
type ProductImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"index" json:"product_id"`
	URL       string `json:"url"`
}

// DiscountedPrice returns the unit price after the product discount
func (p *Product) DiscountedPrice() float64 {
	if p.DiscountPercentage <= 0 {
		return p.Price
	}
	return p.Price - (p.Price * float64(p.DiscountPercentage) / 100)
}
