package utils

import (
	"math"

	"github.com/modamart/ModaMart/models"
)

// CartSummary holds a cart's computed totals
type CartSummary struct {
	Items          []models.CartItem
	Subtotal       float64
	DeliveryCharge float64
	Total          float64
}

// FindCartLine returns the cart line matching the product variant, or
// nil when the combination is not in the cart.
func FindCartLine(items []models.CartItem, productID uint, size, color string) *models.CartItem {
	for i := range items {
		if items[i].ProductID == productID && items[i].Size == size && items[i].Color == color {
			return &items[i]
		}
	}
	return nil
}

// MergeQuantity merges a requested quantity into an existing line's
// quantity, clamped to [1, MaxCartQuantity]. Adding a variant already
// in the cart merges the full requested quantity rather than
// incrementing by one.
func MergeQuantity(existing, requested int) int {
	q := existing + requested
	if q > MaxCartQuantity {
		q = MaxCartQuantity
	}
	if q < 1 {
		q = 1
	}
	return q
}

// ComputeSubtotal sums snapshot price times quantity across the cart
func ComputeSubtotal(items []models.CartItem) float64 {
	subtotal := 0.0
	for _, item := range items {
		subtotal += item.LineTotal()
	}
	return math.Round(subtotal*100) / 100
}

// GetCartSummary loads the user's cart and computes subtotal, delivery
// charge and total. An empty pincode uses the default delivery charge.
func GetCartSummary(userID uint, pincode string) (*CartSummary, error) {
	items, err := Carts.Load(userID)
	if err != nil {
		return nil, err
	}

	summary := &CartSummary{
		Items:    items,
		Subtotal: ComputeSubtotal(items),
	}
	if len(items) > 0 {
		summary.DeliveryCharge = GetDeliveryCharge(pincode, summary.Subtotal)
	}
	summary.Total = math.Round((summary.Subtotal+summary.DeliveryCharge)*100) / 100
	return summary, nil
}
