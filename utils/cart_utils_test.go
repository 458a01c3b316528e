package utils

import (
	"testing"

	"github.com/modamart/ModaMart/models"
	"github.com/stretchr/testify/assert"
)

func TestMergeQuantity(t *testing.T) {
	// Adding to an empty cart yields exactly the requested quantity
	assert.Equal(t, 3, MergeQuantity(0, 3))

	// Re-adding a carted variant merges the full requested quantity
	assert.Equal(t, 7, MergeQuantity(4, 3))

	// Merged quantity clamps to the per-item maximum
	assert.Equal(t, MaxCartQuantity, MergeQuantity(8, 5))
	assert.Equal(t, MaxCartQuantity, MergeQuantity(0, 99))
}

func TestFindCartLine(t *testing.T) {
	items := []models.CartItem{
		{ProductID: 1, Size: "M", Color: "black", Quantity: 2},
		{ProductID: 1, Size: "L", Color: "black", Quantity: 1},
	}

	line := FindCartLine(items, 1, "M", "black")
	assert.NotNil(t, line)
	assert.Equal(t, 2, line.Quantity)

	// Size and color are part of the line key
	assert.Nil(t, FindCartLine(items, 1, "M", "white"))
	assert.Nil(t, FindCartLine(items, 2, "M", "black"))
	assert.Nil(t, FindCartLine(nil, 1, "M", "black"))
}

func TestComputeSubtotal(t *testing.T) {
	items := []models.CartItem{
		{ProductID: 1, Quantity: 2, Price: 100.0},
		{ProductID: 2, Quantity: 1, Price: 200.0},
	}

	assert.Equal(t, 400.0, ComputeSubtotal(items))
}

func TestComputeSubtotalEmptyCart(t *testing.T) {
	assert.Equal(t, 0.0, ComputeSubtotal(nil))
	assert.Equal(t, 0.0, ComputeSubtotal([]models.CartItem{}))
}

func TestComputeSubtotalRounding(t *testing.T) {
	items := []models.CartItem{
		{Quantity: 3, Price: 33.333},
	}

	assert.Equal(t, 100.0, ComputeSubtotal(items))
}

func TestDefaultDeliveryCharge(t *testing.T) {
	// No configured rule (and no pincode) falls back to the flat charge
	assert.Equal(t, DefaultDeliveryCharge, GetDeliveryCharge("", 400.0))
}

func TestCheckoutTotalIncludesDelivery(t *testing.T) {
	items := []models.CartItem{
		{ProductID: 1, Quantity: 2, Price: 100.0},
		{ProductID: 2, Quantity: 1, Price: 200.0},
	}

	subtotal := ComputeSubtotal(items)
	total := subtotal + GetDeliveryCharge("", subtotal)
	assert.Equal(t, 450.0, total)
}

func TestCartItemLineTotal(t *testing.T) {
	item := models.CartItem{Quantity: 4, Price: 24.5}
	assert.Equal(t, 98.0, item.LineTotal())
}
