package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscountedPrice(t *testing.T) {
	p := &Product{Price: 200, DiscountPercentage: 25}
	assert.Equal(t, 150.0, p.DiscountedPrice())

	p = &Product{Price: 200, DiscountPercentage: 0}
	assert.Equal(t, 200.0, p.DiscountedPrice())

	p = &Product{Price: 99.99, DiscountPercentage: 100}
	assert.Equal(t, 0.0, p.DiscountedPrice())
}
