package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCouponIsExpired(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	assert.True(t, (&Coupon{Expiration: &past}).IsExpired())
	assert.False(t, (&Coupon{Expiration: &future}).IsExpired())
	// No expiration means the coupon never expires
	assert.False(t, (&Coupon{Expiration: nil}).IsExpired())
}
