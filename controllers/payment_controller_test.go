package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPaise(t *testing.T) {
	assert.Equal(t, 45000, toPaise(450.0))
	assert.Equal(t, 5, toPaise(0.05))
	assert.Equal(t, 0, toPaise(0))

	// 107.35*100 lands just under 10735 in float64; rounding must not
	// drop the paise
	assert.Equal(t, 10735, toPaise(107.35))
}
