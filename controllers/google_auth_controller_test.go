package controllers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGooglePasswordSeed(t *testing.T) {
	// Long subject IDs contribute only an 8 byte prefix
	seed := googlePasswordSeed("109876543210123456789")
	assert.True(t, strings.HasPrefix(seed, "10987654"))
	assert.False(t, strings.HasPrefix(seed, "109876543"))

	// IDs shorter than the prefix must not panic
	assert.NotPanics(t, func() { googlePasswordSeed("ab") })
	assert.NotPanics(t, func() { googlePasswordSeed("") })
	assert.True(t, strings.HasPrefix(googlePasswordSeed("ab"), "ab"))
}
