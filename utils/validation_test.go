package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("user@example.com"))
	assert.True(t, ValidateEmail("first.last+tag@sub.example.co"))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("user@"))
	assert.False(t, ValidateEmail(""))
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+919876543210"))
	assert.True(t, ValidatePhone("9876543210"))
	assert.False(t, ValidatePhone("0123"))
	assert.False(t, ValidatePhone("phone"))
	assert.False(t, ValidatePhone(""))
}

func TestValidateURL(t *testing.T) {
	assert.True(t, ValidateURL("https://example.com/page"))
	assert.True(t, ValidateURL("http://example.com"))
	// Optional link fields treat empty as unset
	assert.True(t, ValidateURL(""))

	assert.False(t, ValidateURL("ftp://example.com"))
	assert.False(t, ValidateURL("javascript:alert(1)"))
	assert.False(t, ValidateURL("/relative/path"))
	assert.False(t, ValidateURL("example.com"))
}

func TestValidateSocialLinks(t *testing.T) {
	err := ValidateSocialLinks(map[string]string{
		"facebook":  "https://facebook.com/modamart",
		"instagram": "",
	})
	assert.NoError(t, err)
}

func TestValidateSocialLinksRejectsBadURL(t *testing.T) {
	err := ValidateSocialLinks(map[string]string{
		"facebook": "not a url",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "facebook")
}

func TestValidateSocialLinksRequiresOne(t *testing.T) {
	err := ValidateSocialLinks(map[string]string{
		"facebook":  "",
		"instagram": "",
	})
	assert.Error(t, err)
}

func TestValidateRating(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		assert.True(t, ValidateRating(rating))
	}
	assert.False(t, ValidateRating(0))
	assert.False(t, ValidateRating(6))
	assert.False(t, ValidateRating(-1))
}

func TestValidateDiscount(t *testing.T) {
	assert.True(t, ValidateDiscount(10))
	assert.True(t, ValidateDiscount(100))
	assert.True(t, ValidateDiscount(0.5))
	assert.False(t, ValidateDiscount(0))
	assert.False(t, ValidateDiscount(-5))
	assert.False(t, ValidateDiscount(101))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello", SanitizeString("hello"))
	assert.NotContains(t, SanitizeString(`<script>alert(1)</script>`), "<script>")
	assert.NotContains(t, SanitizeString(`plain <b>bold</b>`), "<b>")
}
