package utils

import (
	"testing"

	"github.com/modamart/ModaMart/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, CheckPassword("s3cret-password", hash))
	assert.False(t, CheckPassword("wrong-password", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := &models.User{Model: gorm.Model{ID: 42}, Email: "user@example.com"}
	token, err := GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := &models.User{Model: gorm.Model{ID: 42}}
	token, err := GenerateToken(user)
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "different-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestAdminAndVendorTokensCarryRoleClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	adminToken, err := GenerateAdminToken(&models.Admin{Model: gorm.Model{ID: 7}})
	require.NoError(t, err)
	vendorToken, err := GenerateVendorToken(&models.Vendor{Model: gorm.Model{ID: 9}})
	require.NoError(t, err)

	// Role tokens do not validate as customer tokens
	_, err = ValidateToken(adminToken)
	assert.Error(t, err)
	_, err = ValidateToken(vendorToken)
	assert.Error(t, err)
}

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 20; i++ {
		otp := GenerateOTP()
		assert.Len(t, otp, 6)
		for _, ch := range otp {
			assert.True(t, ch >= '0' && ch <= '9')
		}
	}
}
