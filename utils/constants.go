package utils

// Application constants
const (
	// Application name
	AppName = "ModaMart"

	// API version
	APIVersion = "v1"

	// Default port
	DefaultPort = "8080"

	// Default pagination limit
	DefaultPaginationLimit = 10

	// Maximum file size for uploads (5MB)
	MaxFileSize = 5 * 1024 * 1024

	// Minimum password length
	MinPasswordLength = 8

	// Minimum rating
	MinRating = 1

	// Maximum rating
	MaxRating = 5

	// Delivery charge applied when no pincode rule matches
	DefaultDeliveryCharge = 50.0

	// Maximum quantity of one cart line
	MaxCartQuantity = 10
)

// Error messages
const (
	ErrInvalidCredentials = "Invalid email or password"
	ErrUserBlocked        = "Your account has been blocked"
	ErrInvalidToken       = "Invalid or expired token"
	ErrUnauthorized       = "Unauthorized access"
	ErrRecordNotFound     = "Record not found"
	ErrInternalServer     = "Internal server error"
)
