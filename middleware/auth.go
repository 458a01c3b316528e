package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/modamart/ModaMart/config"
	"github.com/modamart/ModaMart/models"
	"github.com/modamart/ModaMart/utils"
)

func parseBearerToken(c *gin.Context) (jwt.MapClaims, string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		utils.LogError("Missing Authorization header")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
		c.Abort()
		return nil, "", false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		utils.LogError("Invalid Bearer token format")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
		c.Abort()
		return nil, "", false
	}

	// Reject tokens invalidated by logout
	var blacklisted models.BlacklistedToken
	if err := config.DB.Where("token = ?", tokenString).First(&blacklisted).Error; err == nil {
		utils.LogError("Blacklisted token presented")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
		c.Abort()
		return nil, "", false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		utils.LogError("Invalid token: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
		c.Abort()
		return nil, "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		utils.LogError("Invalid token claims")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return nil, "", false
	}

	return claims, tokenString, true
}

// AuthMiddleware authenticates storefront customers
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _, ok := parseBearerToken(c)
		if !ok {
			return
		}

		userID, ok := claims["user_id"].(float64)
		if !ok {
			utils.LogError("User ID not found in token claims")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
			c.Abort()
			return
		}
		utils.LogDebug("Authenticating user ID: %d", uint(userID))

		var user models.User
		if err := config.DB.First(&user, uint(userID)).Error; err != nil {
			utils.LogError("User not found: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			c.Abort()
			return
		}

		if user.IsBlocked {
			utils.LogError("Blocked user attempted access: %d", user.ID)
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is blocked"})
			c.Abort()
			return
		}

		c.Set("user", user)
		utils.LogInfo("User %d authenticated successfully", user.ID)
		c.Next()
	}
}

// AdminAuthMiddleware authenticates dashboard administrators
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _, ok := parseBearerToken(c)
		if !ok {
			return
		}

		adminID, ok := claims["admin_id"].(float64)
		if !ok {
			utils.LogError("Admin ID not found in token claims")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
			c.Abort()
			return
		}
		utils.LogDebug("Authenticating admin ID: %d", uint(adminID))

		var admin models.Admin
		if err := config.DB.First(&admin, uint(adminID)).Error; err != nil {
			utils.LogError("Admin not found: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin not found"})
			c.Abort()
			return
		}

		if !admin.IsActive {
			utils.LogError("Inactive admin attempted access: %d", admin.ID)
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin account is inactive"})
			c.Abort()
			return
		}

		c.Set("admin", admin)
		utils.LogInfo("Admin %d authenticated successfully", admin.ID)
		c.Next()
	}
}

// VendorAuthMiddleware authenticates vendor portal users
func VendorAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _, ok := parseBearerToken(c)
		if !ok {
			return
		}

		vendorID, ok := claims["vendor_id"].(float64)
		if !ok {
			utils.LogError("Vendor ID not found in token claims")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
			c.Abort()
			return
		}
		utils.LogDebug("Authenticating vendor ID: %d", uint(vendorID))

		var vendor models.Vendor
		if err := config.DB.First(&vendor, uint(vendorID)).Error; err != nil {
			utils.LogError("Vendor not found: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Vendor not found"})
			c.Abort()
			return
		}

		if !vendor.IsActive {
			utils.LogError("Inactive vendor attempted access: %d", vendor.ID)
			c.JSON(http.StatusForbidden, gin.H{"error": "Vendor account is inactive"})
			c.Abort()
			return
		}

		c.Set("vendor", vendor)
		utils.LogInfo("Vendor %d authenticated successfully", vendor.ID)
		c.Next()
	}
}
