package controllers

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/modamart/ModaMart/config"
	"github.com/modamart/ModaMart/models"
	"github.com/modamart/ModaMart/utils"
)

// AdminLoginRequest represents the admin login request
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin handles admin authentication
func AdminLogin(c *gin.Context) {
	utils.LogInfo("AdminLogin called")

	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid login request: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}
	utils.LogDebug("Processing login request for email: %s", req.Email)

	var admin models.Admin
	if err := config.DB.Where("email = ?", req.Email).First(&admin).Error; err != nil {
		utils.LogError("Admin not found for email: %s", req.Email)
		utils.Unauthorized(c, "Invalid credentials")
		return
	}
	if !admin.IsActive {
		utils.LogError("Inactive admin account attempted login: %s", admin.Email)
		utils.Forbidden(c, "Admin account is inactive")
		return
	}
	if !utils.CheckPassword(req.Password, admin.Password) {
		utils.LogError("Invalid password for admin: %s", admin.Email)
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	admin.LastLogin = time.Now()
	if err := config.DB.Save(&admin).Error; err != nil {
		utils.LogError("Failed to update last login for admin %s: %v", admin.Email, err)
	}

	token, err := utils.GenerateAdminToken(&admin)
	if err != nil {
		utils.LogError("Failed to sign token for admin %s: %v", admin.Email, err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	session := sessions.Default(c)
	session.Set("admin_id", admin.ID)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save session for admin %s: %v", admin.Email, err)
	}

	utils.LogInfo("Admin login successful: %s", admin.Email)
	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"admin": gin.H{
			"id":        admin.ID,
			"email":     admin.Email,
			"firstName": admin.FirstName,
			"lastName":  admin.LastName,
		},
	})
}

// AdminLogout blacklists the current token and clears the session
func AdminLogout(c *gin.Context) {
	utils.LogInfo("AdminLogout called")

	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		utils.LogError("Failed to clear session on logout: %v", err)
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		utils.Success(c, "Logged out successfully", nil)
		return
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil {
		utils.LogError("Failed to parse token on logout: %v", err)
		utils.Success(c, "Logged out successfully", nil)
		return
	}

	expiresAt := time.Now().Add(24 * time.Hour)
	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if exp, ok := claims["exp"].(float64); ok {
			expiresAt = time.Unix(int64(exp), 0)
		}
	}

	blacklisted := models.BlacklistedToken{
		Token:     tokenString,
		ExpiresAt: expiresAt,
	}
	if err := config.DB.Create(&blacklisted).Error; err != nil {
		utils.LogError("Failed to blacklist token on logout: %v", err)
	}

	utils.Success(c, "Logged out successfully", nil)
}

// CreateSampleAdmin seeds the default admin account from the environment
func CreateSampleAdmin() error {
	utils.LogInfo("CreateSampleAdmin called")

	hashedPassword, err := utils.HashPassword(os.Getenv("ADMIN_PASSWORD"))
	if err != nil {
		utils.LogError("Failed to hash admin password: %v", err)
		return err
	}

	admin := models.Admin{
		Email:     os.Getenv("ADMIN_EMAIL"),
		Password:  hashedPassword,
		FirstName: os.Getenv("ADMIN_FIRST_NAME"),
		LastName:  os.Getenv("ADMIN_LAST_NAME"),
		IsActive:  true,
	}
	if err := config.DB.FirstOrCreate(&admin, models.Admin{Email: admin.Email}).Error; err != nil {
		utils.LogError("Failed to create sample admin: %v", err)
		return err
	}
	utils.LogInfo("Sample admin ready: %s", admin.Email)
	return nil
}
