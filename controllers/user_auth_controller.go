package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/modamart/ModaMart/config"
	"github.com/modamart/ModaMart/models"
	"github.com/modamart/ModaMart/utils"
)

// RegisterRequest represents the customer signup request
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the customer login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// VerifyOTPRequest carries the emailed verification code
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=6"`
}

// Register creates a customer account and emails a verification OTP
func Register(c *gin.Context) {
	utils.LogInfo("Register called")

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid registration request: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ? OR username = ?", req.Email, req.Username).
		First(&existing).Error; err == nil {
		utils.Conflict(c, "An account with this email or username already exists", nil)
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Failed to hash password: %v", err)
		utils.InternalServerError(c, "Failed to create account", nil)
		return
	}

	otp := utils.GenerateOTP()
	user := models.User{
		Username:     utils.SanitizeString(req.Username),
		Email:        req.Email,
		Password:     hashedPassword,
		OTP:          otp,
		OTPExpiresAt: time.Now().Add(15 * time.Minute),
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.LogError("Failed to create user: %v", err)
		utils.InternalServerError(c, "Failed to create account", nil)
		return
	}

	if err := utils.SendOTP(user.Email, otp); err != nil {
		utils.LogError("Failed to send OTP to %s: %v", user.Email, err)
	}

	utils.LogInfo("User registered: %s", user.Email)
	utils.Created(c, "Account created. Check your email for the verification code.", gin.H{
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// VerifyOTP confirms the emailed code and activates the account
func VerifyOTP(c *gin.Context) {
	utils.LogInfo("VerifyOTP called")

	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid OTP request: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.LogError("User not found for email: %s", req.Email)
		utils.NotFound(c, "Account not found")
		return
	}
	if user.IsVerified {
		utils.Success(c, "Account already verified", nil)
		return
	}
	if user.OTP != req.OTP || time.Now().After(user.OTPExpiresAt) {
		utils.LogError("Invalid or expired OTP for %s", req.Email)
		utils.BadRequest(c, "Invalid or expired verification code", nil)
		return
	}

	if err := config.DB.Model(&user).Updates(map[string]interface{}{
		"is_verified": true,
		"otp":         "",
	}).Error; err != nil {
		utils.LogError("Failed to verify user %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to verify account", nil)
		return
	}

	utils.LogInfo("User verified: %s", req.Email)
	utils.Success(c, "Account verified successfully", nil)
}

// Login authenticates a customer and returns a JWT
func Login(c *gin.Context) {
	utils.LogInfo("Login called")

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid login request: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.LogError("User not found for email: %s", req.Email)
		utils.Unauthorized(c, "Invalid credentials")
		return
	}
	if user.IsBlocked {
		utils.LogError("Blocked user attempted login: %s", user.Email)
		utils.Forbidden(c, "Account is blocked")
		return
	}
	if !user.IsVerified {
		utils.LogError("Unverified user attempted login: %s", user.Email)
		utils.Forbidden(c, "Account not verified. Check your email for the verification code.")
		return
	}
	if !utils.CheckPassword(req.Password, user.Password) {
		utils.LogError("Invalid password for user: %s", user.Email)
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	if err := config.DB.Model(&user).Update("last_login_at", time.Now()).Error; err != nil {
		utils.LogError("Failed to update last login for %s: %v", user.Email, err)
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to sign token for user %s: %v", user.Email, err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	utils.LogInfo("User login successful: %s", user.Email)
	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}
