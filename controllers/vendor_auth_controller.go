package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/modamart/ModaMart/config"
	"github.com/modamart/ModaMart/models"
	"github.com/modamart/ModaMart/utils"
)

// VendorRegisterRequest represents the vendor signup request
type VendorRegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	StoreName string `json:"store_name" binding:"required"`
	Phone     string `json:"phone"`
}

// VendorLoginRequest represents the vendor login request
type VendorLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// VendorRegister creates a vendor portal account
func VendorRegister(c *gin.Context) {
	utils.LogInfo("VendorRegister called")

	var req VendorRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid vendor registration: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}
	if req.Phone != "" && !utils.ValidatePhone(req.Phone) {
		utils.BadRequest(c, "Invalid phone number", nil)
		return
	}

	var existing models.Vendor
	if err := config.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.Conflict(c, "A vendor with this email already exists", nil)
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Failed to hash vendor password: %v", err)
		utils.InternalServerError(c, "Failed to create account", nil)
		return
	}

	vendor := models.Vendor{
		Email:     req.Email,
		Password:  hashedPassword,
		StoreName: utils.SanitizeString(req.StoreName),
		Phone:     req.Phone,
		IsActive:  true,
	}
	if err := config.DB.Create(&vendor).Error; err != nil {
		utils.LogError("Failed to create vendor: %v", err)
		utils.InternalServerError(c, "Failed to create account", nil)
		return
	}

	utils.LogInfo("Vendor registered: %s", vendor.Email)
	utils.Created(c, "Vendor account created", gin.H{
		"vendor": gin.H{
			"id":         vendor.ID,
			"email":      vendor.Email,
			"store_name": vendor.StoreName,
		},
	})
}

// VendorLogin authenticates a vendor and returns a JWT
func VendorLogin(c *gin.Context) {
	utils.LogInfo("VendorLogin called")

	var req VendorLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid vendor login request: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	var vendor models.Vendor
	if err := config.DB.Where("email = ?", req.Email).First(&vendor).Error; err != nil {
		utils.LogError("Vendor not found for email: %s", req.Email)
		utils.Unauthorized(c, "Invalid credentials")
		return
	}
	if !vendor.IsActive {
		utils.LogError("Inactive vendor attempted login: %s", vendor.Email)
		utils.Forbidden(c, "Vendor account is inactive")
		return
	}
	if !utils.CheckPassword(req.Password, vendor.Password) {
		utils.LogError("Invalid password for vendor: %s", vendor.Email)
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	vendor.LastLogin = time.Now()
	if err := config.DB.Save(&vendor).Error; err != nil {
		utils.LogError("Failed to update last login for vendor %s: %v", vendor.Email, err)
	}

	token, err := utils.GenerateVendorToken(&vendor)
	if err != nil {
		utils.LogError("Failed to sign token for vendor %s: %v", vendor.Email, err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	utils.LogInfo("Vendor login successful: %s", vendor.Email)
	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"vendor": gin.H{
			"id":         vendor.ID,
			"email":      vendor.Email,
			"store_name": vendor.StoreName,
		},
	})
}
