package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/modamart/ModaMart/config"
	"github.com/modamart/ModaMart/models"
	"github.com/modamart/ModaMart/utils"
)

// ContactInfoRequest represents the request body for contact info
type ContactInfoRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// GetContactInfo returns the stored contact info records
func GetContactInfo(c *gin.Context) {
	utils.LogInfo("GetContactInfo called")

	var infos []models.ContactInfo
	if err := config.DB.Order("created_at DESC").Find(&infos).Error; err != nil {
		utils.LogError("Failed to fetch contact info: %v", err)
		utils.InternalServerError(c, "Failed to fetch contact info", nil)
		return
	}

	utils.Success(c, "Contact info retrieved successfully", gin.H{"contact_info": infos})
}

// CreateContactInfo creates a contact info record
func CreateContactInfo(c *gin.Context) {
	utils.LogInfo("CreateContactInfo called")

	var req ContactInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.Phone != "" && !utils.ValidatePhone(req.Phone) {
		utils.BadRequest(c, "Invalid phone number format", nil)
		return
	}

	info := models.ContactInfo{
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		City:    req.City,
		Country: req.Country,
	}
	if err := config.DB.Create(&info).Error; err != nil {
		utils.LogError("Failed to create contact info: %v", err)
		utils.InternalServerError(c, "Failed to create contact info", nil)
		return
	}

	utils.LogInfo("Successfully created contact info with ID: %d", info.ID)
	utils.Created(c, "Contact info created successfully", gin.H{"contact_info": info})
}

// UpdateContactInfo replaces a contact info record
func UpdateContactInfo(c *gin.Context) {
	utils.LogInfo("UpdateContactInfo called")

	id := c.Param("id")
	var req ContactInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.Phone != "" && !utils.ValidatePhone(req.Phone) {
		utils.BadRequest(c, "Invalid phone number format", nil)
		return
	}

	var info models.ContactInfo
	if err := config.DB.First(&info, id).Error; err != nil {
		utils.LogError("Contact info not found with ID: %s", id)
		utils.NotFound(c, "Contact info not found")
		return
	}

	info.Email = req.Email
	info.Phone = req.Phone
	info.Address = req.Address
	info.City = req.City
	info.Country = req.Country

	if err := config.DB.Save(&info).Error; err != nil {
		utils.LogError("Failed to update contact info %d: %v", info.ID, err)
		utils.InternalServerError(c, "Failed to update contact info", nil)
		return
	}

	utils.LogInfo("Successfully updated contact info ID: %d", info.ID)
	utils.Success(c, "Contact info updated successfully", gin.H{"contact_info": info})
}
