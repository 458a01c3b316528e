package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/modamart/ModaMart/config"
	"github.com/modamart/ModaMart/models"
	"github.com/modamart/ModaMart/utils"
)

// DeliveryChargeRequest represents the request body for a per-pincode
// delivery fee rule
type DeliveryChargeRequest struct {
	Pincode        string  `json:"pincode" binding:"required"`
	Charge         float64 `json:"charge" binding:"gte=0"`
	MinOrderAmount float64 `json:"min_order_amount" binding:"gte=0"`
	IsActive       *bool   `json:"is_active"`
}

// GetDeliveryCharges lists the configured delivery fee rules
func GetDeliveryCharges(c *gin.Context) {
	utils.LogInfo("GetDeliveryCharges called")

	var charges []models.DeliveryCharge
	if err := config.DB.Order("pincode").Find(&charges).Error; err != nil {
		utils.LogError("Failed to fetch delivery charges: %v", err)
		utils.InternalServerError(c, "Failed to fetch delivery charges", nil)
		return
	}

	utils.Success(c, "Delivery charges retrieved successfully", gin.H{
		"delivery_charges": charges,
		"default_charge":   utils.DefaultDeliveryCharge,
	})
}

// UpsertDeliveryCharge creates or updates the rule for a pincode
func UpsertDeliveryCharge(c *gin.Context) {
	utils.LogInfo("UpsertDeliveryCharge called")

	var req DeliveryChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid delivery charge request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	var charge models.DeliveryCharge
	err := config.DB.Where("pincode = ?", req.Pincode).First(&charge).Error
	if err == nil {
		if err := config.DB.Model(&charge).Updates(map[string]interface{}{
			"charge":           req.Charge,
			"min_order_amount": req.MinOrderAmount,
			"is_active":        active,
		}).Error; err != nil {
			utils.LogError("Failed to update delivery charge for %s: %v", req.Pincode, err)
			utils.InternalServerError(c, "Failed to update delivery charge", nil)
			return
		}
		utils.Success(c, "Delivery charge updated successfully", gin.H{"pincode": req.Pincode})
		return
	}

	charge = models.DeliveryCharge{
		Pincode:        req.Pincode,
		Charge:         req.Charge,
		MinOrderAmount: req.MinOrderAmount,
		IsActive:       active,
	}
	if err := config.DB.Create(&charge).Error; err != nil {
		utils.LogError("Failed to create delivery charge for %s: %v", req.Pincode, err)
		utils.InternalServerError(c, "Failed to create delivery charge", nil)
		return
	}

	utils.LogInfo("Delivery charge rule created for pincode %s", req.Pincode)
	utils.Created(c, "Delivery charge created successfully", gin.H{"pincode": req.Pincode})
}

// DeleteDeliveryCharge removes the rule for a pincode
func DeleteDeliveryCharge(c *gin.Context) {
	utils.LogInfo("DeleteDeliveryCharge called")

	var charge models.DeliveryCharge
	if err := config.DB.First(&charge, c.Param("id")).Error; err != nil {
		utils.LogError("Delivery charge not found: %s", c.Param("id"))
		utils.NotFound(c, "Delivery charge not found")
		return
	}

	if err := config.DB.Delete(&charge).Error; err != nil {
		utils.LogError("Failed to delete delivery charge %d: %v", charge.ID, err)
		utils.InternalServerError(c, "Failed to delete delivery charge", nil)
		return
	}

	utils.Success(c, "Delivery charge deleted successfully", nil)
}
