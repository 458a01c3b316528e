package controllers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/modamart/ModaMart/config"
	"github.com/modamart/ModaMart/models"
	"github.com/modamart/ModaMart/utils"
)

// CreateCouponRequest represents the request body for creating a new coupon
type CreateCouponRequest struct {
	Code       string     `json:"code" binding:"required"`
	Discount   float64    `json:"discount" binding:"required,gt=0,lte=100"`
	Expiration *time.Time `json:"expiration"`
	IsActive   *bool      `json:"is_active"`
}

// CreateCoupon creates a new coupon
func CreateCoupon(c *gin.Context) {
	utils.LogInfo("CreateCoupon called")

	var req CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid coupon request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	// Coupon codes are stored uppercased
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))

	if !utils.ValidateDiscount(req.Discount) {
		utils.BadRequest(c, "Discount must be between 0 and 100", nil)
		return
	}

	// A nil expiration means the coupon never expires
	if req.Expiration != nil && req.Expiration.Before(time.Now()) {
		utils.BadRequest(c, "Expiration date must be in the future", nil)
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}

	// Check if coupon code already exists (case-insensitive)
	var existingCoupon models.Coupon
	if err := tx.Where("LOWER(code) = LOWER(?)", req.Code).First(&existingCoupon).Error; err == nil {
		tx.Rollback()
		utils.LogError("Coupon code already exists: %s", req.Code)
		utils.Conflict(c, "Coupon code already exists", nil)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	coupon := models.Coupon{
		Code:       req.Code,
		Discount:   req.Discount,
		Expiration: req.Expiration,
		IsActive:   isActive,
	}

	if err := tx.Create(&coupon).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create coupon %s: %v", req.Code, err)
		utils.InternalServerError(c, "Failed to create coupon", nil)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		utils.InternalServerError(c, "Failed to commit transaction", nil)
		return
	}

	utils.LogInfo("Successfully created coupon %s with ID: %d", coupon.Code, coupon.ID)
	utils.Created(c, "Coupon created successfully", gin.H{"coupon": formatCoupon(&coupon)})
}

// UpdateCouponRequest represents the request body for updating a coupon.
// A PUT replaces all four editable fields.
type UpdateCouponRequest struct {
	Code       string     `json:"code" binding:"required"`
	Discount   float64    `json:"discount" binding:"required,gt=0,lte=100"`
	Expiration *time.Time `json:"expiration"`
	IsActive   bool       `json:"is_active"`
}

// UpdateCoupon replaces the editable fields of an existing coupon
func UpdateCoupon(c *gin.Context) {
	utils.LogInfo("UpdateCoupon called")

	id := c.Param("id")
	if id == "" {
		utils.BadRequest(c, "Coupon ID is required", nil)
		return
	}

	var req UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid coupon update request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}

	var coupon models.Coupon
	if err := tx.First(&coupon, id).Error; err != nil {
		tx.Rollback()
		utils.LogError("Coupon not found with ID: %s", id)
		utils.NotFound(c, "Coupon not found")
		return
	}

	// The new code must not collide with another coupon
	var duplicate models.Coupon
	if err := tx.Where("LOWER(code) = LOWER(?) AND id != ?", req.Code, coupon.ID).First(&duplicate).Error; err == nil {
		tx.Rollback()
		utils.Conflict(c, "Coupon code already exists", nil)
		return
	}

	coupon.Code = req.Code
	coupon.Discount = req.Discount
	coupon.Expiration = req.Expiration
	coupon.IsActive = req.IsActive

	if err := tx.Save(&coupon).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to update coupon %d: %v", coupon.ID, err)
		utils.InternalServerError(c, "Failed to update coupon", nil)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		utils.InternalServerError(c, "Failed to commit transaction", nil)
		return
	}

	utils.LogInfo("Successfully updated coupon ID: %d", coupon.ID)
	utils.Success(c, "Coupon updated successfully", gin.H{"coupon": formatCoupon(&coupon)})
}

// DeleteCoupon deletes an existing coupon by path ID
func DeleteCoupon(c *gin.Context) {
	utils.LogInfo("DeleteCoupon called")

	id := c.Param("id")
	if id == "" {
		utils.BadRequest(c, "Coupon ID is required", nil)
		return
	}

	var coupon models.Coupon
	if err := config.DB.First(&coupon, id).Error; err != nil {
		utils.LogError("Coupon not found with ID: %s", id)
		utils.NotFound(c, "Coupon not found")
		return
	}

	if err := config.DB.Delete(&coupon).Error; err != nil {
		utils.LogError("Failed to delete coupon %d: %v", coupon.ID, err)
		utils.InternalServerError(c, "Failed to delete coupon", nil)
		return
	}

	utils.LogInfo("Successfully deleted coupon ID: %d, code: %s", coupon.ID, coupon.Code)
	utils.Success(c, "Coupon deleted successfully", nil)
}

func formatCoupon(coupon *models.Coupon) gin.H {
	var expiration interface{}
	if coupon.Expiration != nil {
		expiration = coupon.Expiration.Format("2006-01-02")
	}
	return gin.H{
		"id":         coupon.ID,
		"code":       strings.ToUpper(coupon.Code),
		"discount":   coupon.Discount,
		"expiration": expiration,
		"is_active":  coupon.IsActive,
		"is_expired": coupon.IsExpired(),
		"created_at": coupon.CreatedAt,
		"updated_at": coupon.UpdatedAt,
	}
}
