package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/modamart/ModaMart/config"
	"github.com/modamart/ModaMart/models"
	"github.com/modamart/ModaMart/utils"
)

// GetCoupons handles the admin coupon listing with free-text search,
// field filters, recency sort and pagination
func GetCoupons(c *gin.Context) {
	utils.LogInfo("GetCoupons called")

	var coupons []models.Coupon
	if err := config.DB.Find(&coupons).Error; err != nil {
		utils.LogError("Failed to fetch coupons: %v", err)
		utils.InternalServerError(c, "Failed to fetch coupons", nil)
		return
	}
	utils.LogDebug("Fetched %d coupons", len(coupons))

	records := make([]utils.Record, len(coupons))
	for i := range coupons {
		records[i] = couponRecord(&coupons[i])
	}

	filtered := utils.ApplyFilters(records,
		utils.TextContains{Query: c.Query("search")},
		utils.EqualsEnum{Field: "status", Value: c.Query("status")},
		utils.NumericRange{Field: "discount", Range: c.Query("discount_range")},
		utils.RelativeDateWindow{Field: "created_at", Days: c.Query("created_within_days")},
	)
	utils.SortByNewest(filtered)

	pagination := utils.NewPagination(c)
	pagination.SetTotal(int64(len(filtered)))
	page := utils.PageSlice(filtered, pagination.Page-1, pagination.Limit)

	utils.LogInfo("Returning %d of %d coupons", len(page), len(filtered))
	utils.Success(c, "Coupons retrieved successfully", gin.H{
		"coupons":    page,
		"pagination": pagination.Meta(),
	})
}

// GetActiveCoupons returns the active, unexpired coupons for the storefront
func GetActiveCoupons(c *gin.Context) {
	utils.LogInfo("GetActiveCoupons called")

	var coupons []models.Coupon
	if err := config.DB.Where("is_active = ?", true).Order("created_at DESC").Find(&coupons).Error; err != nil {
		utils.LogError("Failed to fetch active coupons: %v", err)
		utils.InternalServerError(c, "Failed to fetch coupons", nil)
		return
	}

	var formatted []gin.H
	for i := range coupons {
		if coupons[i].IsExpired() {
			continue
		}
		formatted = append(formatted, gin.H{
			"code":       strings.ToUpper(coupons[i].Code),
			"discount":   coupons[i].Discount,
			"expiration": couponExpirationLabel(&coupons[i]),
		})
	}

	utils.Success(c, "Coupons retrieved successfully", gin.H{"coupons": formatted})
}

func couponRecord(coupon *models.Coupon) utils.Record {
	status := "inactive"
	if coupon.IsActive {
		status = "active"
	}
	var expiration interface{}
	if coupon.Expiration != nil {
		expiration = coupon.Expiration.Format("2006-01-02")
	}
	return utils.Record{
		"id":         coupon.ID,
		"code":       strings.ToUpper(coupon.Code),
		"discount":   coupon.Discount,
		"expiration": expiration,
		"status":     status,
		"is_active":  coupon.IsActive,
		"is_expired": coupon.IsExpired(),
		"created_at": coupon.CreatedAt,
		"updated_at": coupon.UpdatedAt,
	}
}

func couponExpirationLabel(coupon *models.Coupon) string {
	if coupon.Expiration == nil {
		return "never"
	}
	return coupon.Expiration.Format("2006-01-02")
}
