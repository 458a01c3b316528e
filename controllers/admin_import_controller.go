package controllers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/modamart/ModaMart/config"
	"github.com/modamart/ModaMart/models"
	"github.com/modamart/ModaMart/utils"
)

var legacyImporter *utils.LegacyClient

func legacyClient() *utils.LegacyClient {
	if legacyImporter == nil {
		legacyImporter = utils.NewLegacyClient(config.AppConfig.LegacyAPIURL)
	}
	return legacyImporter
}

// ImportLegacyCoupons pulls the coupon list from the legacy storefront
// API and upserts it by code. A failed or superseded fetch imports
// nothing rather than clobbering existing rows.
func ImportLegacyCoupons(c *gin.Context) {
	utils.LogInfo("ImportLegacyCoupons called")

	records, stale := legacyClient().FetchList(c.Request.Context(), "coupons")
	if stale {
		utils.LogInfo("Coupon import superseded by a newer fetch, discarding")
		utils.Success(c, "Import superseded by a newer request", gin.H{"imported": 0})
		return
	}

	imported := 0
	for _, record := range records {
		code := strings.ToUpper(strings.TrimSpace(utils.Stringify(record["code"])))
		if code == "" {
			continue
		}

		coupon := models.Coupon{
			Code:     code,
			IsActive: true,
		}
		if discount, ok := record["discount"].(float64); ok && discount > 0 && discount <= 100 {
			coupon.Discount = discount
		} else {
			utils.LogDebug("Skipping legacy coupon %s with unusable discount", code)
			continue
		}
		if raw := utils.Stringify(record["expiration"]); raw != "" {
			if exp, err := time.Parse(time.RFC3339, raw); err == nil {
				coupon.Expiration = &exp
			}
		}

		var existing models.Coupon
		err := config.DB.Where("LOWER(code) = LOWER(?)", code).First(&existing).Error
		if err == nil {
			if err := config.DB.Model(&existing).Updates(map[string]interface{}{
				"discount":   coupon.Discount,
				"expiration": coupon.Expiration,
			}).Error; err != nil {
				utils.LogError("Failed to update legacy coupon %s: %v", code, err)
				continue
			}
		} else {
			if err := config.DB.Create(&coupon).Error; err != nil {
				utils.LogError("Failed to import legacy coupon %s: %v", code, err)
				continue
			}
		}
		imported++
	}

	utils.LogInfo("Imported %d of %d legacy coupons", imported, len(records))
	utils.Success(c, "Legacy coupons imported", gin.H{
		"fetched":  len(records),
		"imported": imported,
	})
}

// ImportLegacySizes pulls the size list from the legacy storefront API
// and upserts it by name
func ImportLegacySizes(c *gin.Context) {
	utils.LogInfo("ImportLegacySizes called")

	records, stale := legacyClient().FetchList(c.Request.Context(), "sizes")
	if stale {
		utils.LogInfo("Size import superseded by a newer fetch, discarding")
		utils.Success(c, "Import superseded by a newer request", gin.H{"imported": 0})
		return
	}

	imported := 0
	for _, record := range records {
		name := strings.TrimSpace(utils.Stringify(record["name"]))
		if name == "" {
			continue
		}

		var existing models.Size
		if err := config.DB.Where("LOWER(name) = LOWER(?)", name).First(&existing).Error; err == nil {
			continue
		}
		if err := config.DB.Create(&models.Size{Name: name}).Error; err != nil {
			utils.LogError("Failed to import legacy size %s: %v", name, err)
			continue
		}
		imported++
	}

	utils.LogInfo("Imported %d of %d legacy sizes", imported, len(records))
	utils.Success(c, "Legacy sizes imported", gin.H{
		"fetched":  len(records),
		"imported": imported,
	})
}
