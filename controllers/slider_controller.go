package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/modamart/ModaMart/config"
	"github.com/modamart/ModaMart/models"
	"github.com/modamart/ModaMart/utils"
)

// SliderRequest represents the request body for creating or updating a
// slider. ImageURL is the server-relative path returned by the image
// upload endpoint.
type SliderRequest struct {
	ImageURL string `json:"image_url" binding:"required"`
	Link     string `json:"link"`
}

// GetSliders lists sliders with free-text search, recency sort and pagination
func GetSliders(c *gin.Context) {
	utils.LogInfo("GetSliders called")

	var sliders []models.Slider
	if err := config.DB.Find(&sliders).Error; err != nil {
		utils.LogError("Failed to fetch sliders: %v", err)
		utils.InternalServerError(c, "Failed to fetch sliders", nil)
		return
	}

	records := make([]utils.Record, len(sliders))
	for i := range sliders {
		records[i] = utils.Record{
			"id":         sliders[i].ID,
			"image_url":  sliders[i].ImageURL,
			"link":       sliders[i].Link,
			"created_at": sliders[i].CreatedAt,
			"updated_at": sliders[i].UpdatedAt,
		}
	}

	filtered := utils.ApplyFilters(records, utils.TextContains{Query: c.Query("search")})
	utils.SortByNewest(filtered)

	pagination := utils.NewPagination(c)
	pagination.SetTotal(int64(len(filtered)))
	page := utils.PageSlice(filtered, pagination.Page-1, pagination.Limit)

	utils.Success(c, "Sliders retrieved successfully", gin.H{
		"sliders":    page,
		"pagination": pagination.Meta(),
	})
}

// CreateSlider creates a new slider banner
func CreateSlider(c *gin.Context) {
	utils.LogInfo("CreateSlider called")

	var req SliderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid slider request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if !utils.ValidateURL(req.Link) {
		utils.BadRequest(c, "Link must be a valid URL", nil)
		return
	}

	slider := models.Slider{ImageURL: req.ImageURL, Link: req.Link}
	if err := config.DB.Create(&slider).Error; err != nil {
		utils.LogError("Failed to create slider: %v", err)
		utils.InternalServerError(c, "Failed to create slider", nil)
		return
	}

	utils.LogInfo("Successfully created slider with ID: %d", slider.ID)
	utils.Created(c, "Slider created successfully", gin.H{"slider": slider})
}

// UpdateSlider replaces the editable fields of a slider
func UpdateSlider(c *gin.Context) {
	utils.LogInfo("UpdateSlider called")

	id := c.Param("id")
	var req SliderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if !utils.ValidateURL(req.Link) {
		utils.BadRequest(c, "Link must be a valid URL", nil)
		return
	}

	var slider models.Slider
	if err := config.DB.First(&slider, id).Error; err != nil {
		utils.LogError("Slider not found with ID: %s", id)
		utils.NotFound(c, "Slider not found")
		return
	}

	slider.ImageURL = req.ImageURL
	slider.Link = req.Link
	if err := config.DB.Save(&slider).Error; err != nil {
		utils.LogError("Failed to update slider %d: %v", slider.ID, err)
		utils.InternalServerError(c, "Failed to update slider", nil)
		return
	}

	utils.LogInfo("Successfully updated slider ID: %d", slider.ID)
	utils.Success(c, "Slider updated successfully", gin.H{"slider": slider})
}

// DeleteSlider deletes a slider by path ID
func DeleteSlider(c *gin.Context) {
	utils.LogInfo("DeleteSlider called")

	id := c.Param("id")
	var slider models.Slider
	if err := config.DB.First(&slider, id).Error; err != nil {
		utils.LogError("Slider not found with ID: %s", id)
		utils.NotFound(c, "Slider not found")
		return
	}

	if err := config.DB.Delete(&slider).Error; err != nil {
		utils.LogError("Failed to delete slider %d: %v", slider.ID, err)
		utils.InternalServerError(c, "Failed to delete slider", nil)
		return
	}

	utils.LogInfo("Successfully deleted slider ID: %d", slider.ID)
	utils.Success(c, "Slider deleted successfully", nil)
}
