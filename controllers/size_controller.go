package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/modamart/ModaMart/config"
	"github.com/modamart/ModaMart/models"
	"github.com/modamart/ModaMart/utils"
)

// SizeRequest represents the request body for creating or updating a size
type SizeRequest struct {
	Name string `json:"name" binding:"required"`
}

// GetSizes lists sizes with free-text search, recency sort and pagination
func GetSizes(c *gin.Context) {
	utils.LogInfo("GetSizes called")

	var sizes []models.Size
	if err := config.DB.Find(&sizes).Error; err != nil {
		utils.LogError("Failed to fetch sizes: %v", err)
		utils.InternalServerError(c, "Failed to fetch sizes", nil)
		return
	}

	records := make([]utils.Record, len(sizes))
	for i := range sizes {
		records[i] = utils.Record{
			"id":         sizes[i].ID,
			"name":       sizes[i].Name,
			"created_at": sizes[i].CreatedAt,
			"updated_at": sizes[i].UpdatedAt,
		}
	}

	filtered := utils.ApplyFilters(records, utils.TextContains{Query: c.Query("search")})
	utils.SortByNewest(filtered)

	pagination := utils.NewPagination(c)
	pagination.SetTotal(int64(len(filtered)))
	page := utils.PageSlice(filtered, pagination.Page-1, pagination.Limit)

	utils.Success(c, "Sizes retrieved successfully", gin.H{
		"sizes":      page,
		"pagination": pagination.Meta(),
	})
}

// CreateSize creates a new size
func CreateSize(c *gin.Context) {
	utils.LogInfo("CreateSize called")

	var req SizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid size request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var existing models.Size
	if err := config.DB.Where("LOWER(name) = LOWER(?)", req.Name).First(&existing).Error; err == nil {
		utils.Conflict(c, "Size already exists", nil)
		return
	}

	size := models.Size{Name: req.Name}
	if err := config.DB.Create(&size).Error; err != nil {
		utils.LogError("Failed to create size %s: %v", req.Name, err)
		utils.InternalServerError(c, "Failed to create size", nil)
		return
	}

	utils.LogInfo("Successfully created size %s with ID: %d", size.Name, size.ID)
	utils.Created(c, "Size created successfully", gin.H{"size": size})
}

// UpdateSize renames an existing size
func UpdateSize(c *gin.Context) {
	utils.LogInfo("UpdateSize called")

	id := c.Param("id")
	var req SizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var size models.Size
	if err := config.DB.First(&size, id).Error; err != nil {
		utils.LogError("Size not found with ID: %s", id)
		utils.NotFound(c, "Size not found")
		return
	}

	var duplicate models.Size
	if err := config.DB.Where("LOWER(name) = LOWER(?) AND id != ?", req.Name, size.ID).First(&duplicate).Error; err == nil {
		utils.Conflict(c, "Size already exists", nil)
		return
	}

	size.Name = req.Name
	if err := config.DB.Save(&size).Error; err != nil {
		utils.LogError("Failed to update size %d: %v", size.ID, err)
		utils.InternalServerError(c, "Failed to update size", nil)
		return
	}

	utils.LogInfo("Successfully updated size ID: %d", size.ID)
	utils.Success(c, "Size updated successfully", gin.H{"size": size})
}

// DeleteSize deletes a size by path ID. The legacy API carried the ID
// in the request body for this one resource; the ID lives in the path
// here like every other resource.
func DeleteSize(c *gin.Context) {
	utils.LogInfo("DeleteSize called")

	id := c.Param("id")
	var size models.Size
	if err := config.DB.First(&size, id).Error; err != nil {
		utils.LogError("Size not found with ID: %s", id)
		utils.NotFound(c, "Size not found")
		return
	}

	if err := config.DB.Delete(&size).Error; err != nil {
		utils.LogError("Failed to delete size %d: %v", size.ID, err)
		utils.InternalServerError(c, "Failed to delete size", nil)
		return
	}

	utils.LogInfo("Successfully deleted size ID: %d, name: %s", size.ID, size.Name)
	utils.Success(c, "Size deleted successfully", nil)
}
