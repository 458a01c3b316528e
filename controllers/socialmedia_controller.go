package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/modamart/ModaMart/config"
	"github.com/modamart/ModaMart/models"
	"github.com/modamart/ModaMart/utils"
)

// SocialMediaRequest represents the request body for social media
// links. Every platform is optional, but at least one must be set and
// each must be a well-formed URL or empty.
type SocialMediaRequest struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	Tiktok    string `json:"tiktok"`
	Pinterest string `json:"pinterest"`
}

func (r *SocialMediaRequest) linkMap() map[string]string {
	return map[string]string{
		"facebook":  r.Facebook,
		"instagram": r.Instagram,
		"twitter":   r.Twitter,
		"tiktok":    r.Tiktok,
		"pinterest": r.Pinterest,
	}
}

// GetSocialMediaLinks lists the stored social media link sets
func GetSocialMediaLinks(c *gin.Context) {
	utils.LogInfo("GetSocialMediaLinks called")

	var links []models.SocialMediaLinks
	if err := config.DB.Order("created_at DESC").Find(&links).Error; err != nil {
		utils.LogError("Failed to fetch social media links: %v", err)
		utils.InternalServerError(c, "Failed to fetch social media links", nil)
		return
	}

	utils.Success(c, "Social media links retrieved successfully", gin.H{"links": links})
}

// CreateSocialMediaLinks creates a social media link set
func CreateSocialMediaLinks(c *gin.Context) {
	utils.LogInfo("CreateSocialMediaLinks called")

	var req SocialMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if err := utils.ValidateSocialLinks(req.linkMap()); err != nil {
		utils.LogError("Social media link validation failed: %v", err)
		utils.ValidationError(c, "Invalid social media links", err.Error())
		return
	}

	links := models.SocialMediaLinks{
		Facebook:  req.Facebook,
		Instagram: req.Instagram,
		Twitter:   req.Twitter,
		Tiktok:    req.Tiktok,
		Pinterest: req.Pinterest,
	}
	if err := config.DB.Create(&links).Error; err != nil {
		utils.LogError("Failed to create social media links: %v", err)
		utils.InternalServerError(c, "Failed to create social media links", nil)
		return
	}

	utils.LogInfo("Successfully created social media links with ID: %d", links.ID)
	utils.Created(c, "Social media links created successfully", gin.H{"links": links})
}

// UpdateSocialMediaLinks replaces a social media link set
func UpdateSocialMediaLinks(c *gin.Context) {
	utils.LogInfo("UpdateSocialMediaLinks called")

	id := c.Param("id")
	var req SocialMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if err := utils.ValidateSocialLinks(req.linkMap()); err != nil {
		utils.LogError("Social media link validation failed: %v", err)
		utils.ValidationError(c, "Invalid social media links", err.Error())
		return
	}

	var links models.SocialMediaLinks
	if err := config.DB.First(&links, id).Error; err != nil {
		utils.LogError("Social media links not found with ID: %s", id)
		utils.NotFound(c, "Social media links not found")
		return
	}

	links.Facebook = req.Facebook
	links.Instagram = req.Instagram
	links.Twitter = req.Twitter
	links.Tiktok = req.Tiktok
	links.Pinterest = req.Pinterest

	if err := config.DB.Save(&links).Error; err != nil {
		utils.LogError("Failed to update social media links %d: %v", links.ID, err)
		utils.InternalServerError(c, "Failed to update social media links", nil)
		return
	}

	utils.LogInfo("Successfully updated social media links ID: %d", links.ID)
	utils.Success(c, "Social media links updated successfully", gin.H{"links": links})
}

// DeleteSocialMediaLinks deletes a social media link set by path ID
func DeleteSocialMediaLinks(c *gin.Context) {
	utils.LogInfo("DeleteSocialMediaLinks called")

	id := c.Param("id")
	var links models.SocialMediaLinks
	if err := config.DB.First(&links, id).Error; err != nil {
		utils.LogError("Social media links not found with ID: %s", id)
		utils.NotFound(c, "Social media links not found")
		return
	}

	if err := config.DB.Delete(&links).Error; err != nil {
		utils.LogError("Failed to delete social media links %d: %v", links.ID, err)
		utils.InternalServerError(c, "Failed to delete social media links", nil)
		return
	}

	utils.LogInfo("Successfully deleted social media links ID: %d", links.ID)
	utils.Success(c, "Social media links deleted successfully", nil)
}
