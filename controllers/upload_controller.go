package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/modamart/ModaMart/utils"
)

// UploadImageRequest carries a base64 encoded image, with or without a
// data URI prefix
type UploadImageRequest struct {
	Image string `json:"image" binding:"required"`
}

// UploadImage stores a base64 encoded image and returns its URL
func UploadImage(c *gin.Context) {
	utils.LogInfo("UploadImage called")

	var req UploadImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid upload request: %v", err)
		utils.BadRequest(c, "Invalid request. image is required", err.Error())
		return
	}

	path, err := utils.SaveBase64Image(req.Image, "uploads")
	if err != nil {
		utils.LogError("Failed to save image: %v", err)
		if appErr := utils.GetAppError(err); appErr != nil {
			utils.BadRequest(c, appErr.Message, nil)
			return
		}
		utils.InternalServerError(c, "Failed to save image", nil)
		return
	}

	utils.LogInfo("Image saved at %s", path)
	utils.Created(c, "Image uploaded successfully", gin.H{"image_url": path})
}

// UploadImageFile stores a multipart image upload and returns its URL
func UploadImageFile(c *gin.Context) {
	utils.LogInfo("UploadImageFile called")

	file, err := c.FormFile("image")
	if err != nil {
		utils.LogError("No file in upload request: %v", err)
		utils.BadRequest(c, "Invalid request. image file is required", err.Error())
		return
	}

	path, err := utils.SaveUploadedFile(file, "uploads")
	if err != nil {
		utils.LogError("Failed to save uploaded file: %v", err)
		if appErr := utils.GetAppError(err); appErr != nil {
			utils.BadRequest(c, appErr.Message, nil)
			return
		}
		utils.InternalServerError(c, "Failed to save uploaded file", nil)
		return
	}

	utils.LogInfo("Image saved at %s", path)
	utils.Created(c, "Image uploaded successfully", gin.H{"image_url": path})
}
