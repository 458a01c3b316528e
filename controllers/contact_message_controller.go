package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/modamart/ModaMart/config"
	"github.com/modamart/ModaMart/models"
	"github.com/modamart/ModaMart/utils"
)

// ContactMessageRequest represents a storefront contact form submission
type ContactMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// SubmitContactMessage stores a contact form submission and forwards
// it to the store inbox. A mail failure does not fail the request; the
// message is already persisted.
func SubmitContactMessage(c *gin.Context) {
	utils.LogInfo("SubmitContactMessage called")

	var req ContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid contact message: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	message := models.ContactMessage{
		Name:    utils.SanitizeString(req.Name),
		Email:   req.Email,
		Subject: utils.SanitizeString(req.Subject),
		Message: utils.SanitizeString(req.Message),
	}
	if err := config.DB.Create(&message).Error; err != nil {
		utils.LogError("Failed to store contact message: %v", err)
		utils.InternalServerError(c, "Failed to submit message", nil)
		return
	}

	// Forward to the store inbox when contact info is configured
	var info models.ContactInfo
	if err := config.DB.Order("created_at DESC").First(&info).Error; err == nil && info.Email != "" {
		if err := utils.SendContactMessage(info.Email, message.Name, message.Email, message.Subject, message.Message); err != nil {
			utils.LogError("Failed to forward contact message %d: %v", message.ID, err)
		}
	}

	utils.LogInfo("Contact message %d submitted by %s", message.ID, message.Email)
	utils.Created(c, "Message submitted successfully", gin.H{"message_id": message.ID})
}

// GetContactMessages lists submitted contact messages with free-text
// search, recency window, sort and pagination
func GetContactMessages(c *gin.Context) {
	utils.LogInfo("GetContactMessages called")

	var messages []models.ContactMessage
	if err := config.DB.Find(&messages).Error; err != nil {
		utils.LogError("Failed to fetch contact messages: %v", err)
		utils.InternalServerError(c, "Failed to fetch contact messages", nil)
		return
	}

	records := make([]utils.Record, len(messages))
	for i := range messages {
		records[i] = utils.Record{
			"id":         messages[i].ID,
			"name":       messages[i].Name,
			"email":      messages[i].Email,
			"subject":    messages[i].Subject,
			"message":    messages[i].Message,
			"created_at": messages[i].CreatedAt,
		}
	}

	filtered := utils.ApplyFilters(records,
		utils.TextContains{Query: c.Query("search")},
		utils.RelativeDateWindow{Field: "created_at", Days: c.Query("received_within_days")},
	)
	utils.SortByNewest(filtered)

	pagination := utils.NewPagination(c)
	pagination.SetTotal(int64(len(filtered)))
	page := utils.PageSlice(filtered, pagination.Page-1, pagination.Limit)

	utils.Success(c, "Contact messages retrieved successfully", gin.H{
		"messages":   page,
		"pagination": pagination.Meta(),
	})
}
