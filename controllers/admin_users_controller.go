package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/modamart/ModaMart/config"
	"github.com/modamart/ModaMart/models"
	"github.com/modamart/ModaMart/utils"
)

// GetUsers lists customer accounts for the admin dashboard with
// filtering and pagination
func GetUsers(c *gin.Context) {
	utils.LogInfo("GetUsers called")

	var users []models.User
	if err := config.DB.Find(&users).Error; err != nil {
		utils.LogError("Failed to fetch users: %v", err)
		utils.InternalServerError(c, "Failed to fetch users", nil)
		return
	}

	records := make([]utils.Record, len(users))
	for i, user := range users {
		status := "active"
		if user.IsBlocked {
			status = "blocked"
		}
		records[i] = utils.Record{
			"id":          user.ID,
			"username":    user.Username,
			"email":       user.Email,
			"status":      status,
			"is_verified": user.IsVerified,
			"created_at":  user.CreatedAt,
		}
	}

	records = utils.ApplyFilters(records,
		utils.TextContains{Query: c.Query("search")},
		utils.EqualsEnum{Field: "status", Value: c.Query("status")},
		utils.RelativeDateWindow{Field: "created_at", Days: c.Query("created_within_days")},
	)
	utils.SortByNewest(records)

	pagination := utils.NewPagination(c)
	pagination.SetTotal(int64(len(records)))
	page := utils.PageSlice(records, pagination.Page-1, pagination.Limit)

	utils.Success(c, "Users retrieved successfully", gin.H{
		"users":      page,
		"pagination": pagination.Meta(),
	})
}

// BlockUser toggles a customer's blocked state
func BlockUser(c *gin.Context) {
	utils.LogInfo("BlockUser called")

	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		utils.LogError("User not found: %s", c.Param("id"))
		utils.NotFound(c, "User not found")
		return
	}

	blocked := !user.IsBlocked
	if err := config.DB.Model(&user).Update("is_blocked", blocked).Error; err != nil {
		utils.LogError("Failed to update block state for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update user", nil)
		return
	}

	message := "User unblocked successfully"
	if blocked {
		message = "User blocked successfully"
	}
	utils.LogInfo("User %d block state set to %t", user.ID, blocked)
	utils.Success(c, message, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"is_blocked": blocked,
		},
	})
}
