package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/modamart/ModaMart/config"
	"github.com/modamart/ModaMart/models"
	"github.com/modamart/ModaMart/utils"
	"gorm.io/gorm"
)

// GetReviews returns the review list for the admin dashboard with
// filtering and pagination
func GetReviews(c *gin.Context) {
	utils.LogInfo("GetReviews called")

	var reviews []models.Review
	if err := config.DB.Find(&reviews).Error; err != nil {
		utils.LogError("Failed to fetch reviews: %v", err)
		utils.InternalServerError(c, "Failed to fetch reviews", nil)
		return
	}

	records := make([]utils.Record, len(reviews))
	for i, review := range reviews {
		records[i] = reviewRecord(review)
	}

	records = utils.ApplyFilters(records,
		utils.TextContains{Query: c.Query("search")},
		utils.EqualsEnum{Field: "status", Value: c.Query("status")},
		utils.NumericRange{Field: "rating", Range: c.Query("rating_range")},
		utils.RelativeDateWindow{Field: "created_at", Days: c.Query("created_within_days")},
	)
	utils.SortByNewest(records)

	pagination := utils.NewPagination(c)
	pagination.SetTotal(int64(len(records)))
	page := utils.PageSlice(records, pagination.Page-1, pagination.Limit)

	utils.Success(c, "Reviews retrieved successfully", gin.H{
		"reviews":    page,
		"pagination": pagination.Meta(),
	})
}

// UpdateReviewStatusRequest carries the moderation decision
type UpdateReviewStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

// UpdateReviewStatus approves or rejects a pending review and keeps
// the product's rating aggregates in step
func UpdateReviewStatus(c *gin.Context) {
	utils.LogInfo("UpdateReviewStatus called")

	var req UpdateReviewStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid status request: %v", err)
		utils.BadRequest(c, "Status must be approved or rejected", err.Error())
		return
	}

	var review models.Review
	if err := config.DB.First(&review, c.Param("id")).Error; err != nil {
		utils.LogError("Review not found: %s", c.Param("id"))
		utils.NotFound(c, "Review not found")
		return
	}

	previous := review.Status
	tx := config.DB.Begin()
	if err := tx.Model(&review).Update("status", req.Status).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to update review %d: %v", review.ID, err)
		utils.InternalServerError(c, "Failed to update review", nil)
		return
	}
	if err := recalcProductRating(tx, review.ProductID); err != nil {
		tx.Rollback()
		utils.LogError("Failed to recalc rating for product %d: %v", review.ProductID, err)
		utils.InternalServerError(c, "Failed to update review", nil)
		return
	}
	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit review update: %v", err)
		utils.InternalServerError(c, "Failed to update review", nil)
		return
	}

	utils.LogInfo("Review %d moved %s -> %s", review.ID, previous, req.Status)
	utils.Success(c, "Review updated successfully", gin.H{
		"review": gin.H{
			"id":     review.ID,
			"status": req.Status,
		},
	})
}

// DeleteReview removes a review and refreshes the product aggregates
func DeleteReview(c *gin.Context) {
	utils.LogInfo("DeleteReview called")

	var review models.Review
	if err := config.DB.First(&review, c.Param("id")).Error; err != nil {
		utils.LogError("Review not found: %s", c.Param("id"))
		utils.NotFound(c, "Review not found")
		return
	}

	tx := config.DB.Begin()
	if err := tx.Delete(&review).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to delete review %d: %v", review.ID, err)
		utils.InternalServerError(c, "Failed to delete review", nil)
		return
	}
	if err := recalcProductRating(tx, review.ProductID); err != nil {
		tx.Rollback()
		utils.LogError("Failed to recalc rating for product %d: %v", review.ProductID, err)
		utils.InternalServerError(c, "Failed to delete review", nil)
		return
	}
	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit review delete: %v", err)
		utils.InternalServerError(c, "Failed to delete review", nil)
		return
	}

	utils.LogInfo("Review %d deleted", review.ID)
	utils.Success(c, "Review deleted successfully", nil)
}

// recalcProductRating rewrites AverageRating and TotalReviews from the
// approved reviews currently on record
func recalcProductRating(tx *gorm.DB, productID uint) error {
	var stats struct {
		Avg   float64
		Count int64
	}
	if err := tx.Model(&models.Review{}).
		Where("product_id = ? AND status = ?", productID, models.ReviewStatusApproved).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as count").
		Scan(&stats).Error; err != nil {
		return err
	}
	return tx.Model(&models.Product{}).Where("id = ?", productID).Updates(map[string]interface{}{
		"average_rating": stats.Avg,
		"total_reviews":  stats.Count,
	}).Error
}

func reviewRecord(review models.Review) utils.Record {
	return utils.Record{
		"id":         review.ID,
		"product_id": review.ProductID,
		"reviewer":   review.Reviewer,
		"rating":     review.Rating,
		"comment":    review.Comment,
		"status":     review.Status,
		"created_at": review.CreatedAt,
	}
}
