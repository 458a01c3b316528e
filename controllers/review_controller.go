package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/modamart/ModaMart/config"
	"github.com/modamart/ModaMart/models"
	"github.com/modamart/ModaMart/utils"
)

// AddReviewRequest represents the request body for submitting a review
type AddReviewRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Reviewer  string `json:"reviewer" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

// AddReview submits a product review. New reviews start pending and
// only appear on the storefront once approved.
func AddReview(c *gin.Context) {
	utils.LogInfo("AddReview called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid review request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if !utils.ValidateRating(req.Rating) {
		utils.BadRequest(c, "Rating must be between 1 and 5", nil)
		return
	}

	var product models.Product
	if err := config.DB.First(&product, req.ProductID).Error; err != nil {
		utils.LogError("Product not found: %d", req.ProductID)
		utils.NotFound(c, "Product not found")
		return
	}

	review := models.Review{
		ProductID: req.ProductID,
		UserID:    user.ID,
		Reviewer:  utils.SanitizeString(req.Reviewer),
		Rating:    req.Rating,
		Comment:   utils.SanitizeString(req.Comment),
		Status:    models.ReviewStatusPending,
	}
	if err := config.DB.Create(&review).Error; err != nil {
		utils.LogError("Failed to create review for product %d: %v", req.ProductID, err)
		utils.InternalServerError(c, "Failed to submit review", nil)
		return
	}

	utils.LogInfo("Review %d submitted for product %d by user %d", review.ID, req.ProductID, user.ID)
	utils.Created(c, "Review submitted for moderation", gin.H{
		"review": gin.H{
			"id":         review.ID,
			"product_id": review.ProductID,
			"reviewer":   review.Reviewer,
			"rating":     review.Rating,
			"comment":    review.Comment,
			"status":     review.Status,
		},
	})
}

// GetProductReviews returns the approved reviews for a product
func GetProductReviews(c *gin.Context) {
	utils.LogInfo("GetProductReviews called")

	productID := c.Param("id")
	var product models.Product
	if err := config.DB.First(&product, productID).Error; err != nil {
		utils.LogError("Product not found: %s", productID)
		utils.NotFound(c, "Product not found")
		return
	}

	var reviews []models.Review
	if err := config.DB.
		Where("product_id = ? AND status = ?", product.ID, models.ReviewStatusApproved).
		Order("created_at DESC").Find(&reviews).Error; err != nil {
		utils.LogError("Failed to fetch reviews for product %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to fetch reviews", nil)
		return
	}

	formatted := make([]gin.H, len(reviews))
	for i, review := range reviews {
		formatted[i] = gin.H{
			"id":         review.ID,
			"reviewer":   review.Reviewer,
			"rating":     review.Rating,
			"comment":    review.Comment,
			"created_at": review.CreatedAt,
		}
	}

	utils.Success(c, "Reviews retrieved successfully", gin.H{
		"reviews":        formatted,
		"average_rating": product.AverageRating,
		"total_reviews":  product.TotalReviews,
	})
}
