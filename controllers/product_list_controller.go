package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/modamart/ModaMart/config"
	"github.com/modamart/ModaMart/models"
	"github.com/modamart/ModaMart/utils"
	"gorm.io/gorm"
)

// GetProducts lists active products for the storefront with filtering
// and pagination
func GetProducts(c *gin.Context) {
	utils.LogInfo("GetProducts called")

	var products []models.Product
	if err := config.DB.Where("is_active = ?", true).Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", nil)
		return
	}

	records := make([]utils.Record, len(products))
	for i, product := range products {
		records[i] = productRecord(product)
	}

	records = utils.ApplyFilters(records,
		utils.TextContains{Query: c.Query("search")},
		utils.NumericRange{Field: "price", Range: c.Query("price_range")},
		utils.NumericRange{Field: "average_rating", Range: c.Query("rating_range")},
	)
	utils.SortByNewest(records)

	pagination := utils.NewPagination(c)
	pagination.SetTotal(int64(len(records)))
	page := utils.PageSlice(records, pagination.Page-1, pagination.Limit)

	utils.Success(c, "Products retrieved successfully", gin.H{
		"products":   page,
		"pagination": pagination.Meta(),
	})
}

// GetFeaturedProducts returns the featured products for the home page
func GetFeaturedProducts(c *gin.Context) {
	utils.LogInfo("GetFeaturedProducts called")

	var products []models.Product
	if err := config.DB.Where("is_active = ? AND is_featured = ?", true, true).
		Order("created_at DESC").Limit(8).Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch featured products: %v", err)
		utils.InternalServerError(c, "Failed to fetch featured products", nil)
		return
	}

	formatted := make([]gin.H, len(products))
	for i, product := range products {
		formatted[i] = formatProduct(product)
	}

	utils.Success(c, "Featured products retrieved successfully", gin.H{"products": formatted})
}

// GetProductDetails returns a single product with its images and
// increments the view counter
func GetProductDetails(c *gin.Context) {
	utils.LogInfo("GetProductDetails called")

	var product models.Product
	if err := config.DB.Preload("ProductImages").
		Where("id = ? AND is_active = ?", c.Param("id"), true).
		First(&product).Error; err != nil {
		utils.LogError("Product not found: %s", c.Param("id"))
		utils.NotFound(c, "Product not found")
		return
	}

	// view counter is best effort
	config.DB.Model(&product).UpdateColumn("views", gorm.Expr("views + 1"))

	images := make([]gin.H, len(product.ProductImages))
	for i, img := range product.ProductImages {
		images[i] = gin.H{"id": img.ID, "url": img.URL}
	}

	details := formatProduct(product)
	details["description"] = product.Description
	details["images"] = images
	details["views"] = product.Views + 1

	utils.Success(c, "Product retrieved successfully", gin.H{"product": details})
}
