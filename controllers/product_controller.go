package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/modamart/ModaMart/config"
	"github.com/modamart/ModaMart/models"
	"github.com/modamart/ModaMart/utils"
)

// ProductRequest represents the request body for creating or updating
// a product in the vendor portal
type ProductRequest struct {
	Name               string   `json:"name" binding:"required"`
	Description        string   `json:"description"`
	Price              float64  `json:"price" binding:"required,gt=0"`
	DiscountPercentage int      `json:"discount_percentage" binding:"gte=0,lte=100"`
	Stock              int      `json:"stock" binding:"gte=0"`
	Sizes              []string `json:"sizes"`
	Colors             []string `json:"colors"`
	ImageURL           string   `json:"image_url"`
	IsFeatured         bool     `json:"is_featured"`
}

// CreateProduct adds a product to the authenticated vendor's catalog
func CreateProduct(c *gin.Context) {
	utils.LogInfo("CreateProduct called")

	vendor, ok := currentVendor(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid product request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	product := models.Product{
		VendorID:           vendor.ID,
		Name:               utils.SanitizeString(req.Name),
		Description:        utils.SanitizeString(req.Description),
		Price:              req.Price,
		DiscountPercentage: req.DiscountPercentage,
		Stock:              req.Stock,
		Sizes:              strings.Join(req.Sizes, ","),
		Colors:             strings.Join(req.Colors, ","),
		ImageURL:           req.ImageURL,
		IsActive:           true,
		IsFeatured:         req.IsFeatured,
	}
	if err := config.DB.Create(&product).Error; err != nil {
		utils.LogError("Failed to create product: %v", err)
		utils.InternalServerError(c, "Failed to create product", nil)
		return
	}

	utils.LogInfo("Product %d created by vendor %d", product.ID, vendor.ID)
	utils.Created(c, "Product created successfully", gin.H{"product": formatProduct(product)})
}

// UpdateProduct replaces the editable fields of a vendor's product
func UpdateProduct(c *gin.Context) {
	utils.LogInfo("UpdateProduct called")

	vendor, ok := currentVendor(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid product request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var product models.Product
	if err := config.DB.Where("id = ? AND vendor_id = ?", c.Param("id"), vendor.ID).
		First(&product).Error; err != nil {
		utils.LogError("Product %s not found for vendor %d", c.Param("id"), vendor.ID)
		utils.NotFound(c, "Product not found")
		return
	}

	updates := map[string]interface{}{
		"name":                utils.SanitizeString(req.Name),
		"description":         utils.SanitizeString(req.Description),
		"price":               req.Price,
		"discount_percentage": req.DiscountPercentage,
		"stock":               req.Stock,
		"sizes":               strings.Join(req.Sizes, ","),
		"colors":              strings.Join(req.Colors, ","),
		"is_featured":         req.IsFeatured,
	}
	if req.ImageURL != "" {
		updates["image_url"] = req.ImageURL
	}
	if err := config.DB.Model(&product).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update product %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to update product", nil)
		return
	}
	config.DB.First(&product, product.ID)

	utils.LogInfo("Product %d updated by vendor %d", product.ID, vendor.ID)
	utils.Success(c, "Product updated successfully", gin.H{"product": formatProduct(product)})
}

// DeleteProduct soft deletes a vendor's product
func DeleteProduct(c *gin.Context) {
	utils.LogInfo("DeleteProduct called")

	vendor, ok := currentVendor(c)
	if !ok {
		return
	}

	var product models.Product
	if err := config.DB.Where("id = ? AND vendor_id = ?", c.Param("id"), vendor.ID).
		First(&product).Error; err != nil {
		utils.LogError("Product %s not found for vendor %d", c.Param("id"), vendor.ID)
		utils.NotFound(c, "Product not found")
		return
	}

	if err := config.DB.Delete(&product).Error; err != nil {
		utils.LogError("Failed to delete product %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to delete product", nil)
		return
	}

	utils.LogInfo("Product %d deleted by vendor %d", product.ID, vendor.ID)
	utils.Success(c, "Product deleted successfully", nil)
}

// GetVendorProducts lists the authenticated vendor's own catalog with
// filtering and pagination
func GetVendorProducts(c *gin.Context) {
	utils.LogInfo("GetVendorProducts called")

	vendor, ok := currentVendor(c)
	if !ok {
		return
	}

	var products []models.Product
	if err := config.DB.Where("vendor_id = ?", vendor.ID).Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products for vendor %d: %v", vendor.ID, err)
		utils.InternalServerError(c, "Failed to fetch products", nil)
		return
	}

	records := make([]utils.Record, len(products))
	for i, product := range products {
		records[i] = productRecord(product)
	}

	records = utils.ApplyFilters(records,
		utils.TextContains{Query: c.Query("search")},
		utils.EqualsEnum{Field: "status", Value: c.Query("status")},
		utils.NumericRange{Field: "price", Range: c.Query("price_range")},
		utils.RelativeDateWindow{Field: "created_at", Days: c.Query("created_within_days")},
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

func currentVendor(c *gin.Context) (models.Vendor, bool) {
	vendorVal, exists := c.Get("vendor")
	if !exists {
		utils.LogError("Vendor not found in context")
		utils.Unauthorized(c, "Unauthorized")
		return models.Vendor{}, false
	}
	return vendorVal.(models.Vendor), true
}

func formatProduct(product models.Product) gin.H {
	return gin.H{
		"id":                  product.ID,
		"name":                product.Name,
		"description":         product.Description,
		"price":               product.Price,
		"discount_percentage": product.DiscountPercentage,
		"discounted_price":    product.DiscountedPrice(),
		"stock":               product.Stock,
		"sizes":               splitList(product.Sizes),
		"colors":              splitList(product.Colors),
		"image_url":           product.ImageURL,
		"is_active":           product.IsActive,
		"is_featured":         product.IsFeatured,
		"average_rating":      product.AverageRating,
		"total_reviews":       product.TotalReviews,
	}
}

func productRecord(product models.Product) utils.Record {
	status := "inactive"
	if product.IsActive {
		status = "active"
	}
	return utils.Record{
		"id":                  product.ID,
		"name":                product.Name,
		"description":         product.Description,
		"price":               product.Price,
		"discount_percentage": product.DiscountPercentage,
		"discounted_price":    product.DiscountedPrice(),
		"stock":               product.Stock,
		"status":              status,
		"image_url":           product.ImageURL,
		"average_rating":      product.AverageRating,
		"created_at":          product.CreatedAt,
	}
}

func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
