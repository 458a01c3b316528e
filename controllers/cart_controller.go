package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/modamart/ModaMart/config"
	"github.com/modamart/ModaMart/models"
	"github.com/modamart/ModaMart/utils"
)

// AddToCartRequest represents the request body for adding a product
// variant to the cart
type AddToCartRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// UpdateCartItemRequest sets the quantity of an existing cart line
type UpdateCartItemRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// AddToCart adds a product variant to the user's cart. Adding a
// combination already in the cart merges the full requested quantity
// into the existing line, clamped to the per-item maximum.
func AddToCart(c *gin.Context) {
	utils.LogInfo("AddToCart called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid add to cart request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var product models.Product
	if err := config.DB.Where("id = ? AND is_active = ?", req.ProductID, true).
		First(&product).Error; err != nil {
		utils.LogError("Product not found: %d", req.ProductID)
		utils.NotFound(c, "Product not found")
		return
	}
	if product.Stock < req.Quantity {
		utils.BadRequest(c, "Insufficient stock", gin.H{"available": product.Stock})
		return
	}

	items, err := utils.Carts.Load(user.ID)
	if err != nil {
		utils.LogError("Failed to load cart for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to add to cart", nil)
		return
	}

	var item models.CartItem
	if line := utils.FindCartLine(items, req.ProductID, req.Size, req.Color); line != nil {
		item = *line
		item.Quantity = utils.MergeQuantity(item.Quantity, req.Quantity)
	} else {
		item = models.CartItem{
			UserID:    user.ID,
			ProductID: req.ProductID,
			Size:      req.Size,
			Color:     req.Color,
			Quantity:  utils.MergeQuantity(0, req.Quantity),
			Price:     product.DiscountedPrice(),
			Discount:  product.DiscountPercentage,
		}
	}

	if err := utils.Carts.Save(&item); err != nil {
		utils.LogError("Failed to save cart item for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to add to cart", nil)
		return
	}

	utils.LogInfo("User %d added product %d (size=%s color=%s) x%d", user.ID, req.ProductID, req.Size, req.Color, item.Quantity)
	utils.Success(c, "Product added to cart", gin.H{
		"item": gin.H{
			"product_id": item.ProductID,
			"size":       item.Size,
			"color":      item.Color,
			"quantity":   item.Quantity,
			"price":      item.Price,
		},
	})
}

// UpdateCartItem sets the quantity of a cart line. Quantities below 1
// are rejected; stock is not rechecked until checkout.
func UpdateCartItem(c *gin.Context) {
	utils.LogInfo("UpdateCartItem called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid cart update request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	quantity := req.Quantity
	if quantity > utils.MaxCartQuantity {
		quantity = utils.MaxCartQuantity
	}

	items, err := utils.Carts.Load(user.ID)
	if err != nil {
		utils.LogError("Failed to load cart for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update cart", nil)
		return
	}
	if utils.FindCartLine(items, req.ProductID, req.Size, req.Color) == nil {
		utils.LogError("Cart item not found for user %d product %d", user.ID, req.ProductID)
		utils.NotFound(c, "Cart item not found")
		return
	}

	if err := utils.Carts.SetQuantity(user.ID, req.ProductID, req.Size, req.Color, quantity); err != nil {
		utils.LogError("Failed to update cart for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update cart", nil)
		return
	}

	utils.Success(c, "Cart updated successfully", gin.H{
		"item": gin.H{
			"product_id": req.ProductID,
			"size":       req.Size,
			"color":      req.Color,
			"quantity":   quantity,
		},
	})
}

// RemoveFromCart deletes a cart line
func RemoveFromCart(c *gin.Context) {
	utils.LogInfo("RemoveFromCart called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid cart remove request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if err := utils.Carts.Remove(user.ID, req.ProductID, req.Size, req.Color); err != nil {
		utils.LogError("Failed to remove cart item for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to remove from cart", nil)
		return
	}

	utils.Success(c, "Item removed from cart", nil)
}

// ClearCart empties the user's cart
func ClearCart(c *gin.Context) {
	utils.LogInfo("ClearCart called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := utils.Carts.Clear(user.ID); err != nil {
		utils.LogError("Failed to clear cart for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to clear cart", nil)
		return
	}

	utils.Success(c, "Cart cleared successfully", nil)
}

// GetCart returns the cart lines with subtotal, delivery charge and total
func GetCart(c *gin.Context) {
	utils.LogInfo("GetCart called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	summary, err := utils.GetCartSummary(user.ID, c.Query("pincode"))
	if err != nil {
		utils.LogError("Failed to load cart for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to load cart", nil)
		return
	}

	items := make([]gin.H, len(summary.Items))
	for i, item := range summary.Items {
		items[i] = gin.H{
			"product_id": item.ProductID,
			"name":       item.Product.Name,
			"image_url":  item.Product.ImageURL,
			"size":       item.Size,
			"color":      item.Color,
			"quantity":   item.Quantity,
			"price":      item.Price,
			"discount":   item.Discount,
			"line_total": item.LineTotal(),
		}
	}

	utils.Success(c, "Cart retrieved successfully", gin.H{
		"items":           items,
		"subtotal":        summary.Subtotal,
		"delivery_charge": summary.DeliveryCharge,
		"total":           summary.Total,
	})
}

func currentUser(c *gin.Context) (models.User, bool) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "Unauthorized")
		return models.User{}, false
	}
	return userVal.(models.User), true
}
