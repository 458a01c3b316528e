package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/modamart/ModaMart/utils"
)

// GetCheckoutSummary returns the amounts the customer will be charged:
// cart subtotal, delivery charge for the given pincode and grand total
func GetCheckoutSummary(c *gin.Context) {
	utils.LogInfo("GetCheckoutSummary called")

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
	if len(summary.Items) == 0 {
		utils.BadRequest(c, "Cart is empty", nil)
		return
	}

	items := make([]gin.H, len(summary.Items))
	for i, item := range summary.Items {
		items[i] = gin.H{
			"product_id": item.ProductID,
			"name":       item.Product.Name,
			"size":       item.Size,
			"color":      item.Color,
			"quantity":   item.Quantity,
			"price":      fmt.Sprintf("%.2f", item.Price),
			"line_total": fmt.Sprintf("%.2f", item.LineTotal()),
		}
	}

	utils.LogInfo("Checkout summary for user %d: subtotal %.2f, delivery %.2f", user.ID, summary.Subtotal, summary.DeliveryCharge)
	utils.Success(c, "Checkout summary retrieved successfully", gin.H{
		"items":           items,
		"subtotal":        fmt.Sprintf("%.2f", summary.Subtotal),
		"delivery_charge": fmt.Sprintf("%.2f", summary.DeliveryCharge),
		"total":           fmt.Sprintf("%.2f", summary.Total),
	})
}
