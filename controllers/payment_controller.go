package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/modamart/ModaMart/utils"
	razorpay "github.com/razorpay/razorpay-go"
)

// InitiateRazorpayPayment creates a Razorpay order for the current
// cart total and returns the checkout parameters
func InitiateRazorpayPayment(c *gin.Context) {
	utils.LogInfo("InitiateRazorpayPayment called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		Pincode string `json:"pincode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid payment request for user %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	summary, err := utils.GetCartSummary(user.ID, req.Pincode)
	if err != nil {
		utils.LogError("Failed to load cart for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to load cart", nil)
		return
	}
	if len(summary.Items) == 0 {
		utils.BadRequest(c, "Cart is empty", nil)
		return
	}

	amountPaise := toPaise(summary.Total)
	utils.LogInfo("Creating Razorpay order for user %d, amount %d paise", user.ID, amountPaise)

	client := razorpay.NewClient(os.Getenv("RAZORPAY_KEY"), os.Getenv("RAZORPAY_SECRET"))
	rzOrder, err := client.Order.Create(map[string]interface{}{
		"amount":          amountPaise,
		"currency":        "INR",
		"receipt":         fmt.Sprintf("cart_rcptid_%d", user.ID),
		"payment_capture": 1,
	}, nil)
	if err != nil {
		utils.LogError("Failed to create Razorpay order for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to create payment order", nil)
		return
	}

	utils.Success(c, "Payment initiated successfully", gin.H{
		"razorpay_order_id": rzOrder["id"],
		"amount":            fmt.Sprintf("%.2f", summary.Total),
		"delivery_charge":   fmt.Sprintf("%.2f", summary.DeliveryCharge),
		"currency":          "INR",
		"key":               os.Getenv("RAZORPAY_KEY"),
		"user": gin.H{
			"name":  user.Username,
			"email": user.Email,
		},
	})
}

// toPaise converts a rupee amount to paise. Rounding rather than
// truncating keeps float residue from dropping a paise off the charge.
func toPaise(amount float64) int {
	return int(math.Round(amount * 100))
}

// VerifyRazorpayPayment checks the payment signature and clears the
// cart on success
func VerifyRazorpayPayment(c *gin.Context) {
	utils.LogInfo("VerifyRazorpayPayment called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
		RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
		RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid verification request for user %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	keySecret := os.Getenv("RAZORPAY_SECRET")
	data := req.RazorpayOrderID + "|" + req.RazorpayPaymentID
	h := hmac.New(sha256.New, []byte(keySecret))
	h.Write([]byte(data))
	expected := hex.EncodeToString(h.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(req.RazorpaySignature)) {
		utils.LogError("Payment verification failed for user %d, order %s", user.ID, req.RazorpayOrderID)
		utils.BadRequest(c, "Payment verification failed", gin.H{"retry": true})
		return
	}
	utils.LogInfo("Payment signature verified for user %d, order %s", user.ID, req.RazorpayOrderID)

	if err := utils.Carts.Clear(user.ID); err != nil {
		utils.LogError("Failed to clear cart for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to clear cart", nil)
		return
	}

	utils.Success(c, "Thank you for your payment! Your order has been placed.", gin.H{
		"razorpay_order_id":   req.RazorpayOrderID,
		"razorpay_payment_id": req.RazorpayPaymentID,
	})
}
