package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/modamart/ModaMart/controllers"
	"github.com/modamart/ModaMart/middleware"
)

// initUserRoutes initializes the storefront routes
func initUserRoutes(router *gin.RouterGroup) {
	// Public routes (no authentication required)
	router.POST("/register", controllers.Register)
	router.POST("/login", controllers.Login)
	router.POST("/verify-otp", controllers.VerifyOTP)

	// Storefront browsing
	router.GET("/products", controllers.GetProducts)
	router.GET("/products/featured", controllers.GetFeaturedProducts)
	router.GET("/products/:id", controllers.GetProductDetails)
	router.GET("/products/:id/reviews", controllers.GetProductReviews)
	router.GET("/coupons", controllers.GetActiveCoupons)
	router.GET("/sliders", controllers.GetSliders)
	router.GET("/social-media", controllers.GetSocialMediaLinks)
	router.GET("/contact-info", controllers.GetContactInfo)
	router.POST("/contact", controllers.SubmitContactMessage)

	// Protected routes (require authentication)
	protected := router.Group("/user")
	protected.Use(middleware.AuthMiddleware())
	{
		// Cart operations
		protected.POST("/cart/add", controllers.AddToCart)
		protected.GET("/cart", controllers.GetCart)
		protected.PUT("/cart/update", controllers.UpdateCartItem)
		protected.DELETE("/cart/remove", controllers.RemoveFromCart)
		protected.DELETE("/cart/clear", controllers.ClearCart)

		// Checkout and payment
		protected.GET("/checkout/summary", controllers.GetCheckoutSummary)
		protected.POST("/checkout/payment/initiate", controllers.InitiateRazorpayPayment)
		protected.POST("/checkout/payment/verify", controllers.VerifyRazorpayPayment)

		// Reviews
		protected.POST("/reviews", controllers.AddReview)
	}
}
