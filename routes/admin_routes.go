package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/modamart/ModaMart/controllers"
	"github.com/modamart/ModaMart/middleware"
)

// initAdminRoutes initializes the admin dashboard routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	{
		// Public admin routes
		admin.POST("/login", controllers.AdminLogin)
		admin.POST("/logout", controllers.AdminLogout)

		// Protected admin routes
		admin.Use(middleware.AdminAuthMiddleware())
		{
			// User management
			admin.GET("/users", controllers.GetUsers)
			admin.PATCH("/users/:id/block", controllers.BlockUser)

			// Coupon management
			admin.GET("/coupons", controllers.GetCoupons)
			admin.POST("/coupons", controllers.CreateCoupon)
			admin.PUT("/coupons/:id", controllers.UpdateCoupon)
			admin.DELETE("/coupons/:id", controllers.DeleteCoupon)
			admin.GET("/coupons/report/excel", controllers.DownloadCouponReportExcel)
			admin.GET("/coupons/report/pdf", controllers.DownloadCouponReportPDF)

			// Review moderation
			admin.GET("/reviews", controllers.GetReviews)
			admin.PATCH("/reviews/:id/status", controllers.UpdateReviewStatus)
			admin.DELETE("/reviews/:id", controllers.DeleteReview)

			// Size management
			admin.GET("/sizes", controllers.GetSizes)
			admin.POST("/sizes", controllers.CreateSize)
			admin.PUT("/sizes/:id", controllers.UpdateSize)
			admin.DELETE("/sizes/:id", controllers.DeleteSize)

			// Slider management
			admin.GET("/sliders", controllers.GetSliders)
			admin.POST("/sliders", controllers.CreateSlider)
			admin.PUT("/sliders/:id", controllers.UpdateSlider)
			admin.DELETE("/sliders/:id", controllers.DeleteSlider)

			// Social media links
			admin.GET("/social-media", controllers.GetSocialMediaLinks)
			admin.POST("/social-media", controllers.CreateSocialMediaLinks)
			admin.PUT("/social-media/:id", controllers.UpdateSocialMediaLinks)
			admin.DELETE("/social-media/:id", controllers.DeleteSocialMediaLinks)

			// Contact info
			admin.GET("/contact-messages", controllers.GetContactMessages)
			admin.GET("/contact-info", controllers.GetContactInfo)
			admin.POST("/contact-info", controllers.CreateContactInfo)
			admin.PUT("/contact-info/:id", controllers.UpdateContactInfo)

			// Delivery charges
			admin.GET("/delivery-charges", controllers.GetDeliveryCharges)
			admin.POST("/delivery-charges", controllers.UpsertDeliveryCharge)
			admin.DELETE("/delivery-charges/:id", controllers.DeleteDeliveryCharge)

			// Legacy imports
			admin.POST("/import/coupons", controllers.ImportLegacyCoupons)
			admin.POST("/import/sizes", controllers.ImportLegacySizes)

			// Media uploads
			admin.POST("/uploads", controllers.UploadImage)
			admin.POST("/uploads/file", controllers.UploadImageFile)
		}
	}
}
