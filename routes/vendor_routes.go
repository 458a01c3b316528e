package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/modamart/ModaMart/controllers"
	"github.com/modamart/ModaMart/middleware"
)

// initVendorRoutes initializes the vendor portal routes
func initVendorRoutes(router *gin.RouterGroup) {
	vendor := router.Group("/vendor")
	{
		// Public vendor routes
		vendor.POST("/register", controllers.VendorRegister)
		vendor.POST("/login", controllers.VendorLogin)

		// Protected vendor routes
		vendor.Use(middleware.VendorAuthMiddleware())
		{
			vendor.GET("/products", controllers.GetVendorProducts)
			vendor.POST("/products", controllers.CreateProduct)
			vendor.PUT("/products/:id", controllers.UpdateProduct)
			vendor.DELETE("/products/:id", controllers.DeleteProduct)

			vendor.POST("/uploads", controllers.UploadImage)
			vendor.POST("/uploads/file", controllers.UploadImageFile)
		}
	}
}
