package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/canakikol/stok-takip/controllers"
	"github.com/canakikol/stok-takip/middleware"
)

func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
		auth.POST("/logout", controllers.Logout)
	}

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		// Product routes
		products := protected.Group("/products")
		{
			products.GET("", controllers.GetProducts)
			products.GET("/summary", controllers.ProductSummary)
			products.GET("/low-stock", controllers.LowStockItems)
			products.GET("/:id", controllers.GetProduct)
			products.POST("", controllers.CreateProduct)
			products.PUT("/:id", controllers.UpdateProduct)
			products.DELETE("/:id", controllers.DeleteProduct)
		}

		// Sales routes
		sales := protected.Group("/sales")
		{
			sales.POST("", controllers.CreateSale)
			sales.GET("", controllers.GetSales)
			sales.GET("/recent", controllers.GetRecentSales)
			sales.GET("/analytics", controllers.SalesAnalytics)
			sales.DELETE("", controllers.DeleteSaleRecords)
		}

		// Customer routes
		customers := protected.Group("/customers")
		{
			customers.GET("", controllers.GetCustomers)
			customers.GET("/segmentation", controllers.CustomerSegmentation)
			customers.POST("", controllers.CreateCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)
		}

		// Supplier routes
		suppliers := protected.Group("/suppliers")
		{
			suppliers.GET("", controllers.GetSuppliers)
			suppliers.GET("/analytics", controllers.SupplierAnalytics)
			suppliers.POST("", controllers.CreateSupplier)
			suppliers.PUT("/:id", controllers.UpdateSupplier)
			suppliers.DELETE("/:id", controllers.DeleteSupplier)
		}

		// Order routes
		orders := protected.Group("/orders")
		{
			orders.GET("", controllers.GetOrders)
			orders.GET("/auto-suggestions", controllers.AutoOrderSuggestions)
			orders.POST("", controllers.CreateOrder)
			orders.POST("/auto", controllers.PlaceAutoOrder)
			orders.PUT("/:id/status", controllers.UpdateOrderStatus)
			orders.DELETE("/:id", controllers.DeleteOrder)
		}

		// Pricing routes
		pricing := protected.Group("/pricing")
		{
			pricing.GET("/recommendations", controllers.PricingRecommendations)
			pricing.POST("/proposals", controllers.CreatePriceProposal)
			pricing.POST("/proposals/:id/confirm", controllers.ConfirmPriceProposal)
			pricing.DELETE("/proposals/:id", controllers.CancelPriceProposal)
		}

		// Forecast
		protected.GET("/analytics/forecast", controllers.StockForecast)

		// Reports
		protected.POST("/reports", controllers.GenerateReport)
		protected.GET("/session", controllers.VerifySession)
	}
}
