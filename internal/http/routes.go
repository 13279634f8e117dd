package http

import (
	"net/http"

	"asset_ops_server/internal/http/controllers"
	"asset_ops_server/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine) {
	authController := controllers.NewAuthController()
	assetController := controllers.NewAssetController()
	assetTypeController := controllers.NewAssetTypeController()
	partController := controllers.NewPartController()
	manufactureController := controllers.NewManufactureController()
	transferController := controllers.NewTransferController()
	bigscreenController := controllers.NewBigscreenController()

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// WebSocket endpoint for the bigscreen live feed
	router.GET("/ws", HandleWebSocket)

	// API version 1
	v1 := router.Group("/api/v1")
	{
		// Public authentication routes (no middleware)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authController.Login)
		}

		// Protected authentication routes (require auth)
		authProtected := v1.Group("/auth")
		authProtected.Use(middleware.AuthMiddleware())
		{
			authProtected.POST("/logout", authController.Logout)
			authProtected.GET("/me", authController.Me)
		}

		// Asset routes (authenticated users only)
		assets := v1.Group("/assets")
		assets.Use(middleware.AuthMiddleware())
		{
			assets.GET("/download", transferController.DownloadAssets)
			assets.GET("/templates/:template_id", transferController.DownloadTemplate)
			assets.POST("/upload", transferController.UploadAssets)
			assets.POST("/update_status", assetController.UpdateAssetsStatus)

			assets.GET("", assetController.GetAssets)
			assets.GET("/:id", assetController.GetAsset)
			assets.POST("", assetController.CreateAsset)
			assets.PUT("/:id", assetController.UpdateAsset)
			assets.DELETE("/:id", middleware.AdminOnlyMiddleware(), assetController.DeleteAsset)
		}

		// Asset type routes
		assetTypes := v1.Group("/asset_types")
		assetTypes.Use(middleware.AuthMiddleware())
		{
			assetTypes.GET("", assetTypeController.GetAssetTypes)
			assetTypes.POST("", middleware.AdminOnlyMiddleware(), assetTypeController.CreateAssetType)
			assetTypes.PUT("/:id/parent", middleware.AdminOnlyMiddleware(), assetTypeController.ReparentAssetType)
		}

		// Part routes
		parts := v1.Group("/parts")
		parts.Use(middleware.AuthMiddleware())
		{
			parts.GET("", partController.GetParts)
			parts.GET("/:id", partController.GetPart)
			parts.POST("", partController.CreatePart)
			parts.PUT("/:id", partController.UpdatePart)
			parts.DELETE("/:id", partController.DeletePart)
			parts.PUT("/:id/bind/:asset_id", partController.BindPart)
			parts.PUT("/:id/unbind/:asset_id", partController.UnbindPart)
		}

		// Manufacturer routes
		manufactures := v1.Group("/manufactures")
		manufactures.Use(middleware.AuthMiddleware())
		{
			manufactures.GET("", manufactureController.GetManufactures)
			manufactures.POST("", manufactureController.CreateManufacture)
			manufactures.PUT("/:id", manufactureController.UpdateManufacture)
			manufactures.DELETE("/:id", manufactureController.DeleteManufacture)
		}

		// Bigscreen dashboard routes
		bigscreens := v1.Group("/bigscreens")
		bigscreens.Use(middleware.AuthMiddleware())
		{
			bigscreens.GET("/metrics", bigscreenController.GetMetrics)
			bigscreens.GET("/stats", bigscreenController.GetStats)
		}
	}
}
