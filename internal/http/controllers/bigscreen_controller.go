package controllers

import (
	"net/http"

	"asset_ops_server/internal/db"
	"asset_ops_server/internal/models"

	"github.com/gin-gonic/gin"
)

// BigscreenController serves the machine-room dashboard endpoints
type BigscreenController struct{}

// NewBigscreenController creates a new bigscreen controller
func NewBigscreenController() *BigscreenController {
	return &BigscreenController{}
}

// GetMetrics lists the seeded dashboard metrics catalog
func (bc *BigscreenController) GetMetrics(c *gin.Context) {
	var metrics []models.BigscreenMetric
	if err := db.GetDB().Order("name ASC").Find(&metrics).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "INTERNAL_ERROR",
			"message": "Failed to load metrics catalog",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    metrics,
		"message": "Metrics retrieved successfully",
	})
}

// GetStats returns live inventory counters for the dashboard header
func (bc *BigscreenController) GetStats(c *gin.Context) {
	database := db.GetDB()

	var totalAssets int64
	if err := database.Model(&models.AssetBasicInfo{}).Count(&totalAssets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "INTERNAL_ERROR",
			"message": "Failed to count assets",
		})
		return
	}

	byStatus := make(map[string]int64)
	for _, status := range []string{
		models.AssetStatusInUse,
		models.AssetStatusFree,
		models.AssetStatusMaintenance,
		models.AssetStatusScrapped,
	} {
		var n int64
		if err := database.Model(&models.AssetBasicInfo{}).Where("asset_status = ?", status).Count(&n).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "INTERNAL_ERROR",
				"message": "Failed to count assets by status",
			})
			return
		}
		byStatus[status] = n
	}

	var inventoryParts, usedParts int64
	if err := database.Model(&models.AssetPartsInfo{}).
		Where("asset_id IS NULL OR asset_id = ''").Count(&inventoryParts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "INTERNAL_ERROR",
			"message": "Failed to count parts",
		})
		return
	}
	if err := database.Model(&models.AssetPartsInfo{}).
		Where("asset_id IS NOT NULL AND asset_id <> ''").Count(&usedParts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "INTERNAL_ERROR",
			"message": "Failed to count parts",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"total_assets":     totalAssets,
			"assets_by_status": byStatus,
			"inventory_parts":  inventoryParts,
			"used_parts":       usedParts,
		},
		"message": "Stats retrieved successfully",
	})
}
