package controllers

import (
	"net/http"

	"asset_ops_server/internal/services"

	"github.com/gin-gonic/gin"
)

// AssetController handles asset-related HTTP requests
type AssetController struct {
	service *services.AssetService
}

// NewAssetController creates a new asset controller
func NewAssetController() *AssetController {
	return &AssetController{service: services.NewAssetService()}
}

// GetAssets returns one filtered, sorted page of composed assets
func (ac *AssetController) GetAssets(c *gin.Context) {
	sorts, err := parseSortParams(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	filter := services.AssetFilter{
		AssetID:         c.Query("asset_id"),
		Name:            c.Query("asset_name"),
		Status:          c.Query("asset_status"),
		FramePosition:   c.Query("frame_position"),
		CabinetPosition: c.Query("cabinet_position"),
		UPosition:       c.Query("u_position"),
		EquipmentNumber: c.Query("equipment_number"),
		AssetNumber:     c.Query("asset_number"),
		SnNumber:        c.Query("sn_number"),
		DepartmentName:  c.Query("department_name"),
		UserName:        c.Query("user_name"),
	}

	page := parsePageParams(c)
	result, err := ac.service.List(filter, page, sorts)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       result.Rows,
		"pagination": paginationEnvelope(result.Page, result.PageSize, result.Total),
		"message":    "Assets retrieved successfully",
	})
}

// GetAsset returns the composed view of one asset
func (ac *AssetController) GetAsset(c *gin.Context) {
	view, err := ac.service.Compose(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    view,
		"message": "Asset retrieved successfully",
	})
}

// CreateAsset creates an asset from one merged spec
func (ac *AssetController) CreateAsset(c *gin.Context) {
	var spec services.AssetSpec
	if err := c.ShouldBindJSON(&spec); err != nil {
		respondBadRequest(c, "Invalid asset data: "+err.Error())
		return
	}

	view, err := ac.service.Create(&spec)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    view,
		"message": "Asset created successfully",
	})
}

// UpdateAsset replaces the basic fields and upserts the present sub-objects
func (ac *AssetController) UpdateAsset(c *gin.Context) {
	var spec services.AssetSpec
	if err := c.ShouldBindJSON(&spec); err != nil {
		respondBadRequest(c, "Invalid asset data: "+err.Error())
		return
	}

	view, err := ac.service.Update(c.Param("id"), &spec)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    view,
		"message": "Asset updated successfully",
	})
}

// DeleteAsset removes the asset's basic record. Dependents are not cascaded.
func (ac *AssetController) DeleteAsset(c *gin.Context) {
	if err := ac.service.Delete(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Asset deleted successfully",
	})
}

// UpdateAssetsStatus applies a best-effort batch of status changes and
// reports every item's outcome.
func (ac *AssetController) UpdateAssetsStatus(c *gin.Context) {
	var items []services.StatusUpdateItem
	if err := c.ShouldBindJSON(&items); err != nil {
		respondBadRequest(c, "Invalid status update list: "+err.Error())
		return
	}

	result := ac.service.BatchUpdateStatus(items)

	message := "All status updates applied"
	if result.PartialFailure() {
		message = "Some status updates failed"
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   !result.PartialFailure(),
		"data":      result.Items,
		"succeeded": result.Succeeded(),
		"failed":    result.Failed(),
		"message":   message,
	})
}
