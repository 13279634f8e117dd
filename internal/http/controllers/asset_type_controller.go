package controllers

import (
	"net/http"

	"asset_ops_server/internal/models"
	"asset_ops_server/internal/services"

	"github.com/gin-gonic/gin"
)

// AssetTypeController handles asset classification tree requests
type AssetTypeController struct {
	service *services.AssetTypeService
}

// NewAssetTypeController creates a new asset type controller
func NewAssetTypeController() *AssetTypeController {
	return &AssetTypeController{service: services.NewAssetTypeService()}
}

// GetAssetTypes returns the classification nodes in display order
func (tc *AssetTypeController) GetAssetTypes(c *gin.Context) {
	types, err := tc.service.List(c.Query("name"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    types,
		"message": "Asset types retrieved successfully",
	})
}

// CreateAssetType stores a new classification node
func (tc *AssetTypeController) CreateAssetType(c *gin.Context) {
	var assetType models.AssetType
	if err := c.ShouldBindJSON(&assetType); err != nil {
		respondBadRequest(c, "Invalid asset type data: "+err.Error())
		return
	}

	created, err := tc.service.Create(&assetType)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    created,
		"message": "Asset type created successfully",
	})
}

// ReparentRequest names the new parent of a classification node. A null
// parent_id makes the node a root.
type ReparentRequest struct {
	ParentID *string `json:"parent_id"`
}

// ReparentAssetType moves a node under a new parent
func (tc *AssetTypeController) ReparentAssetType(c *gin.Context) {
	var req ReparentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid reparent data: "+err.Error())
		return
	}

	node, err := tc.service.Reparent(c.Param("id"), req.ParentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    node,
		"message": "Asset type moved successfully",
	})
}
