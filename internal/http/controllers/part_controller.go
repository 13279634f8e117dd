package controllers

import (
	"net/http"

	"asset_ops_server/internal/models"
	"asset_ops_server/internal/services"

	"github.com/gin-gonic/gin"
)

// PartController handles part-related HTTP requests
type PartController struct {
	service *services.PartService
}

// NewPartController creates a new part controller
func NewPartController() *PartController {
	return &PartController{service: services.NewPartService()}
}

// GetParts returns one page of parts, filtered by catalog, asset or name
func (pc *PartController) GetParts(c *gin.Context) {
	sorts, err := parseSortParams(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	page := parsePageParams(c)
	result, err := pc.service.List(
		c.Query("part_catalog"),
		c.Query("asset_id"),
		c.Query("part_name"),
		page, sorts,
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       result.Rows,
		"pagination": paginationEnvelope(result.Page, result.PageSize, result.Total),
		"message":    "Parts retrieved successfully",
	})
}

// GetPart returns one part by id
func (pc *PartController) GetPart(c *gin.Context) {
	part, err := pc.service.Get(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    part,
		"message": "Part retrieved successfully",
	})
}

// CreatePart stores a new part, in inventory or bound to an existing asset
func (pc *PartController) CreatePart(c *gin.Context) {
	var part models.AssetPartsInfo
	if err := c.ShouldBindJSON(&part); err != nil {
		respondBadRequest(c, "Invalid part data: "+err.Error())
		return
	}

	created, err := pc.service.Create(&part)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    created,
		"message": "Part created successfully",
	})
}

// UpdatePart replaces the descriptive fields of a part
func (pc *PartController) UpdatePart(c *gin.Context) {
	var part models.AssetPartsInfo
	if err := c.ShouldBindJSON(&part); err != nil {
		respondBadRequest(c, "Invalid part data: "+err.Error())
		return
	}

	updated, err := pc.service.Update(c.Param("id"), &part)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    updated,
		"message": "Part updated successfully",
	})
}

// DeletePart removes a part by id
func (pc *PartController) DeletePart(c *gin.Context) {
	if err := pc.service.Delete(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Part deleted successfully",
	})
}

// BindPart attaches a part to an asset
func (pc *PartController) BindPart(c *gin.Context) {
	part, err := pc.service.Bind(c.Param("id"), c.Param("asset_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    part,
		"message": "Part bound successfully",
	})
}

// UnbindPart detaches a part from the asset it is bound to
func (pc *PartController) UnbindPart(c *gin.Context) {
	part, err := pc.service.Unbind(c.Param("id"), c.Param("asset_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    part,
		"message": "Part unbound successfully",
	})
}
