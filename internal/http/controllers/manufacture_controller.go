package controllers

import (
	"net/http"

	"asset_ops_server/internal/models"
	"asset_ops_server/internal/services"

	"github.com/gin-gonic/gin"
)

// ManufactureController handles manufacturer HTTP requests
type ManufactureController struct {
	service *services.ManufactureService
}

// NewManufactureController creates a new manufacture controller
func NewManufactureController() *ManufactureController {
	return &ManufactureController{service: services.NewManufactureService()}
}

// GetManufactures returns one page of manufacturers
func (mc *ManufactureController) GetManufactures(c *gin.Context) {
	sorts, err := parseSortParams(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	page := parsePageParams(c)
	result, err := mc.service.List(c.Query("name"), page, sorts)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       result.Rows,
		"pagination": paginationEnvelope(result.Page, result.PageSize, result.Total),
		"message":    "Manufacturers retrieved successfully",
	})
}

// CreateManufacture stores a new manufacturer row
func (mc *ManufactureController) CreateManufacture(c *gin.Context) {
	var m models.AssetManufacturesInfo
	if err := c.ShouldBindJSON(&m); err != nil {
		respondBadRequest(c, "Invalid manufacturer data: "+err.Error())
		return
	}

	created, err := mc.service.Create(&m)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    created,
		"message": "Manufacturer created successfully",
	})
}

// UpdateManufacture replaces a manufacturer row's fields
func (mc *ManufactureController) UpdateManufacture(c *gin.Context) {
	var m models.AssetManufacturesInfo
	if err := c.ShouldBindJSON(&m); err != nil {
		respondBadRequest(c, "Invalid manufacturer data: "+err.Error())
		return
	}

	updated, err := mc.service.Update(c.Param("id"), &m)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    updated,
		"message": "Manufacturer updated successfully",
	})
}

// DeleteManufacture removes a manufacturer row
func (mc *ManufactureController) DeleteManufacture(c *gin.Context) {
	if err := mc.service.Delete(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Manufacturer deleted successfully",
	})
}
