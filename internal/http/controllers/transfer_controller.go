package controllers

import (
	"net/http"
	"strings"

	"asset_ops_server/config"
	"asset_ops_server/internal/services"
	"asset_ops_server/pkg/colors"

	"github.com/gin-gonic/gin"
)

// maxUploadSize bounds uploaded workbooks to 5 MB.
const maxUploadSize = 5 << 20

// TransferController handles the spreadsheet import/export endpoints
type TransferController struct {
	service *services.TransferService
}

// NewTransferController creates a new transfer controller
func NewTransferController() *TransferController {
	return &TransferController{service: services.NewTransferService()}
}

// DownloadAssets exports the whole store into a timestamped workbook and
// serves it as an attachment.
func (tc *TransferController) DownloadAssets(c *gin.Context) {
	dir, err := config.GetExcelTempDir()
	if err != nil {
		respondInternal(c, "Excel working directory unavailable: "+err.Error())
		return
	}

	fileName, path, err := tc.service.Export(dir)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	colors.PrintInfo("Exported asset workbook %s", fileName)
	c.FileAttachment(path, fileName)
}

// DownloadTemplate serves the header-only import template workbook.
func (tc *TransferController) DownloadTemplate(c *gin.Context) {
	templateID := c.Param("template_id")
	dir, err := config.GetExcelTempDir()
	if err != nil {
		respondInternal(c, "Excel working directory unavailable: "+err.Error())
		return
	}

	path, err := tc.service.WriteTemplate(dir, templateID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.FileAttachment(path, templateID+".xlsx")
}

// UploadAssets ingests an uploaded workbook and reports one outcome per row.
func (tc *TransferController) UploadAssets(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondBadRequest(c, "Missing upload file: "+err.Error())
		return
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".xlsx") {
		respondBadRequest(c, "Only .xlsx workbooks are accepted")
		return
	}
	if fileHeader.Size > maxUploadSize {
		respondBadRequest(c, "Workbook exceeds the 5MB upload limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondBadRequest(c, "Unreadable upload file: "+err.Error())
		return
	}
	defer file.Close()

	result, err := tc.service.Import(file)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	colors.PrintInfo("Imported workbook %s: %d created, %d updated, %d failed",
		fileHeader.Filename, result.Created, result.Updated, result.Failed())

	message := "Import completed"
	if result.PartialFailure() {
		message = "Import completed with failures"
	}
	c.JSON(http.StatusOK, gin.H{
		"success": !result.PartialFailure(),
		"data":    result,
		"message": message,
	})
}
