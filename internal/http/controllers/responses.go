package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"asset_ops_server/internal/services"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps the service error taxonomy onto HTTP status codes:
// NotFound 404, InvalidQuery 400, Conflict 409, everything else 500.
func respondServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_ERROR"
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
		code = "NOT_FOUND"
	case errors.Is(err, services.ErrInvalidQuery):
		status = http.StatusBadRequest
		code = "INVALID_QUERY"
	case errors.Is(err, services.ErrConflict):
		status = http.StatusConflict
		code = "CONFLICT"
	}

	c.JSON(status, gin.H{
		"success": false,
		"error":   code,
		"message": err.Error(),
	})
}

// respondInternal reports a server-side failure outside the service taxonomy.
func respondInternal(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   "INTERNAL_ERROR",
		"message": message,
	})
}

// respondBadRequest reports an unparseable request body.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   "INVALID_REQUEST",
		"message": message,
	})
}

// paginationEnvelope builds the pagination block of list responses.
func paginationEnvelope(page, pageSize int, total int64) gin.H {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return gin.H{
		"page":        page,
		"limit":       pageSize,
		"total_count": total,
		"total_pages": totalPages,
		"has_next":    page < totalPages,
		"has_prev":    page > 1,
	}
}

// parsePageParams reads page/page_size with their documented defaults.
func parsePageParams(c *gin.Context) services.Page {
	page := parseInt(c.DefaultQuery("page", "1"))
	size := parseInt(c.DefaultQuery("page_size", "10"))
	return services.NormalizePage(page, size)
}

// parseSortParams reads sort_keys/sort_dirs as comma-separated lists.
func parseSortParams(c *gin.Context) ([]services.SortKey, error) {
	return services.ParseSort(c.Query("sort_keys"), c.Query("sort_dirs"))
}

// Helper function to parse integer
func parseInt(s string) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return 0
}
