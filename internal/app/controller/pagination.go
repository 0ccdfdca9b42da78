package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/val100/market/internal/middleware"
	"github.com/val100/market/internal/pagination"
)

// pageRequestFromQuery resolves sort, direction, page and size query
// parameters into a validated page request. On a bad parameter it writes the
// error response and returns false.
func pageRequestFromQuery(c *gin.Context, defaultSize int) (pagination.PageRequest, bool) {
	log := middleware.GetLoggerFromContext(c)

	page := 0
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Warn("Invalid page parameter", map[string]interface{}{
				"page": raw,
			})
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid page parameter",
			})
			return pagination.PageRequest{}, false
		}
		page = parsed
	}

	size := defaultSize
	if raw := c.Query("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Warn("Invalid size parameter", map[string]interface{}{
				"size": raw,
			})
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid size parameter",
			})
			return pagination.PageRequest{}, false
		}
		size = parsed
	}

	req, err := pagination.Resolve(c.Query("sort"), c.Query("direction"), page, size)
	if err != nil {
		log.Warn("Invalid page request", map[string]interface{}{
			"sort":      c.Query("sort"),
			"direction": c.Query("direction"),
			"page":      page,
			"size":      size,
			"error":     err.Error(),
		})
		// Resolve wraps the sort sentinel with the offending value, so
		// match with errors.Is rather than equality.
		switch {
		case errors.Is(err, pagination.ErrUnsupportedSort):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unsupported sort field",
			})
		case errors.Is(err, pagination.ErrInvalidPageSize):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Page size must be positive",
			})
		case errors.Is(err, pagination.ErrInvalidPageIndex):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Page index must not be negative",
			})
		default:
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid page request",
			})
		}
		return pagination.PageRequest{}, false
	}

	return req, true
}
