package http

import (
	"errors"
	"net/http"
	"strconv"

	"ripple/internal/entity"
	"ripple/pkg/logger"
	"ripple/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// parsePagination reads 1-indexed page/limit query params. Absent params get
// defaults; malformed or out-of-range values are rejected, not clamped.
func parsePagination(c *gin.Context) (int, int, error) {
	page := 1
	limit := entity.DefaultPageSize

	if pageStr := c.Query("page"); pageStr != "" {
		p, err := strconv.Atoi(pageStr)
		if err != nil {
			return 0, 0, entity.ErrInvalidPagination
		}
		page = p
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil {
			return 0, 0, entity.ErrInvalidPagination
		}
		limit = l
	}

	if err := entity.ValidatePage(page, limit); err != nil {
		return 0, 0, err
	}
	return page, limit, nil
}

// viewerID returns the authenticated user id, or 0 for anonymous requests.
func viewerID(c *gin.Context) uint {
	return c.GetUint(middleware.ContextUserIDKey)
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, entity.ErrNotFound
	}
	return uint(id), nil
}

// respondError maps domain errors to status codes. Anything unmapped is a
// store failure and reports 500 without leaking internals.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, entity.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action"})
	case errors.Is(err, entity.ErrAlreadyLiked):
		c.JSON(http.StatusConflict, gin.H{"error": "Post is already liked"})
	case errors.Is(err, entity.ErrDuplicateRelationship):
		c.JSON(http.StatusConflict, gin.H{"error": "Relationship already exists"})
	case errors.Is(err, entity.ErrSelfFollow):
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot follow yourself"})
	case errors.Is(err, entity.ErrInvalidQuery):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search query must not be empty"})
	case errors.Is(err, entity.ErrInvalidPagination):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
	default:
		log.Error("Request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
