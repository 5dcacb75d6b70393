package http

import (
	"net/http"

	"ripple/internal/usecase"
	"ripple/pkg/logger"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchUseCase usecase.SearchUseCase
	logger        *logger.Logger
}

func NewSearchHandler(searchUseCase usecase.SearchUseCase, logger *logger.Logger) *SearchHandler {
	return &SearchHandler{
		searchUseCase: searchUseCase,
		logger:        logger,
	}
}

// SearchUsers godoc
// @Summary      Search users
// @Description  Ranked by username prefix, username substring, full name prefix, then other matches
// @Tags         search
// @Produce      json
// @Security     BearerAuth
// @Param        q query string true "Search query"
// @Param        page query int false "Page number (1-indexed)"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /users/search [get]
func (h *SearchHandler) SearchUsers(c *gin.Context) {
	page, limit, err := parsePagination(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	users, pagination, err := h.searchUseCase.SearchUsers(c.Request.Context(), c.Query("q"), viewerID(c), page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users, "pagination": pagination})
}

// SearchPosts godoc
// @Summary      Search posts by content
// @Tags         search
// @Produce      json
// @Param        q query string true "Search query"
// @Param        page query int false "Page number (1-indexed)"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /posts/search [get]
func (h *SearchHandler) SearchPosts(c *gin.Context) {
	page, limit, err := parsePagination(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	views, pagination, err := h.searchUseCase.SearchPosts(c.Request.Context(), c.Query("q"), viewerID(c), page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": views, "pagination": pagination})
}
