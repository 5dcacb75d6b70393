package http

import (
	"net/http"

	"ripple/internal/usecase"
	"ripple/pkg/logger"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedUseCase usecase.FeedUseCase
	logger      *logger.Logger
}

func NewFeedHandler(feedUseCase usecase.FeedUseCase, logger *logger.Logger) *FeedHandler {
	return &FeedHandler{
		feedUseCase: feedUseCase,
		logger:      logger,
	}
}

// GetFeed godoc
// @Summary      Get the personalized feed
// @Description  Posts by the user and the accounts they follow, newest first
// @Tags         feed
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number (1-indexed)"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /feed [get]
func (h *FeedHandler) GetFeed(c *gin.Context) {
	page, limit, err := parsePagination(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	views, pagination, err := h.feedUseCase.GetFeed(c.Request.Context(), viewerID(c), page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": views, "pagination": pagination})
}
