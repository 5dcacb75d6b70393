package http

import (
	"net/http"

	"ripple/internal/usecase"
	"ripple/pkg/logger"

	"github.com/gin-gonic/gin"
)

type InteractionHandler struct {
	interactionUseCase usecase.InteractionUseCase
	logger             *logger.Logger
}

func NewInteractionHandler(interactionUseCase usecase.InteractionUseCase, logger *logger.Logger) *InteractionHandler {
	return &InteractionHandler{
		interactionUseCase: interactionUseCase,
		logger:             logger,
	}
}

// LikePost godoc
// @Summary      Like a post
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Success      201  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]interface{}
// @Router       /posts/{id}/like [post]
func (h *InteractionHandler) LikePost(c *gin.Context) {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	like, err := h.interactionUseCase.LikePost(c.Request.Context(), viewerID(c), postID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"like": like})
}

// UnlikePost godoc
// @Summary      Remove a like from a post
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /posts/{id}/like [delete]
func (h *InteractionHandler) UnlikePost(c *gin.Context) {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := h.interactionUseCase.UnlikePost(c.Request.Context(), viewerID(c), postID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Like removed"})
}

// ListLikers godoc
// @Summary      List users who liked a post
// @Tags         interactions
// @Produce      json
// @Param        id path int true "Post ID"
// @Param        page query int false "Page number (1-indexed)"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {object}  map[string]interface{}
// @Router       /posts/{id}/likes [get]
func (h *InteractionHandler) ListLikers(c *gin.Context) {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	page, limit, err := parsePagination(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	likers, pagination, err := h.interactionUseCase.ListLikers(c.Request.Context(), postID, page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"likes": likers, "pagination": pagination})
}
