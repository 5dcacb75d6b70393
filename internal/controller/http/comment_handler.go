package http

import (
	"net/http"

	"ripple/internal/usecase"
	"ripple/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		logger:         logger,
	}
}

type commentRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

// CreateComment godoc
// @Summary      Comment on a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Param        request body commentRequest true "Comment data"
// @Success      201  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /posts/{id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentUseCase.CreateComment(c.Request.Context(), viewerID(c), postID, req.Content)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// UpdateComment godoc
// @Summary      Edit own comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Comment ID"
// @Param        request body commentRequest true "New content"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /comments/{id} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	commentID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentUseCase.UpdateComment(c.Request.Context(), commentID, viewerID(c), req.Content)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

// DeleteComment godoc
// @Summary      Delete own comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Comment ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := h.commentUseCase.DeleteComment(c.Request.Context(), commentID, viewerID(c)); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}

// ListComments godoc
// @Summary      List a post's comments
// @Tags         comments
// @Produce      json
// @Param        id path int true "Post ID"
// @Param        page query int false "Page number (1-indexed)"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {object}  map[string]interface{}
// @Router       /posts/{id}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
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

	comments, pagination, err := h.commentUseCase.ListComments(c.Request.Context(), postID, page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments, "pagination": pagination})
}
