package http

import (
	"net/http"

	"ripple/internal/usecase"
	"ripple/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

type createPostRequest struct {
	Content         string `json:"content" binding:"max=5000"`
	MediaURL        string `json:"media_url" binding:"omitempty,url"`
	CommentsEnabled *bool  `json:"comments_enabled"`
}

// CreatePost godoc
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body createPostRequest true "Post data"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Comments are on unless the client says otherwise.
	commentsEnabled := true
	if req.CommentsEnabled != nil {
		commentsEnabled = *req.CommentsEnabled
	}

	post, err := h.postUseCase.CreatePost(c.Request.Context(), viewerID(c), req.Content, req.MediaURL, commentsEnabled)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// GetPost godoc
// @Summary      Get a single post with interaction counts
// @Tags         posts
// @Produce      json
// @Param        id path int true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	view, err := h.postUseCase.GetPost(c.Request.Context(), postID, viewerID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": view})
}

// GetUserPosts godoc
// @Summary      List a user's posts
// @Tags         posts
// @Produce      json
// @Param        id path int true "User ID"
// @Param        page query int false "Page number (1-indexed)"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {object}  map[string]interface{}
// @Router       /posts/user/{id} [get]
func (h *PostHandler) GetUserPosts(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	page, limit, err := parsePagination(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	views, pagination, err := h.postUseCase.ListUserPosts(c.Request.Context(), userID, viewerID(c), page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": views, "pagination": pagination})
}

// GetMyPosts godoc
// @Summary      List the authenticated user's posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number (1-indexed)"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {object}  map[string]interface{}
// @Router       /posts/my [get]
func (h *PostHandler) GetMyPosts(c *gin.Context) {
	page, limit, err := parsePagination(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	userID := viewerID(c)
	views, pagination, err := h.postUseCase.ListUserPosts(c.Request.Context(), userID, userID, page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": views, "pagination": pagination})
}

// DeletePost godoc
// @Summary      Delete own post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := h.postUseCase.DeletePost(c.Request.Context(), postID, viewerID(c)); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}
