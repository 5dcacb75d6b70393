package http

import (
	"net/http"

	"ripple/internal/usecase"
	"ripple/pkg/logger"

	"github.com/gin-gonic/gin"
)

type SocialHandler struct {
	socialUseCase usecase.SocialUseCase
	logger        *logger.Logger
}

func NewSocialHandler(socialUseCase usecase.SocialUseCase, logger *logger.Logger) *SocialHandler {
	return &SocialHandler{
		socialUseCase: socialUseCase,
		logger:        logger,
	}
}

// Follow godoc
// @Summary      Follow a user
// @Tags         social
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User ID to follow"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]interface{}
// @Router       /users/{id}/follow [post]
func (h *SocialHandler) Follow(c *gin.Context) {
	followingID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	follow, err := h.socialUseCase.Follow(c.Request.Context(), viewerID(c), followingID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"follow": follow})
}

// Unfollow godoc
// @Summary      Unfollow a user
// @Tags         social
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User ID to unfollow"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /users/{id}/follow [delete]
func (h *SocialHandler) Unfollow(c *gin.Context) {
	followingID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := h.socialUseCase.Unfollow(c.Request.Context(), viewerID(c), followingID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Unfollowed"})
}

// Stats godoc
// @Summary      Get a user's follow counts
// @Tags         social
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /users/{id}/stats [get]
func (h *SocialHandler) Stats(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	counts, isFollowing, err := h.socialUseCase.Stats(c.Request.Context(), viewerID(c), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"followers_count": counts.FollowersCount,
		"following_count": counts.FollowingCount,
		"is_following":    isFollowing,
	})
}

// ListFollowing godoc
// @Summary      List accounts the authenticated user follows
// @Tags         social
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number (1-indexed)"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {object}  map[string]interface{}
// @Router       /users/following [get]
func (h *SocialHandler) ListFollowing(c *gin.Context) {
	page, limit, err := parsePagination(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	users, pagination, err := h.socialUseCase.ListFollowing(c.Request.Context(), viewerID(c), page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users, "pagination": pagination})
}

// ListFollowers godoc
// @Summary      List the authenticated user's followers
// @Tags         social
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number (1-indexed)"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {object}  map[string]interface{}
// @Router       /users/followers [get]
func (h *SocialHandler) ListFollowers(c *gin.Context) {
	page, limit, err := parsePagination(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	users, pagination, err := h.socialUseCase.ListFollowers(c.Request.Context(), viewerID(c), page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users, "pagination": pagination})
}
