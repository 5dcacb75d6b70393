package usecase

import (
	"context"
	"fmt"
	"time"

	"ripple/internal/entity"
	"ripple/internal/repo/persistent"
	"ripple/pkg/cache"
	"ripple/pkg/logger"

	"github.com/redis/go-redis/v9"
)

type FeedUseCase interface {
	GetFeed(ctx context.Context, viewerID uint, page, pageSize int) ([]*entity.PostView, entity.Pagination, error)
}

type feedUseCase struct {
	postRepo        persistent.PostRepository
	followRepo      persistent.FollowRepository
	interactionRepo persistent.InteractionRepository
	redisClient     *redis.Client
	cacheTTL        time.Duration
	logger          *logger.Logger
}

func NewFeedUseCase(
	postRepo persistent.PostRepository,
	followRepo persistent.FollowRepository,
	interactionRepo persistent.InteractionRepository,
	redisClient *redis.Client,
	cacheTTL time.Duration,
	logger *logger.Logger,
) FeedUseCase {
	return &feedUseCase{
		postRepo:        postRepo,
		followRepo:      followRepo,
		interactionRepo: interactionRepo,
		redisClient:     redisClient,
		cacheTTL:        cacheTTL,
		logger:          logger,
	}
}

type cachedFeedPage struct {
	Posts      []*entity.PostView `json:"posts"`
	Pagination entity.Pagination  `json:"pagination"`
}

// GetFeed returns the viewer's reverse-chronological feed: their own posts
// plus posts by authors they follow, newest first, post id breaking ties.
func (uc *feedUseCase) GetFeed(ctx context.Context, viewerID uint, page, pageSize int) ([]*entity.PostView, entity.Pagination, error) {
	if err := entity.ValidatePage(page, pageSize); err != nil {
		return nil, entity.Pagination{}, err
	}

	cacheKey := fmt.Sprintf("feed:user:%d:page:%d:size:%d", viewerID, page, pageSize)
	var cached cachedFeedPage
	if cache.GetJSON(ctx, uc.redisClient, cacheKey, &cached) {
		return cached.Posts, cached.Pagination, nil
	}

	followingIDs, err := uc.followRepo.FollowingIDs(ctx, viewerID)
	if err != nil {
		uc.logger.Error("Failed to resolve following set for user %d: %v", viewerID, err)
		return nil, entity.Pagination{}, fmt.Errorf("failed to resolve following set: %w", err)
	}

	visibleAuthors := append([]uint{viewerID}, followingIDs...)

	posts, err := uc.postRepo.ListByAuthors(ctx, visibleAuthors, pageSize, entity.PageOffset(page, pageSize))
	if err != nil {
		uc.logger.Error("Failed to load feed page for user %d: %v", viewerID, err)
		return nil, entity.Pagination{}, fmt.Errorf("failed to load feed page: %w", err)
	}

	views, err := buildPostViews(ctx, uc.interactionRepo, posts, viewerID)
	if err != nil {
		uc.logger.Error("Failed to aggregate interactions for user %d: %v", viewerID, err)
		return nil, entity.Pagination{}, fmt.Errorf("failed to aggregate interactions: %w", err)
	}

	pagination := entity.NewPagination(page, pageSize, len(views))
	cache.SetJSON(ctx, uc.redisClient, cacheKey, cachedFeedPage{Posts: views, Pagination: pagination}, uc.cacheTTL)

	return views, pagination, nil
}
