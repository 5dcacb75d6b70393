package usecase

import (
	"context"
	"fmt"

	"ripple/internal/entity"
	"ripple/internal/repo/persistent"
	"ripple/pkg/cache"
	"ripple/pkg/logger"

	"github.com/redis/go-redis/v9"
)

type SocialUseCase interface {
	Follow(ctx context.Context, followerID, followingID uint) (*entity.Follow, error)
	Unfollow(ctx context.Context, followerID, followingID uint) error
	Stats(ctx context.Context, viewerID, userID uint) (*entity.FollowCounts, bool, error)
	ListFollowing(ctx context.Context, userID uint, page, pageSize int) ([]*entity.FollowedUser, entity.Pagination, error)
	ListFollowers(ctx context.Context, userID uint, page, pageSize int) ([]*entity.FollowedUser, entity.Pagination, error)
}

type socialUseCase struct {
	followRepo  persistent.FollowRepository
	userRepo    persistent.UserRepository
	redisClient *redis.Client
	publisher   NotificationPublisher
	logger      *logger.Logger
}

func NewSocialUseCase(
	followRepo persistent.FollowRepository,
	userRepo persistent.UserRepository,
	redisClient *redis.Client,
	publisher NotificationPublisher,
	logger *logger.Logger,
) SocialUseCase {
	return &socialUseCase{
		followRepo:  followRepo,
		userRepo:    userRepo,
		redisClient: redisClient,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *socialUseCase) Follow(ctx context.Context, followerID, followingID uint) (*entity.Follow, error) {
	if followerID == followingID {
		return nil, entity.ErrSelfFollow
	}

	if _, err := uc.userRepo.GetByID(ctx, followingID); err != nil {
		return nil, err
	}

	follow, err := uc.followRepo.Create(ctx, followerID, followingID)
	if err != nil {
		return nil, err
	}

	// The follower's feed now includes a new author.
	cache.InvalidateByPrefix(ctx, uc.redisClient, fmt.Sprintf("feed:user:%d:", followerID))

	if uc.publisher != nil {
		if err := uc.publisher.PublishNotificationTask(map[string]interface{}{
			"type":        "new_follower",
			"user_id":     followingID,
			"follower_id": followerID,
			"priority":    3,
		}); err != nil {
			uc.logger.Warn("Failed to publish follow notification: %v", err)
		}
	}

	uc.logger.Info("User %d followed user %d", followerID, followingID)
	return follow, nil
}

func (uc *socialUseCase) Unfollow(ctx context.Context, followerID, followingID uint) error {
	if followerID == followingID {
		return entity.ErrSelfFollow
	}

	if err := uc.followRepo.Delete(ctx, followerID, followingID); err != nil {
		return err
	}

	cache.InvalidateByPrefix(ctx, uc.redisClient, fmt.Sprintf("feed:user:%d:", followerID))

	uc.logger.Info("User %d unfollowed user %d", followerID, followingID)
	return nil
}

// Stats returns follow counts for a user plus whether the viewer follows
// them. An anonymous viewer never follows anyone.
func (uc *socialUseCase) Stats(ctx context.Context, viewerID, userID uint) (*entity.FollowCounts, bool, error) {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return nil, false, err
	}

	counts, err := uc.followRepo.Counts(ctx, userID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load follow counts: %w", err)
	}

	isFollowing := false
	if viewerID != 0 && viewerID != userID {
		isFollowing, err = uc.followRepo.IsFollowing(ctx, viewerID, userID)
		if err != nil {
			return nil, false, fmt.Errorf("failed to check follow status: %w", err)
		}
	}

	return counts, isFollowing, nil
}

func (uc *socialUseCase) ListFollowing(ctx context.Context, userID uint, page, pageSize int) ([]*entity.FollowedUser, entity.Pagination, error) {
	if err := entity.ValidatePage(page, pageSize); err != nil {
		return nil, entity.Pagination{}, err
	}
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return nil, entity.Pagination{}, err
	}

	users, err := uc.followRepo.ListFollowing(ctx, userID, pageSize, entity.PageOffset(page, pageSize))
	if err != nil {
		return nil, entity.Pagination{}, fmt.Errorf("failed to list following: %w", err)
	}
	return users, entity.NewPagination(page, pageSize, len(users)), nil
}

func (uc *socialUseCase) ListFollowers(ctx context.Context, userID uint, page, pageSize int) ([]*entity.FollowedUser, entity.Pagination, error) {
	if err := entity.ValidatePage(page, pageSize); err != nil {
		return nil, entity.Pagination{}, err
	}
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return nil, entity.Pagination{}, err
	}

	users, err := uc.followRepo.ListFollowers(ctx, userID, pageSize, entity.PageOffset(page, pageSize))
	if err != nil {
		return nil, entity.Pagination{}, fmt.Errorf("failed to list followers: %w", err)
	}
	return users, entity.NewPagination(page, pageSize, len(users)), nil
}
