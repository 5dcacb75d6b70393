package usecase

import (
	"context"
	"fmt"

	"ripple/internal/entity"
	"ripple/internal/repo/persistent"
	"ripple/pkg/logger"
)

type InteractionUseCase interface {
	LikePost(ctx context.Context, userID, postID uint) (*entity.Like, error)
	UnlikePost(ctx context.Context, userID, postID uint) error
	ListLikers(ctx context.Context, postID uint, page, pageSize int) ([]*entity.Liker, entity.Pagination, error)
}

type interactionUseCase struct {
	interactionRepo persistent.InteractionRepository
	postRepo        persistent.PostRepository
	publisher       NotificationPublisher
	logger          *logger.Logger
}

func NewInteractionUseCase(
	interactionRepo persistent.InteractionRepository,
	postRepo persistent.PostRepository,
	publisher NotificationPublisher,
	logger *logger.Logger,
) InteractionUseCase {
	return &interactionUseCase{
		interactionRepo: interactionRepo,
		postRepo:        postRepo,
		publisher:       publisher,
		logger:          logger,
	}
}

func (uc *interactionUseCase) LikePost(ctx context.Context, userID, postID uint) (*entity.Like, error) {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.IsDeleted {
		return nil, entity.ErrNotFound
	}

	// The unique index on (user_id, post_id) catches concurrent duplicates;
	// this check just gives the common case a cheaper path.
	liked, err := uc.interactionRepo.HasLiked(ctx, userID, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to check like status: %w", err)
	}
	if liked {
		return nil, entity.ErrAlreadyLiked
	}

	like, err := uc.interactionRepo.CreateLike(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	if uc.publisher != nil && post.UserID != userID {
		if err := uc.publisher.PublishNotificationTask(map[string]interface{}{
			"type":     "post_liked",
			"user_id":  post.UserID,
			"liker_id": userID,
			"post_id":  postID,
			"priority": 2,
		}); err != nil {
			uc.logger.Warn("Failed to publish like notification: %v", err)
		}
	}

	return like, nil
}

// UnlikePost removes the like row entirely; a later like creates a fresh row.
func (uc *interactionUseCase) UnlikePost(ctx context.Context, userID, postID uint) error {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.IsDeleted {
		return entity.ErrNotFound
	}

	return uc.interactionRepo.DeleteLike(ctx, userID, postID)
}

func (uc *interactionUseCase) ListLikers(ctx context.Context, postID uint, page, pageSize int) ([]*entity.Liker, entity.Pagination, error) {
	if err := entity.ValidatePage(page, pageSize); err != nil {
		return nil, entity.Pagination{}, err
	}

	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, entity.Pagination{}, err
	}
	if post.IsDeleted {
		return nil, entity.Pagination{}, entity.ErrNotFound
	}

	likers, err := uc.interactionRepo.ListLikers(ctx, postID, pageSize, entity.PageOffset(page, pageSize))
	if err != nil {
		return nil, entity.Pagination{}, fmt.Errorf("failed to list likers: %w", err)
	}
	return likers, entity.NewPagination(page, pageSize, len(likers)), nil
}
