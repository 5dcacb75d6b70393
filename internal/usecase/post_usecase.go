package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ripple/internal/entity"
	"ripple/internal/repo/persistent"
	"ripple/pkg/cache"
	"ripple/pkg/logger"

	"github.com/redis/go-redis/v9"
)

type PostUseCase interface {
	CreatePost(ctx context.Context, authorID uint, content, mediaURL string, commentsEnabled bool) (*entity.Post, error)
	GetPost(ctx context.Context, postID, viewerID uint) (*entity.PostView, error)
	ListUserPosts(ctx context.Context, authorID, viewerID uint, page, pageSize int) ([]*entity.PostView, entity.Pagination, error)
	DeletePost(ctx context.Context, postID, actorID uint) error
}

type postUseCase struct {
	postRepo        persistent.PostRepository
	userRepo        persistent.UserRepository
	interactionRepo persistent.InteractionRepository
	redisClient     *redis.Client
	logger          *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	userRepo persistent.UserRepository,
	interactionRepo persistent.InteractionRepository,
	redisClient *redis.Client,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:        postRepo,
		userRepo:        userRepo,
		interactionRepo: interactionRepo,
		redisClient:     redisClient,
		logger:          logger,
	}
}

func (uc *postUseCase) CreatePost(ctx context.Context, authorID uint, content, mediaURL string, commentsEnabled bool) (*entity.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" && mediaURL == "" {
		return nil, entity.ErrInvalidQuery
	}

	post := &entity.Post{
		UserID:          authorID,
		Content:         content,
		MediaURL:        mediaURL,
		CommentsEnabled: commentsEnabled,
	}
	if err := uc.postRepo.Create(ctx, post); err != nil {
		uc.logger.Error("Failed to create post for user %d: %v", authorID, err)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	// New posts show up in the author's own feed immediately; followers'
	// pages refresh when their cache TTL expires.
	cache.InvalidateByPrefix(ctx, uc.redisClient, fmt.Sprintf("feed:user:%d:", authorID))

	uc.logger.Info("User %d created post %d", authorID, post.ID)
	return post, nil
}

// GetPost resolves soft-deleted rows too, reporting is_deleted, so a direct
// link keeps working after the post leaves feeds and search.
func (uc *postUseCase) GetPost(ctx context.Context, postID, viewerID uint) (*entity.PostView, error) {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	likeCount, err := uc.interactionRepo.LikeCount(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}
	commentCount, err := uc.interactionRepo.CommentCount(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}

	viewerHasLiked := false
	if viewerID != 0 {
		viewerHasLiked, err = uc.interactionRepo.HasLiked(ctx, viewerID, postID)
		if err != nil {
			return nil, fmt.Errorf("failed to check like status: %w", err)
		}
	}

	return &entity.PostView{
		Post:           *post,
		LikeCount:      likeCount,
		CommentCount:   commentCount,
		ViewerHasLiked: viewerHasLiked,
	}, nil
}

func (uc *postUseCase) ListUserPosts(ctx context.Context, authorID, viewerID uint, page, pageSize int) ([]*entity.PostView, entity.Pagination, error) {
	if err := entity.ValidatePage(page, pageSize); err != nil {
		return nil, entity.Pagination{}, err
	}

	if _, err := uc.userRepo.GetByID(ctx, authorID); err != nil {
		return nil, entity.Pagination{}, err
	}

	posts, err := uc.postRepo.ListByAuthor(ctx, authorID, pageSize, entity.PageOffset(page, pageSize))
	if err != nil {
		return nil, entity.Pagination{}, fmt.Errorf("failed to list posts: %w", err)
	}

	views, err := buildPostViews(ctx, uc.interactionRepo, posts, viewerID)
	if err != nil {
		return nil, entity.Pagination{}, fmt.Errorf("failed to aggregate interactions: %w", err)
	}

	return views, entity.NewPagination(page, pageSize, len(views)), nil
}

// DeletePost soft-deletes; only the author may remove their post.
func (uc *postUseCase) DeletePost(ctx context.Context, postID, actorID uint) error {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.IsDeleted {
		return entity.ErrNotFound
	}
	if post.UserID != actorID {
		return entity.ErrForbidden
	}

	if err := uc.postRepo.SoftDelete(ctx, postID); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return err
		}
		uc.logger.Error("Failed to delete post %d: %v", postID, err)
		return fmt.Errorf("failed to delete post: %w", err)
	}

	cache.InvalidateByPrefix(ctx, uc.redisClient, fmt.Sprintf("feed:user:%d:", actorID))

	uc.logger.Info("User %d deleted post %d", actorID, postID)
	return nil
}
