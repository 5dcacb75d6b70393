package usecase

import (
	"context"
	"fmt"
	"strings"

	"ripple/internal/entity"
	"ripple/internal/repo/persistent"
	"ripple/pkg/logger"
)

type SearchUseCase interface {
	SearchUsers(ctx context.Context, query string, viewerID uint, page, pageSize int) ([]*entity.UserSummary, entity.Pagination, error)
	SearchPosts(ctx context.Context, query string, viewerID uint, page, pageSize int) ([]*entity.PostView, entity.Pagination, error)
}

type searchUseCase struct {
	userRepo        persistent.UserRepository
	postRepo        persistent.PostRepository
	interactionRepo persistent.InteractionRepository
	logger          *logger.Logger
}

func NewSearchUseCase(
	userRepo persistent.UserRepository,
	postRepo persistent.PostRepository,
	interactionRepo persistent.InteractionRepository,
	logger *logger.Logger,
) SearchUseCase {
	return &searchUseCase{
		userRepo:        userRepo,
		postRepo:        postRepo,
		interactionRepo: interactionRepo,
		logger:          logger,
	}
}

// SearchUsers ranks matches by relevance tier; an empty or whitespace-only
// query is rejected rather than treated as match-all.
func (uc *searchUseCase) SearchUsers(ctx context.Context, query string, viewerID uint, page, pageSize int) ([]*entity.UserSummary, entity.Pagination, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, entity.Pagination{}, entity.ErrInvalidQuery
	}
	if err := entity.ValidatePage(page, pageSize); err != nil {
		return nil, entity.Pagination{}, err
	}

	users, err := uc.userRepo.Search(ctx, query, viewerID, pageSize, entity.PageOffset(page, pageSize))
	if err != nil {
		uc.logger.Error("User search failed for %q: %v", query, err)
		return nil, entity.Pagination{}, fmt.Errorf("failed to search users: %w", err)
	}
	return users, entity.NewPagination(page, pageSize, len(users)), nil
}

func (uc *searchUseCase) SearchPosts(ctx context.Context, query string, viewerID uint, page, pageSize int) ([]*entity.PostView, entity.Pagination, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, entity.Pagination{}, entity.ErrInvalidQuery
	}
	if err := entity.ValidatePage(page, pageSize); err != nil {
		return nil, entity.Pagination{}, err
	}

	posts, err := uc.postRepo.Search(ctx, query, pageSize, entity.PageOffset(page, pageSize))
	if err != nil {
		uc.logger.Error("Post search failed for %q: %v", query, err)
		return nil, entity.Pagination{}, fmt.Errorf("failed to search posts: %w", err)
	}

	views, err := buildPostViews(ctx, uc.interactionRepo, posts, viewerID)
	if err != nil {
		return nil, entity.Pagination{}, fmt.Errorf("failed to aggregate interactions: %w", err)
	}
	return views, entity.NewPagination(page, pageSize, len(views)), nil
}
