package usecase

import (
	"context"
	"fmt"
	"strings"

	"ripple/internal/entity"
	"ripple/internal/repo/persistent"
	"ripple/pkg/logger"
)

type CommentUseCase interface {
	CreateComment(ctx context.Context, userID, postID uint, content string) (*entity.Comment, error)
	UpdateComment(ctx context.Context, commentID, userID uint, content string) (*entity.Comment, error)
	DeleteComment(ctx context.Context, commentID, userID uint) error
	ListComments(ctx context.Context, postID uint, page, pageSize int) ([]*entity.Comment, entity.Pagination, error)
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	postRepo    persistent.PostRepository
	publisher   NotificationPublisher
	logger      *logger.Logger
}

func NewCommentUseCase(
	commentRepo persistent.CommentRepository,
	postRepo persistent.PostRepository,
	publisher NotificationPublisher,
	logger *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *commentUseCase) CreateComment(ctx context.Context, userID, postID uint, content string) (*entity.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, entity.ErrInvalidQuery
	}

	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.IsDeleted {
		return nil, entity.ErrNotFound
	}
	if !post.CommentsEnabled {
		return nil, entity.ErrForbidden
	}

	comment := &entity.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
	}
	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		uc.logger.Error("Failed to create comment on post %d: %v", postID, err)
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	if uc.publisher != nil && post.UserID != userID {
		if err := uc.publisher.PublishNotificationTask(map[string]interface{}{
			"type":         "post_commented",
			"user_id":      post.UserID,
			"commenter_id": userID,
			"post_id":      postID,
			"comment_id":   comment.ID,
			"priority":     2,
		}); err != nil {
			uc.logger.Warn("Failed to publish comment notification: %v", err)
		}
	}

	return comment, nil
}

func (uc *commentUseCase) UpdateComment(ctx context.Context, commentID, userID uint, content string) (*entity.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, entity.ErrInvalidQuery
	}

	comment, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID {
		return nil, entity.ErrForbidden
	}

	return uc.commentRepo.UpdateContent(ctx, commentID, content)
}

// DeleteComment soft-deletes so the row stays addressable for moderation.
func (uc *commentUseCase) DeleteComment(ctx context.Context, commentID, userID uint) error {
	comment, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		return entity.ErrForbidden
	}

	return uc.commentRepo.SoftDelete(ctx, commentID)
}

func (uc *commentUseCase) ListComments(ctx context.Context, postID uint, page, pageSize int) ([]*entity.Comment, entity.Pagination, error) {
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

	comments, err := uc.commentRepo.ListForPost(ctx, postID, pageSize, entity.PageOffset(page, pageSize))
	if err != nil {
		return nil, entity.Pagination{}, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, entity.NewPagination(page, pageSize, len(comments)), nil
}
