package persistent

import (
	"context"
	"errors"

	"ripple/internal/entity"
	"ripple/internal/model"

	"gorm.io/gorm"
)

type InteractionRepository interface {
	CreateLike(ctx context.Context, userID, postID uint) (*entity.Like, error)
	DeleteLike(ctx context.Context, userID, postID uint) error
	HasLiked(ctx context.Context, userID, postID uint) (bool, error)
	// CountsForPosts aggregates like and comment counts for a whole page in
	// two grouped queries, regardless of how many posts are passed in.
	CountsForPosts(ctx context.Context, postIDs []uint) (map[uint]entity.PostCounts, error)
	ViewerLikedSet(ctx context.Context, viewerID uint, postIDs []uint) (map[uint]bool, error)
	LikeCount(ctx context.Context, postID uint) (int64, error)
	CommentCount(ctx context.Context, postID uint) (int64, error)
	ListLikers(ctx context.Context, postID uint, limit, offset int) ([]*entity.Liker, error)
}

type interactionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

// CreateLike inserts in a single statement. Under concurrent duplicate
// requests the unique index wins and both callers see ErrAlreadyLiked.
func (r *interactionRepository) CreateLike(ctx context.Context, userID, postID uint) (*entity.Like, error) {
	likeModel := &model.LikeModel{
		UserID: userID,
		PostID: postID,
	}
	if err := r.db.WithContext(ctx).Create(likeModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, entity.ErrAlreadyLiked
		}
		return nil, err
	}
	return ToLikeEntity(likeModel), nil
}

// DeleteLike physically removes the row; likes are never soft-deleted.
func (r *interactionRepository) DeleteLike(ctx context.Context, userID, postID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.LikeModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *interactionRepository) HasLiked(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.LikeModel{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

type postCountRow struct {
	PostID uint
	Total  int64
}

func (r *interactionRepository) CountsForPosts(ctx context.Context, postIDs []uint) (map[uint]entity.PostCounts, error) {
	counts := make(map[uint]entity.PostCounts, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	// Likes have no soft-delete predicate: unliking removes the row.
	var likeRows []postCountRow
	err := r.db.WithContext(ctx).Model(&model.LikeModel{}).
		Select("post_id, COUNT(*) AS total").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&likeRows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range likeRows {
		c := counts[row.PostID]
		c.LikeCount = row.Total
		counts[row.PostID] = c
	}

	// Comments are soft-deleted; the default scope filters them here.
	var commentRows []postCountRow
	err = r.db.WithContext(ctx).Model(&model.CommentModel{}).
		Select("post_id, COUNT(*) AS total").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&commentRows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range commentRows {
		c := counts[row.PostID]
		c.CommentCount = row.Total
		counts[row.PostID] = c
	}

	return counts, nil
}

func (r *interactionRepository) ViewerLikedSet(ctx context.Context, viewerID uint, postIDs []uint) (map[uint]bool, error) {
	liked := make(map[uint]bool, len(postIDs))
	if len(postIDs) == 0 {
		return liked, nil
	}

	var ids []uint
	err := r.db.WithContext(ctx).Model(&model.LikeModel{}).
		Where("user_id = ? AND post_id IN ?", viewerID, postIDs).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

func (r *interactionRepository) LikeCount(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.LikeModel{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (r *interactionRepository) CommentCount(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CommentModel{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (r *interactionRepository) ListLikers(ctx context.Context, postID uint, limit, offset int) ([]*entity.Liker, error) {
	var likers []*entity.Liker
	err := r.db.WithContext(ctx).Model(&model.LikeModel{}).
		Select("users.id AS user_id, users.username, users.full_name, likes.created_at AS liked_at").
		Joins("JOIN users ON users.id = likes.user_id AND users.deleted_at IS NULL").
		Where("likes.post_id = ?", postID).
		Order("likes.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&likers).Error
	if err != nil {
		return nil, err
	}

	if likers == nil {
		likers = []*entity.Liker{}
	}
	return likers, nil
}
