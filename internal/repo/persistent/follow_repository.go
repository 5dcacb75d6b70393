package persistent

import (
	"context"
	"errors"

	"ripple/internal/entity"
	"ripple/internal/model"

	"gorm.io/gorm"
)

type FollowRepository interface {
	Create(ctx context.Context, followerID, followingID uint) (*entity.Follow, error)
	Delete(ctx context.Context, followerID, followingID uint) error
	IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error)
	Counts(ctx context.Context, userID uint) (*entity.FollowCounts, error)
	FollowingIDs(ctx context.Context, userID uint) ([]uint, error)
	ListFollowing(ctx context.Context, userID uint, limit, offset int) ([]*entity.FollowedUser, error)
	ListFollowers(ctx context.Context, userID uint, limit, offset int) ([]*entity.FollowedUser, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create inserts the edge in a single statement; the unique index on
// (follower_id, following_id) is the authoritative duplicate guard.
func (r *followRepository) Create(ctx context.Context, followerID, followingID uint) (*entity.Follow, error) {
	followModel := &model.FollowModel{
		FollowerID:  followerID,
		FollowingID: followingID,
	}
	if err := r.db.WithContext(ctx).Create(followModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, entity.ErrDuplicateRelationship
		}
		return nil, err
	}
	return ToFollowEntity(followModel), nil
}

// Delete removes the edge; deleting an edge that does not exist is NotFound,
// never a silent success.
func (r *followRepository) Delete(ctx context.Context, followerID, followingID uint) error {
	result := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&model.FollowModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *followRepository) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.FollowModel{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

// Counts runs two direction-partitioned cardinality queries; counts are
// derived from the edge set, never stored.
func (r *followRepository) Counts(ctx context.Context, userID uint) (*entity.FollowCounts, error) {
	var followers, following int64

	err := r.db.WithContext(ctx).Model(&model.FollowModel{}).
		Where("following_id = ?", userID).
		Count(&followers).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Model(&model.FollowModel{}).
		Where("follower_id = ?", userID).
		Count(&following).Error
	if err != nil {
		return nil, err
	}

	return &entity.FollowCounts{
		FollowersCount: followers,
		FollowingCount: following,
	}, nil
}

// FollowingIDs returns the viewer's visibility boundary. The viewer's own id
// is added by the caller, not here.
func (r *followRepository) FollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&model.FollowModel{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *followRepository) ListFollowing(ctx context.Context, userID uint, limit, offset int) ([]*entity.FollowedUser, error) {
	return r.listEdgeUsers(ctx, "follows.follower_id = ?", "follows.following_id", userID, limit, offset)
}

func (r *followRepository) ListFollowers(ctx context.Context, userID uint, limit, offset int) ([]*entity.FollowedUser, error) {
	return r.listEdgeUsers(ctx, "follows.following_id = ?", "follows.follower_id", userID, limit, offset)
}

func (r *followRepository) listEdgeUsers(ctx context.Context, whereClause, joinColumn string, userID uint, limit, offset int) ([]*entity.FollowedUser, error) {
	var users []*entity.FollowedUser
	err := r.db.WithContext(ctx).Model(&model.FollowModel{}).
		Select("users.id, users.username, users.full_name, follows.created_at AS followed_at").
		Joins("JOIN users ON users.id = "+joinColumn+" AND users.deleted_at IS NULL").
		Where(whereClause, userID).
		Order("follows.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&users).Error
	if err != nil {
		return nil, err
	}

	if users == nil {
		users = []*entity.FollowedUser{}
	}
	return users, nil
}
