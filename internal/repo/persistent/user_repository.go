package persistent

import (
	"context"
	"errors"

	"ripple/internal/entity"
	"ripple/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uint) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Search(ctx context.Context, query string, viewerID uint, limit, offset int) ([]*entity.UserSummary, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := ToUserModel(user)
	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entity.ErrDuplicateRelationship
		}
		return err
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

// GetByUsername matches case-insensitively; usernames are unique regardless
// of case.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).Where("LOWER(username) = LOWER(?)", username).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

// Search ranks matches into four tiers: username prefix, username substring,
// full name prefix, then any other match. Ties inside a tier order by
// username so results are stable across requests. The viewer is excluded.
func (r *userRepository) Search(ctx context.Context, query string, viewerID uint, limit, offset int) ([]*entity.UserSummary, error) {
	contains := "%" + query + "%"
	prefix := query + "%"

	var summaries []*entity.UserSummary
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			u.id,
			u.username,
			u.full_name,
			u.created_at,
			EXISTS(
				SELECT 1 FROM follows f
				WHERE f.follower_id = ? AND f.following_id = u.id
			) AS is_following,
			(SELECT COUNT(*) FROM follows WHERE following_id = u.id) AS followers_count,
			(SELECT COUNT(*) FROM follows WHERE follower_id = u.id) AS following_count
		FROM users u
		WHERE u.deleted_at IS NULL
		AND u.id <> ?
		AND (u.username ILIKE ? OR u.full_name ILIKE ?)
		ORDER BY
			CASE
				WHEN u.username ILIKE ? THEN 0
				WHEN u.username ILIKE ? THEN 1
				WHEN u.full_name ILIKE ? THEN 2
				ELSE 3
			END,
			u.username
		LIMIT ? OFFSET ?`,
		viewerID,
		viewerID,
		contains,
		contains,
		prefix,
		contains,
		prefix,
		limit,
		offset,
	).Scan(&summaries).Error
	if err != nil {
		return nil, err
	}

	if summaries == nil {
		summaries = []*entity.UserSummary{}
	}
	return summaries, nil
}
