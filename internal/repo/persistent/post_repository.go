package persistent

import (
	"context"
	"errors"

	"ripple/internal/entity"
	"ripple/internal/model"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	// GetByID resolves soft-deleted rows too; callers check IsDeleted.
	GetByID(ctx context.Context, id uint) (*entity.Post, error)
	ListByAuthors(ctx context.Context, authorIDs []uint, limit, offset int) ([]*entity.Post, error)
	ListByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*entity.Post, error)
	Search(ctx context.Context, text string, limit, offset int) ([]*entity.Post, error)
	SoftDelete(ctx context.Context, id uint) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postModel := ToPostModel(post)
	if err := r.db.WithContext(ctx).Create(postModel).Error; err != nil {
		return err
	}
	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*entity.Post, error) {
	var postModel model.PostModel
	err := r.db.WithContext(ctx).Unscoped().Preload("Author").Where("id = ?", id).First(&postModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

// ListByAuthors is the feed page query: non-deleted posts by non-deleted
// authors in the visibility set, newest first with id as the deterministic
// tie-break.
func (r *postRepository) ListByAuthors(ctx context.Context, authorIDs []uint, limit, offset int) ([]*entity.Post, error) {
	if len(authorIDs) == 0 {
		return []*entity.Post{}, nil
	}

	var postModels []model.PostModel
	err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = posts.user_id AND users.deleted_at IS NULL").
		Preload("Author").
		Where("posts.user_id IN ?", authorIDs).
		Order("posts.created_at DESC, posts.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&postModels).Error
	if err != nil {
		return nil, err
	}

	return toPostEntities(postModels), nil
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*entity.Post, error) {
	var postModels []model.PostModel
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("user_id = ?", authorID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&postModels).Error
	if err != nil {
		return nil, err
	}

	return toPostEntities(postModels), nil
}

// Search matches content case-insensitively; ranking is recency only.
func (r *postRepository) Search(ctx context.Context, text string, limit, offset int) ([]*entity.Post, error) {
	var postModels []model.PostModel
	err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = posts.user_id AND users.deleted_at IS NULL").
		Preload("Author").
		Where("posts.content ILIKE ?", "%"+text+"%").
		Order("posts.created_at DESC, posts.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&postModels).Error
	if err != nil {
		return nil, err
	}

	return toPostEntities(postModels), nil
}

func (r *postRepository) SoftDelete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.PostModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func toPostEntities(postModels []model.PostModel) []*entity.Post {
	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts
}
