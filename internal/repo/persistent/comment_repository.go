package persistent

import (
	"context"
	"errors"
	"time"

	"ripple/internal/entity"
	"ripple/internal/model"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, id uint) (*entity.Comment, error)
	UpdateContent(ctx context.Context, id uint, content string) (*entity.Comment, error)
	SoftDelete(ctx context.Context, id uint) error
	ListForPost(ctx context.Context, postID uint, limit, offset int) ([]*entity.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if err := r.db.WithContext(ctx).Create(commentModel).Error; err != nil {
		return err
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*entity.Comment, error) {
	var commentModel model.CommentModel
	err := r.db.WithContext(ctx).Preload("Author").Where("id = ?", id).First(&commentModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToCommentEntity(&commentModel), nil
}

// UpdateContent stamps updated_at explicitly; it stays null until the first
// edit.
func (r *commentRepository) UpdateContent(ctx context.Context, id uint, content string) (*entity.Comment, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).Model(&model.CommentModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"content":    content,
			"updated_at": now,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, entity.ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *commentRepository) SoftDelete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.CommentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *commentRepository) ListForPost(ctx context.Context, postID uint, limit, offset int) ([]*entity.Comment, error) {
	var commentModels []model.CommentModel
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&commentModels).Error
	if err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments, nil
}
