package persistent

import (
	"ripple/internal/entity"
	"ripple/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		FullName:  m.FullName,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
		IsDeleted: m.DeletedAt.Valid,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:        e.ID,
		Username:  e.Username,
		Email:     e.Email,
		FullName:  e.FullName,
		Password:  e.Password,
		CreatedAt: e.CreatedAt,
	}
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID:              m.ID,
		UserID:          m.UserID,
		Content:         m.Content,
		MediaURL:        m.MediaURL,
		CommentsEnabled: m.CommentsEnabled,
		CreatedAt:       m.CreatedAt,
		IsDeleted:       m.DeletedAt.Valid,
	}

	if m.Author.ID != 0 {
		post.Author = &entity.Author{
			ID:       m.Author.ID,
			Username: m.Author.Username,
			FullName: m.Author.FullName,
		}
	}

	return post
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:              e.ID,
		UserID:          e.UserID,
		Content:         e.Content,
		MediaURL:        e.MediaURL,
		CommentsEnabled: e.CommentsEnabled,
		CreatedAt:       e.CreatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	comment := &entity.Comment{
		ID:        m.ID,
		UserID:    m.UserID,
		PostID:    m.PostID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	if m.Author.ID != 0 {
		comment.Author = &entity.Author{
			ID:       m.Author.ID,
			Username: m.Author.Username,
			FullName: m.Author.FullName,
		}
	}

	return comment
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}

	return &model.CommentModel{
		ID:        e.ID,
		UserID:    e.UserID,
		PostID:    e.PostID,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToFollowEntity(m *model.FollowModel) *entity.Follow {
	if m == nil {
		return nil
	}

	return &entity.Follow{
		ID:          m.ID,
		FollowerID:  m.FollowerID,
		FollowingID: m.FollowingID,
		CreatedAt:   m.CreatedAt,
	}
}

func ToLikeEntity(m *model.LikeModel) *entity.Like {
	if m == nil {
		return nil
	}

	return &entity.Like{
		ID:        m.ID,
		UserID:    m.UserID,
		PostID:    m.PostID,
		CreatedAt: m.CreatedAt,
	}
}
