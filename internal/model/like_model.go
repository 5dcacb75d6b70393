package model

import "time"

// LikeModel has no DeletedAt: unliking removes the row. The composite unique
// index is the authoritative guard against duplicate likes under concurrency.
type LikeModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_post"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_post;index"`
	CreatedAt time.Time
}

func (LikeModel) TableName() string {
	return "likes"
}
