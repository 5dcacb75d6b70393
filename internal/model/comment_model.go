package model

import (
	"time"

	"gorm.io/gorm"
)

type CommentModel struct {
	ID        uint           `gorm:"primaryKey"`
	UserID    uint           `gorm:"index;not null"`
	PostID    uint           `gorm:"index;not null"`
	Content   string         `gorm:"type:text;not null"`
	CreatedAt time.Time
	// Set explicitly on edit; nil until the comment is first updated.
	UpdatedAt *time.Time     `gorm:"autoUpdateTime:false"`
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Author UserModel `gorm:"foreignKey:UserID"`
}

func (CommentModel) TableName() string {
	return "comments"
}
