package model

import (
	"time"

	"gorm.io/gorm"
)

type PostModel struct {
	ID              uint           `gorm:"primaryKey"`
	UserID          uint           `gorm:"index;not null"`
	Content         string         `gorm:"type:text;not null"`
	MediaURL        string         `gorm:"size:512"`
	CommentsEnabled bool           `gorm:"default:true"`
	CreatedAt       time.Time      `gorm:"index"`
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`

	Author UserModel `gorm:"foreignKey:UserID"`
}

func (PostModel) TableName() string {
	return "posts"
}
