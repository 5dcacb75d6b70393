package model

import (
	"time"

	"gorm.io/gorm"
)

type UserModel struct {
	ID        uint           `gorm:"primaryKey"`
	Username  string         `gorm:"size:50;uniqueIndex;not null"`
	Email     string         `gorm:"size:255;uniqueIndex;not null"`
	FullName  string         `gorm:"size:100"`
	Password  string         `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (UserModel) TableName() string {
	return "users"
}
