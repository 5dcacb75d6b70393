package model

import "time"

// FollowModel rows are created and removed, never soft-deleted. Uniqueness on
// the edge pair is enforced by the store.
type FollowModel struct {
	ID          uint      `gorm:"primaryKey"`
	FollowerID  uint      `gorm:"not null;uniqueIndex:idx_follows_pair;index"`
	FollowingID uint      `gorm:"not null;uniqueIndex:idx_follows_pair;index"`
	CreatedAt   time.Time
}

func (FollowModel) TableName() string {
	return "follows"
}
