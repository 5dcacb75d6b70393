package entity

import "time"

// Like rows are physically deleted on unlike; there is no soft-delete flag
// here, unlike comments.
type Like struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	PostID    uint      `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Liker is one row of a post's likers listing.
type Liker struct {
	UserID   uint      `json:"user_id"`
	Username string    `json:"username"`
	FullName string    `json:"full_name"`
	LikedAt  time.Time `json:"liked_at"`
}
