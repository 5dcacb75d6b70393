package entity

import "time"

// Follow is a directed edge in the user graph. Edges are created and removed,
// never soft-deleted.
type Follow struct {
	ID          uint      `json:"id"`
	FollowerID  uint      `json:"follower_id"`
	FollowingID uint      `json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// FollowedUser is one row of a followers/following listing.
type FollowedUser struct {
	ID         uint      `json:"id"`
	Username   string    `json:"username"`
	FullName   string    `json:"full_name"`
	FollowedAt time.Time `json:"followed_at"`
}
