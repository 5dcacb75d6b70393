package entity

import "time"

type User struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	IsDeleted bool      `json:"-"`
}

// UserSummary is the search-result row: author info plus the viewer's
// relationship to them and derived follow counts.
type UserSummary struct {
	ID             uint      `json:"id"`
	Username       string    `json:"username"`
	FullName       string    `json:"full_name"`
	CreatedAt      time.Time `json:"created_at"`
	IsFollowing    bool      `json:"is_following"`
	FollowersCount int64     `json:"followers_count"`
	FollowingCount int64     `json:"following_count"`
}

// FollowCounts are always derived from the follows edge set, never stored.
type FollowCounts struct {
	FollowersCount int64 `json:"followers_count"`
	FollowingCount int64 `json:"following_count"`
}

// Profile is the authenticated user's own view of their account.
type Profile struct {
	User
	FollowCounts
}
