package entity

import "time"

type Post struct {
	ID              uint      `json:"id"`
	UserID          uint      `json:"user_id"`
	Content         string    `json:"content"`
	MediaURL        string    `json:"media_url,omitempty"`
	CommentsEnabled bool      `json:"comments_enabled"`
	CreatedAt       time.Time `json:"created_at"`
	IsDeleted       bool      `json:"is_deleted"`
	Author          *Author   `json:"author,omitempty"`
}

// Author is the slice of user data joined onto posts and comments.
type Author struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

// PostCounts holds the derived interaction counts for a single post.
type PostCounts struct {
	LikeCount    int64 `json:"like_count"`
	CommentCount int64 `json:"comment_count"`
}

// PostView is a post enriched with interaction counts and the viewer's
// has-liked status; this is what feed and search return.
type PostView struct {
	Post
	LikeCount      int64 `json:"like_count"`
	CommentCount   int64 `json:"comment_count"`
	ViewerHasLiked bool  `json:"viewer_has_liked"`
}
