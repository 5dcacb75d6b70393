package main

import (
	"fmt"
	"log"

	"ripple/internal/model"
	"ripple/pkg/config"
	"ripple/pkg/database"

	"golang.org/x/crypto/bcrypt"
)

// Seeds a handful of demo users with posts, follows, likes and comments.
// Intended for local development against a freshly migrated database.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	users := []model.UserModel{
		{Username: "alice", Email: "alice@example.com", FullName: "Alice Anderson", Password: string(hashed)},
		{Username: "bob", Email: "bob@example.com", FullName: "Bob Brown", Password: string(hashed)},
		{Username: "carol", Email: "carol@example.com", FullName: "Carol Chen", Password: string(hashed)},
	}
	if err := db.Create(&users).Error; err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	posts := []model.PostModel{
		{UserID: users[0].ID, Content: "First post on ripple!", CommentsEnabled: true},
		{UserID: users[1].ID, Content: "Hello from bob", CommentsEnabled: true},
		{UserID: users[1].ID, Content: "No comments on this one please", CommentsEnabled: false},
		{UserID: users[2].ID, Content: "Carol checking in", CommentsEnabled: true},
	}
	if err := db.Create(&posts).Error; err != nil {
		log.Fatalf("Failed to seed posts: %v", err)
	}

	follows := []model.FollowModel{
		{FollowerID: users[0].ID, FollowingID: users[1].ID},
		{FollowerID: users[0].ID, FollowingID: users[2].ID},
		{FollowerID: users[1].ID, FollowingID: users[0].ID},
	}
	if err := db.Create(&follows).Error; err != nil {
		log.Fatalf("Failed to seed follows: %v", err)
	}

	likes := []model.LikeModel{
		{UserID: users[0].ID, PostID: posts[1].ID},
		{UserID: users[2].ID, PostID: posts[1].ID},
		{UserID: users[1].ID, PostID: posts[0].ID},
	}
	if err := db.Create(&likes).Error; err != nil {
		log.Fatalf("Failed to seed likes: %v", err)
	}

	comments := []model.CommentModel{
		{UserID: users[0].ID, PostID: posts[1].ID, Content: "Welcome, bob!"},
		{UserID: users[2].ID, PostID: posts[0].ID, Content: "Nice first post"},
	}
	if err := db.Create(&comments).Error; err != nil {
		log.Fatalf("Failed to seed comments: %v", err)
	}

	fmt.Printf("Seeded %d users, %d posts, %d follows, %d likes, %d comments\n",
		len(users), len(posts), len(follows), len(likes), len(comments))
}
