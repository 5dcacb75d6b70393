package usecase

import (
	"context"

	"ripple/internal/entity"
	"ripple/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of persistent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Search(ctx context.Context, query string, viewerID uint, limit, offset int) ([]*entity.UserSummary, error) {
	args := m.Called(ctx, query, viewerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.UserSummary), args.Error(1)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

// MockPostRepository is a mock implementation of persistent.PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *entity.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id uint) (*entity.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostRepository) ListByAuthors(ctx context.Context, authorIDs []uint, limit, offset int) ([]*entity.Post, error) {
	args := m.Called(ctx, authorIDs, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostRepository) ListByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*entity.Post, error) {
	args := m.Called(ctx, authorID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostRepository) Search(ctx context.Context, text string, limit, offset int) ([]*entity.Post, error) {
	args := m.Called(ctx, text, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostRepository) SoftDelete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ persistent.PostRepository = (*MockPostRepository)(nil)

// MockFollowRepository is a mock implementation of persistent.FollowRepository
type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) Create(ctx context.Context, followerID, followingID uint) (*entity.Follow, error) {
	args := m.Called(ctx, followerID, followingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Follow), args.Error(1)
}

func (m *MockFollowRepository) Delete(ctx context.Context, followerID, followingID uint) error {
	args := m.Called(ctx, followerID, followingID)
	return args.Error(0)
}

func (m *MockFollowRepository) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) Counts(ctx context.Context, userID uint) (*entity.FollowCounts, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FollowCounts), args.Error(1)
}

func (m *MockFollowRepository) FollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockFollowRepository) ListFollowing(ctx context.Context, userID uint, limit, offset int) ([]*entity.FollowedUser, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.FollowedUser), args.Error(1)
}

func (m *MockFollowRepository) ListFollowers(ctx context.Context, userID uint, limit, offset int) ([]*entity.FollowedUser, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.FollowedUser), args.Error(1)
}

var _ persistent.FollowRepository = (*MockFollowRepository)(nil)

// MockInteractionRepository is a mock implementation of persistent.InteractionRepository
type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) CreateLike(ctx context.Context, userID, postID uint) (*entity.Like, error) {
	args := m.Called(ctx, userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Like), args.Error(1)
}

func (m *MockInteractionRepository) DeleteLike(ctx context.Context, userID, postID uint) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockInteractionRepository) HasLiked(ctx context.Context, userID, postID uint) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInteractionRepository) CountsForPosts(ctx context.Context, postIDs []uint) (map[uint]entity.PostCounts, error) {
	args := m.Called(ctx, postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint]entity.PostCounts), args.Error(1)
}

func (m *MockInteractionRepository) ViewerLikedSet(ctx context.Context, viewerID uint, postIDs []uint) (map[uint]bool, error) {
	args := m.Called(ctx, viewerID, postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint]bool), args.Error(1)
}

func (m *MockInteractionRepository) LikeCount(ctx context.Context, postID uint) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInteractionRepository) CommentCount(ctx context.Context, postID uint) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInteractionRepository) ListLikers(ctx context.Context, postID uint, limit, offset int) ([]*entity.Liker, error) {
	args := m.Called(ctx, postID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Liker), args.Error(1)
}

var _ persistent.InteractionRepository = (*MockInteractionRepository)(nil)

// MockCommentRepository is a mock implementation of persistent.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id uint) (*entity.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) UpdateContent(ctx context.Context, id uint, content string) (*entity.Comment, error) {
	args := m.Called(ctx, id, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) SoftDelete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepository) ListForPost(ctx context.Context, postID uint, limit, offset int) ([]*entity.Comment, error) {
	args := m.Called(ctx, postID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

var _ persistent.CommentRepository = (*MockCommentRepository)(nil)

// MockPublisher is a mock implementation of NotificationPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishNotificationTask(task map[string]interface{}) error {
	args := m.Called(task)
	return args.Error(0)
}

var _ NotificationPublisher = (*MockPublisher)(nil)
