package usecase

import (
	"context"
	"testing"
	"time"

	"ripple/internal/entity"
	"ripple/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newSocialFixture() (*MockFollowRepository, *MockUserRepository, *MockPublisher, SocialUseCase) {
	followRepo := new(MockFollowRepository)
	userRepo := new(MockUserRepository)
	publisher := new(MockPublisher)
	uc := NewSocialUseCase(followRepo, userRepo, nil, publisher, logger.New())
	return followRepo, userRepo, publisher, uc
}

func TestFollow_Success(t *testing.T) {
	followRepo, userRepo, publisher, uc := newSocialFixture()
	ctx := context.Background()

	userRepo.On("GetByID", ctx, uint(2)).Return(&entity.User{ID: 2, Username: "bob"}, nil)
	followRepo.On("Create", ctx, uint(1), uint(2)).Return(&entity.Follow{
		ID:          10,
		FollowerID:  1,
		FollowingID: 2,
		CreatedAt:   time.Now(),
	}, nil)
	publisher.On("PublishNotificationTask", mock.Anything).Return(nil)

	follow, err := uc.Follow(ctx, 1, 2)

	assert.NoError(t, err)
	assert.Equal(t, uint(1), follow.FollowerID)
	assert.Equal(t, uint(2), follow.FollowingID)
	followRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestFollow_Self(t *testing.T) {
	followRepo, userRepo, _, uc := newSocialFixture()

	_, err := uc.Follow(context.Background(), 1, 1)

	assert.ErrorIs(t, err, entity.ErrSelfFollow)
	userRepo.AssertNotCalled(t, "GetByID")
	followRepo.AssertNotCalled(t, "Create")
}

func TestFollow_Duplicate(t *testing.T) {
	followRepo, userRepo, publisher, uc := newSocialFixture()
	ctx := context.Background()

	userRepo.On("GetByID", ctx, uint(2)).Return(&entity.User{ID: 2}, nil)
	followRepo.On("Create", ctx, uint(1), uint(2)).Return(nil, entity.ErrDuplicateRelationship)

	_, err := uc.Follow(ctx, 1, 2)

	assert.ErrorIs(t, err, entity.ErrDuplicateRelationship)
	publisher.AssertNotCalled(t, "PublishNotificationTask")
}

func TestFollow_TargetNotFound(t *testing.T) {
	followRepo, userRepo, _, uc := newSocialFixture()
	ctx := context.Background()

	userRepo.On("GetByID", ctx, uint(99)).Return(nil, entity.ErrNotFound)

	_, err := uc.Follow(ctx, 1, 99)

	assert.ErrorIs(t, err, entity.ErrNotFound)
	followRepo.AssertNotCalled(t, "Create")
}

func TestUnfollow_NotFollowing(t *testing.T) {
	followRepo, _, _, uc := newSocialFixture()
	ctx := context.Background()

	followRepo.On("Delete", ctx, uint(1), uint(2)).Return(entity.ErrNotFound)

	err := uc.Unfollow(ctx, 1, 2)

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestStats_AnonymousViewer(t *testing.T) {
	followRepo, userRepo, _, uc := newSocialFixture()
	ctx := context.Background()

	userRepo.On("GetByID", ctx, uint(2)).Return(&entity.User{ID: 2}, nil)
	followRepo.On("Counts", ctx, uint(2)).Return(&entity.FollowCounts{FollowersCount: 7, FollowingCount: 3}, nil)

	counts, isFollowing, err := uc.Stats(ctx, 0, 2)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), counts.FollowersCount)
	assert.Equal(t, int64(3), counts.FollowingCount)
	assert.False(t, isFollowing)
	followRepo.AssertNotCalled(t, "IsFollowing")
}

func TestStats_ViewerFollows(t *testing.T) {
	followRepo, userRepo, _, uc := newSocialFixture()
	ctx := context.Background()

	userRepo.On("GetByID", ctx, uint(2)).Return(&entity.User{ID: 2}, nil)
	followRepo.On("Counts", ctx, uint(2)).Return(&entity.FollowCounts{FollowersCount: 1}, nil)
	followRepo.On("IsFollowing", ctx, uint(1), uint(2)).Return(true, nil)

	_, isFollowing, err := uc.Stats(ctx, 1, 2)

	assert.NoError(t, err)
	assert.True(t, isFollowing)
}

func TestListFollowers_Pagination(t *testing.T) {
	followRepo, userRepo, _, uc := newSocialFixture()
	ctx := context.Background()

	userRepo.On("GetByID", ctx, uint(2)).Return(&entity.User{ID: 2}, nil)
	followRepo.On("ListFollowers", ctx, uint(2), 2, 0).Return([]*entity.FollowedUser{
		{ID: 5, Username: "eve"},
		{ID: 6, Username: "mallory"},
	}, nil)

	users, pagination, err := uc.ListFollowers(ctx, 2, 1, 2)

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.True(t, pagination.HasMore)
}
