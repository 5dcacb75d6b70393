package usecase

import (
	"context"
	"testing"

	"ripple/internal/entity"
	"ripple/pkg/jwt"
	"ripple/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture() (*MockUserRepository, *MockFollowRepository, AuthUseCase) {
	userRepo := new(MockUserRepository)
	followRepo := new(MockFollowRepository)
	uc := NewAuthUseCase(userRepo, followRepo, jwt.NewService("test-secret"), logger.New())
	return userRepo, followRepo, uc
}

func TestRegister_UsernameTaken(t *testing.T) {
	userRepo, _, uc := newAuthFixture()
	ctx := context.Background()

	userRepo.On("GetByUsername", ctx, "alice").Return(&entity.User{ID: 1, Username: "alice"}, nil)

	_, _, err := uc.Register(ctx, "alice", "alice@example.com", "Alice", "password123")

	assert.ErrorIs(t, err, ErrUsernameTaken)
	userRepo.AssertNotCalled(t, "Create")
}

func TestRegister_Success(t *testing.T) {
	userRepo, _, uc := newAuthFixture()
	ctx := context.Background()

	userRepo.On("GetByUsername", ctx, "alice").Return(nil, entity.ErrNotFound)
	userRepo.On("GetByEmail", ctx, "alice@example.com").Return(nil, entity.ErrNotFound)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.User).ID = 7
	}).Return(nil)

	user, token, err := uc.Register(ctx, "alice", "alice@example.com", "Alice", "password123")

	assert.NoError(t, err)
	assert.Equal(t, uint(7), user.ID)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "password123", user.Password)
	userRepo.AssertExpectations(t)
}

func TestLogin_InvalidPassword(t *testing.T) {
	userRepo, _, uc := newAuthFixture()
	ctx := context.Background()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	userRepo.On("GetByEmail", ctx, "alice@example.com").Return(&entity.User{ID: 1, Password: string(hashed)}, nil)

	_, _, err := uc.Login(ctx, "alice@example.com", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo, _, uc := newAuthFixture()
	ctx := context.Background()

	userRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, entity.ErrNotFound)

	_, _, err := uc.Login(ctx, "ghost@example.com", "whatever")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_Success(t *testing.T) {
	userRepo, _, uc := newAuthFixture()
	ctx := context.Background()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	userRepo.On("GetByEmail", ctx, "alice@example.com").Return(&entity.User{ID: 1, Password: string(hashed)}, nil)

	user, token, err := uc.Login(ctx, "alice@example.com", "correct")

	assert.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.NotEmpty(t, token)
}

func TestMe_Profile(t *testing.T) {
	userRepo, followRepo, uc := newAuthFixture()
	ctx := context.Background()

	userRepo.On("GetByID", ctx, uint(1)).Return(&entity.User{ID: 1, Username: "alice"}, nil)
	followRepo.On("Counts", ctx, uint(1)).Return(&entity.FollowCounts{FollowersCount: 2, FollowingCount: 4}, nil)

	profile, err := uc.Me(ctx, 1)

	assert.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, int64(2), profile.FollowersCount)
	assert.Equal(t, int64(4), profile.FollowingCount)
}
