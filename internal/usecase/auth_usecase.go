package usecase

import (
	"context"
	"errors"
	"fmt"

	"ripple/internal/entity"
	"ripple/internal/repo/persistent"
	"ripple/pkg/jwt"
	"ripple/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthUseCase interface {
	Register(ctx context.Context, username, email, fullName, password string) (*entity.User, string, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	Me(ctx context.Context, userID uint) (*entity.Profile, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	followRepo persistent.FollowRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	followRepo persistent.FollowRepository,
	jwtService *jwt.Service,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		followRepo: followRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(ctx context.Context, username, email, fullName, password string) (*entity.User, string, error) {
	if _, err := uc.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, "", ErrUsernameTaken
	} else if !errors.Is(err, entity.ErrNotFound) {
		return nil, "", fmt.Errorf("failed to check username: %w", err)
	}

	if _, err := uc.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, entity.ErrNotFound) {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		FullName: fullName,
		Password: string(hashed),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		// The unique constraints back up the pre-checks under races.
		if errors.Is(err, entity.ErrDuplicateRelationship) {
			return nil, "", ErrUsernameTaken
		}
		uc.logger.Error("Failed to create user %s: %v", username, err)
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := uc.jwtService.GenerateToken(user.ID, "user")
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	uc.logger.Info("Registered user %d (%s)", user.ID, user.Username)
	return user, token, nil
}

func (uc *authUseCase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(user.ID, "user")
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

func (uc *authUseCase) Me(ctx context.Context, userID uint) (*entity.Profile, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	counts, err := uc.followRepo.Counts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load follow counts: %w", err)
	}

	return &entity.Profile{User: *user, FollowCounts: *counts}, nil
}
