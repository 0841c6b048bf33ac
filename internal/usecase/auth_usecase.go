package usecase

import (
	"context"
	"fmt"

	"sky-archive/internal/entity"
	"sky-archive/internal/repo/persistent"
	"sky-archive/pkg/jwt"
	"sky-archive/pkg/logger"
	"sky-archive/pkg/password"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// dummyPasswordHash keeps the unknown-email login path doing the same bcrypt
// work as the wrong-password path.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type AuthUseCase interface {
	Register(ctx context.Context, username, email, plainPassword string, role entity.Role) (*entity.TokenPair, error)
	Login(ctx context.Context, email, plainPassword string) (*entity.TokenPair, error)
	CurrentUser(ctx context.Context, subject string) (*entity.User, error)
	ListUsers(ctx context.Context, cursorID string, limit int64) ([]*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(ctx context.Context, username, email, plainPassword string, role entity.Role) (*entity.TokenPair, error) {
	if role == "" {
		role = entity.RoleUser
	}
	if !role.Valid() {
		return nil, entity.ErrInvalidRole
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Error("Failed to look up email %s: %v", email, err)
		return nil, fmt.Errorf("look up email: %w", err)
	}
	if existing != nil {
		return nil, entity.ErrEmailTaken
	}

	hashed, err := password.Hash(plainPassword)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		Password: hashed,
		Role:     role,
	}
	if _, err := uc.userRepo.Create(ctx, user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, fmt.Errorf("create user: %w", err)
	}

	return uc.issueTokens(email, role)
}

func (uc *authUseCase) Login(ctx context.Context, email, plainPassword string) (*entity.TokenPair, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Error("Failed to look up email %s: %v", email, err)
		return nil, fmt.Errorf("look up email: %w", err)
	}
	if user == nil {
		// Unknown email and wrong password must be indistinguishable, in
		// message and in work done.
		password.Verify(plainPassword, dummyPasswordHash)
		return nil, entity.ErrInvalidCredentials
	}

	if !password.Verify(plainPassword, user.Password) {
		return nil, entity.ErrInvalidCredentials
	}

	return uc.issueTokens(user.Email, user.Role)
}

// CurrentUser resolves a verified token subject to its user record. An
// unknown subject fails the same way an invalid token does.
func (uc *authUseCase) CurrentUser(ctx context.Context, subject string) (*entity.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, subject)
	if err != nil {
		uc.logger.Error("Failed to resolve subject: %v", err)
		return nil, fmt.Errorf("resolve subject: %w", err)
	}
	if user == nil {
		return nil, entity.ErrUnauthorized
	}
	return user, nil
}

func (uc *authUseCase) ListUsers(ctx context.Context, cursorID string, limit int64) ([]*entity.User, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	if cursorID != "" && cursorID != "null" {
		cursorUser, err := uc.userRepo.GetByID(ctx, cursorID)
		if err != nil {
			uc.logger.Error("Failed to look up cursor %s: %v", cursorID, err)
			return nil, fmt.Errorf("look up cursor: %w", err)
		}
		if cursorUser == nil {
			return nil, entity.ErrNotFound
		}
	} else {
		cursorID = ""
	}

	users, err := uc.userRepo.List(ctx, cursorID, limit)
	if err != nil {
		uc.logger.Error("Failed to list users: %v", err)
		return nil, fmt.Errorf("list users: %w", err)
	}

	for _, user := range users {
		user.Password = ""
	}
	return users, nil
}

func (uc *authUseCase) issueTokens(email string, role entity.Role) (*entity.TokenPair, error) {
	accessToken, err := uc.jwtService.CreateAccessToken(email)
	if err != nil {
		uc.logger.Error("Failed to create access token: %v", err)
		return nil, fmt.Errorf("create access token: %w", err)
	}

	refreshToken, err := uc.jwtService.CreateRefreshToken(email)
	if err != nil {
		uc.logger.Error("Failed to create refresh token: %v", err)
		return nil, fmt.Errorf("create refresh token: %w", err)
	}

	return &entity.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Role:         role,
	}, nil
}
