package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sangkips/tradenet-api/internal/domain/entity"
	"github.com/sangkips/tradenet-api/internal/domain/repository"
	"github.com/sangkips/tradenet-api/pkg/apperror"
	"github.com/sangkips/tradenet-api/pkg/utils"
)

// MsgEmailTaken is reported on "email" when registering an existing account.
const MsgEmailTaken = "Пользователь с таким email уже существует."

// AuthService handles authentication-related operations
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
	now        func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		now:        time.Now,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// TokenPair is what the token endpoint hands out.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

// RegisterInput represents the registration input
type RegisterInput struct {
	Email    string
	Password string
}

// Register creates a new active user account
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*entity.User, error) {
	email := strings.TrimSpace(input.Email)

	existingUser, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, apperror.NewFieldError("email", MsgEmailTaken)
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:    email,
		Password: hashedPassword,
		IsActive: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Info().Str("user_id", user.ID.String()).Msg("user registered")
	return user, nil
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*TokenPair, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(input.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive || !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	access, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, user.IsAdmin())
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.TouchLastLogin(ctx, user.ID, s.now()); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID.String()).Msg("failed to record last login")
	}

	return &TokenPair{Access: access, Refresh: refresh}, nil
}

// RefreshToken issues a new access token from a refresh token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.CurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	access, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, user.IsAdmin())
	if err != nil {
		return nil, err
	}
	return &TokenPair{Access: access}, nil
}

// Authenticate resolves an access token to an active user.
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := s.jwtManager.ValidateAccessToken(accessToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}
	return s.CurrentUser(ctx, claims.UserID)
}

// CurrentUser loads the user behind a token. The account state is read from
// the database on every request, so deactivation takes effect immediately.
func (s *AuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrUserNotFound
	}
	if !user.IsActive {
		return nil, apperror.ErrUserInactive
	}
	return user, nil
}
