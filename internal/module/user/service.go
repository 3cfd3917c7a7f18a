package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cartorio-digital/apostille-platform-server/package/argon2"
	"github.com/cartorio-digital/apostille-platform-server/package/jwt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInactiveUser       = errors.New("user account is inactive")
)

type UserService interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	ValidateToken(tokenString string) (*jwt.Claims, error)
	GetCurrentUser(ctx context.Context, userID string) (*UserResponse, error)
}

type userService struct {
	repository UserRepository
	tokens     *jwt.Service
	logger     zerolog.Logger
}

func NewUserService(repository UserRepository, tokens *jwt.Service, logger zerolog.Logger) UserService {
	return &userService{
		repository: repository,
		tokens:     tokens,
		logger:     logger.With().Str("service", "user").Logger(),
	}
}

// Login verifies credentials and issues a bearer token. Missing users and
// bad passwords return the same error so the response does not reveal
// which addresses exist.
func (s *userService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	found, err := s.repository.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if found == nil {
		return nil, ErrInvalidCredentials
	}

	valid, err := argon2.VerifyPassword(req.Password, found.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		s.logger.Warn().Str("email", req.Email).Msg("failed login attempt")
		return nil, ErrInvalidCredentials
	}

	if !found.IsActive {
		return nil, ErrInactiveUser
	}

	token, err := s.tokens.Generate(found.ID.Hex(), found.Email, string(found.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{
		Token: token,
		User:  found.ToResponse(),
	}, nil
}

func (s *userService) ValidateToken(tokenString string) (*jwt.Claims, error) {
	claims, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	return claims, nil
}

func (s *userService) GetCurrentUser(ctx context.Context, userID string) (*UserResponse, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %q", ErrUserNotFound, userID)
	}

	found, err := s.repository.GetByID(ctx, objectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if found == nil {
		return nil, ErrUserNotFound
	}

	return found.ToResponse(), nil
}
