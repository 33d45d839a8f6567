package server

import (
	"context"
	"fmt"

	"github.com/hireloop/hireloop/internal/config"
	"github.com/hireloop/hireloop/internal/db"
	"github.com/hireloop/hireloop/internal/types"
)

// UserService provides business logic for account registration and login.
type UserService struct {
	db             *db.DB
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(database *db.DB, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		db:             database,
		passwordConfig: passwordConfig,
	}
}

// Register creates a new account with password authentication. The role
// defaults to candidate when the request leaves it empty.
func (s *UserService) Register(ctx context.Context, req *types.CreateUserRequest) (*types.User, error) {
	existing, err := s.db.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if existing != nil {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := types.Role(req.Role)
	if role == "" {
		role = types.RoleCandidate
	}

	userID, err := s.db.CreateUser(ctx, req.Email, req.Name, passwordHash, role)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve created user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("created user not found: %s", userID)
	}
	return user, nil
}

// Login authenticates an account and returns its profile.
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	user, err := s.db.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Security: always return a generic error for unknown email or wrong
	// password.
	if user == nil {
		return nil, &ErrInvalidCredentials{}
	}

	hash, err := s.db.GetPasswordHash(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get password hash: %w", err)
	}
	if hash == "" || !s.passwordConfig.VerifyPassword(req.Password, hash) {
		return nil, &ErrInvalidCredentials{}
	}

	return user, nil
}
