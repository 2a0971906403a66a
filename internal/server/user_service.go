package server

import (
	"context"
	"errors"

	"github.com/arvind/jobseeker-engine/internal/config"
	"github.com/arvind/jobseeker-engine/internal/db"
	"github.com/arvind/jobseeker-engine/internal/types"
	"github.com/google/uuid"
)

// UserService implements account registration and login on top of the user
// store.
type UserService struct {
	db       *db.DB
	password *config.PasswordConfig
}

// NewUserService creates a UserService.
func NewUserService(database *db.DB, password *config.PasswordConfig) *UserService {
	return &UserService{db: database, password: password}
}

// Register creates a new account.
func (s *UserService) Register(ctx context.Context, req *types.CreateUserRequest) (*types.User, error) {
	if existing, err := s.db.GetUserByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	} else if err != nil && !errors.Is(err, db.ErrNotFound) {
		return nil, err
	}

	hash, err := s.password.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.db.CreateUser(ctx, req.Username, req.Email, hash, req.FullName)
	if err != nil {
		return nil, err
	}
	return toAPIUser(user), nil
}

// Login verifies credentials and records the login time.
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	user, err := s.db.GetUserByEmail(ctx, req.Email)
	if errors.Is(err, db.ErrNotFound) {
		return nil, &ErrInvalidCredentials{}
	}
	if err != nil {
		return nil, err
	}

	if !s.password.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	// Best effort; a failed timestamp update must not fail the login.
	_ = s.db.TouchLastLogin(ctx, user.ID)

	return toAPIUser(user), nil
}

// UpdatePassword verifies the current password and stores a new hash.
func (s *UserService) UpdatePassword(ctx context.Context, userID uuid.UUID, req *types.UpdatePasswordRequest) error {
	user, err := s.db.GetUserByID(ctx, userID)
	if errors.Is(err, db.ErrNotFound) {
		return &ErrUserNotFound{UserID: userID}
	}
	if err != nil {
		return err
	}

	if !s.password.VerifyPassword(req.CurrentPassword, user.PasswordHash) {
		return &ErrPasswordMismatch{}
	}

	hash, err := s.password.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.db.UpdatePassword(ctx, userID, hash)
}

func toAPIUser(u *db.User) *types.User {
	return &types.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}
