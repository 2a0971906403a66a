package types

import (
	"time"

	"github.com/google/uuid"
)

// CreateUserRequest registers a new account with password authentication.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name,omitempty"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdatePasswordRequest changes the authenticated user's password.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// User is the account shape returned by the API.
type User struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// LoginResponse carries the account plus its bearer token.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Validate validates the CreateUserRequest.
func (r *CreateUserRequest) Validate() error { return validate.Struct(r) }

// Validate validates the LoginRequest.
func (r *LoginRequest) Validate() error { return validate.Struct(r) }

// Validate validates the UpdatePasswordRequest.
func (r *UpdatePasswordRequest) Validate() error { return validate.Struct(r) }
