package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// User is an account row.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	FullName     string
	CreatedAt    time.Time
	LastLogin    *time.Time
}

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// CreateUser inserts a new account and returns it. Usernames and emails are
// unique case-insensitively at the schema level.
func (db *DB) CreateUser(ctx context.Context, username, email, passwordHash, fullName string) (*User, error) {
	user := &User{}
	err := db.pool.QueryRow(ctx,
		`INSERT INTO users (username, email, password_hash, full_name)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, username, email, password_hash, full_name, created_at, last_login`,
		username, email, passwordHash, fullName,
	).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.FullName, &user.CreatedAt, &user.LastLogin)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetUserByEmail looks up an account by email, case-insensitively.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	user := &User{}
	err := db.pool.QueryRow(ctx,
		`SELECT id, username, email, password_hash, full_name, created_at, last_login
		 FROM users WHERE lower(email) = lower($1)`,
		email,
	).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.FullName, &user.CreatedAt, &user.LastLogin)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// GetUserByID looks up an account by primary key.
func (db *DB) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	user := &User{}
	err := db.pool.QueryRow(ctx,
		`SELECT id, username, email, password_hash, full_name, created_at, last_login
		 FROM users WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.FullName, &user.CreatedAt, &user.LastLogin)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

// UpdatePassword replaces the stored password hash.
func (db *DB) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE users SET password_hash = $1 WHERE id = $2`,
		passwordHash, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// TouchLastLogin records a successful login.
func (db *DB) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE users SET last_login = NOW() WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}
