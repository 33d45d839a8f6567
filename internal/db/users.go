package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/hireloop/hireloop/internal/types"
)

// CreateUser inserts a user with hashed credentials and returns its ID.
func (db *DB) CreateUser(ctx context.Context, email, name, passwordHash string, role types.Role) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO users (email, name, password_hash, role, platform_interview)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		email, name, passwordHash, string(role), `{"status": "pending", "attempts": 0}`,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

// GetUser fetches a user by ID. Returns nil when not found.
func (db *DB) GetUser(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	return db.scanUser(db.pool.QueryRow(ctx,
		`SELECT id, email, name, role, is_onboarding_complete,
		        legacy_interview_completed, interview_score, platform_interview, created_at
		 FROM users WHERE id = $1`, userID))
}

// GetUserByEmail fetches a user by email. Returns nil when not found.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	return db.scanUser(db.pool.QueryRow(ctx,
		`SELECT id, email, name, role, is_onboarding_complete,
		        legacy_interview_completed, interview_score, platform_interview, created_at
		 FROM users WHERE email = $1`, email))
}

// GetPasswordHash returns the stored password hash for an email, or empty
// string when the account does not exist.
func (db *DB) GetPasswordHash(ctx context.Context, email string) (string, error) {
	var hash string
	err := db.pool.QueryRow(ctx,
		`SELECT password_hash FROM users WHERE email = $1`, email,
	).Scan(&hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get password hash: %w", err)
	}
	return hash, nil
}

// UpdatePlatformInterview replaces a candidate's platform-interview record.
func (db *DB) UpdatePlatformInterview(ctx context.Context, userID uuid.UUID, pi types.PlatformInterview) error {
	data, err := json.Marshal(pi)
	if err != nil {
		return fmt.Errorf("failed to marshal platform interview: %w", err)
	}
	_, err = db.pool.Exec(ctx,
		`UPDATE users SET platform_interview = $1 WHERE id = $2`, data, userID)
	if err != nil {
		return fmt.Errorf("failed to update platform interview: %w", err)
	}
	return nil
}

func (db *DB) scanUser(row pgx.Row) (*types.User, error) {
	var (
		user   types.User
		role   string
		piData []byte
	)
	err := row.Scan(&user.ID, &user.Email, &user.Name, &role,
		&user.IsOnboardingComplete, &user.LegacyInterviewCompleted,
		&user.InterviewScore, &piData, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	user.Role = types.Role(role)
	if len(piData) > 0 {
		if err := json.Unmarshal(piData, &user.PlatformInterview); err != nil {
			return nil, fmt.Errorf("failed to unmarshal platform interview: %w", err)
		}
	}
	return &user, nil
}
