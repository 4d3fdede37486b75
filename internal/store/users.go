package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/parentadvocate/advocate-backend/internal/models"
	"github.com/parentadvocate/advocate-backend/pkg/utils"
)

// uniqueViolation is the Postgres error code for unique constraint hits.
const uniqueViolation = "23505"

// CreateAccount registers a new user and their empty case record in one
// transaction, so a failure can never leave a user without a case record.
// Returns ErrDuplicateEmail if the email is already registered.
func (s *Store) CreateAccount(ctx context.Context, email, password, fullName string) (int64, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" || strings.TrimSpace(fullName) == "" {
		return 0, fmt.Errorf("%w: email, password and full name are required", ErrValidation)
	}

	// Pre-check for a friendlier path; the unique index stays authoritative.
	var existing string
	err := s.db.QueryRowContext(ctx, "SELECT email FROM users WHERE email = $1", email).Scan(&existing)
	if err == nil {
		return 0, ErrDuplicateEmail
	} else if err != sql.ErrNoRows {
		return 0, err
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var userID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO users (email, password_hash, full_name, user_type)
		VALUES ($1, $2, $3, 'parent')
		RETURNING id
	`, email, passwordHash, strings.TrimSpace(fullName)).Scan(&userID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return 0, ErrDuplicateEmail
		}
		return 0, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO case_details (user_id) VALUES ($1)
	`, userID)
	if err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}

	return userID, nil
}

// Authenticate verifies an email/password pair and returns the matched
// identity, updating last_login as a side effect. Returns
// ErrInvalidCredentials on any mismatch.
func (s *Store) Authenticate(ctx context.Context, email, password string) (models.Identity, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return models.Identity{}, ErrInvalidCredentials
	}

	var (
		identity     models.Identity
		passwordHash string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, password_hash, full_name, user_type
		FROM users WHERE email = $1
	`, email).Scan(&identity.ID, &passwordHash, &identity.FullName, &identity.UserType)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Identity{}, ErrInvalidCredentials
		}
		return models.Identity{}, err
	}

	valid, err := utils.VerifyPassword(password, passwordHash)
	if err != nil || !valid {
		return models.Identity{}, ErrInvalidCredentials
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE users SET last_login = NOW() WHERE id = $1
	`, identity.ID)
	if err != nil {
		return models.Identity{}, err
	}

	return identity, nil
}

// UserByID returns the stored profile for a user id.
func (s *Store) UserByID(ctx context.Context, userID int64) (models.User, error) {
	var (
		u         models.User
		lastLogin sql.NullTime
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, full_name, user_type, created_at, last_login
		FROM users WHERE id = $1
	`, userID).Scan(&u.ID, &u.Email, &u.FullName, &u.UserType, &u.CreatedAt, &lastLogin)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLogin = &t
	}
	return u, nil
}
