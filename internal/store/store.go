// Package store is the data-access layer: schema-backed CRUD for every
// record collection plus the dashboard stat aggregation.
package store

import (
	"database/sql"
	"errors"
)

var (
	// ErrDuplicateEmail is returned when sign-up hits an already registered email.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials is returned when no user matches the email/password
	// pair. Unknown email and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNotFound is returned when an operation references a record id that
	// does not exist for the acting user.
	ErrNotFound = errors.New("record not found")
	// ErrValidation is returned for missing required fields and values outside
	// a closed enum set.
	ErrValidation = errors.New("validation failed")
)

// Store wraps the SQL database with the application's data operations.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}
