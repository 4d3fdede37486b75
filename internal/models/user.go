package models

import "time"

type User struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	Password  string     `json:"-"` // password hash, never returned in JSON
	FullName  string     `json:"full_name"`
	UserType  string     `json:"user_type"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// Identity is the authenticated subset of a user returned on sign-in.
type Identity struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	UserType string `json:"user_type"`
}
