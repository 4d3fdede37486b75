package models

import "time"

// Reflection is one journal entry. Immutable once saved.
type Reflection struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	ReflectionText string    `json:"reflection_text"`
	Date           string    `json:"date"`
	CreatedAt      time.Time `json:"created_at"`
}
