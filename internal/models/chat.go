package models

import "time"

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ValidChatRole reports whether r is a recognised conversation role.
func ValidChatRole(r string) bool {
	return r == ChatRoleUser || r == ChatRoleAssistant
}

// ChatMessage is one turn of the assistant conversation. Insertion order
// defines the conversation sequence; messages are never edited or deleted.
type ChatMessage struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Role      string    `json:"role"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
