package store

import (
	"context"
	"fmt"

	"github.com/parentadvocate/advocate-backend/internal/models"
)

// AppendChatMessage records one conversation turn. Role must be user or assistant.
func (s *Store) AppendChatMessage(ctx context.Context, userID int64, role, message string) error {
	if !models.ValidChatRole(role) {
		return fmt.Errorf("%w: unknown chat role %q", ErrValidation, role)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chat_history (user_id, role, message)
		VALUES ($1, $2, $3)
	`, userID, role, message)
	return err
}

// ChatHistory returns the latest limit messages in chronological order.
// The query reads newest-first so the limit keeps the most recent turns,
// then the slice is reversed before returning.
func (s *Store) ChatHistory(ctx context.Context, userID int64, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, role, message, timestamp
		FROM chat_history WHERE user_id = $1
		ORDER BY id DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]models.ChatMessage, 0)
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.Role, &m.Message, &m.Timestamp); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	reverseMessages(messages)
	return messages, nil
}

func reverseMessages(msgs []models.ChatMessage) {
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
}
