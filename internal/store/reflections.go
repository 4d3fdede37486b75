package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/parentadvocate/advocate-backend/internal/models"
)

// AddReflection saves a private journal entry. The date is the day the
// entry is about, as entered, which may differ from created_at.
func (s *Store) AddReflection(ctx context.Context, userID int64, text, date string) (int64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, fmt.Errorf("%w: reflection text is required", ErrValidation)
	}

	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO reflections (user_id, reflection_text, date)
		VALUES ($1, $2, $3)
		RETURNING id
	`, userID, text, date).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ListReflections returns the user's journal entries, newest first.
func (s *Store) ListReflections(ctx context.Context, userID int64) ([]models.Reflection, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, reflection_text, date, created_at
		FROM reflections WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reflections := make([]models.Reflection, 0)
	for rows.Next() {
		var r models.Reflection
		if err := rows.Scan(&r.ID, &r.UserID, &r.ReflectionText, &r.Date, &r.CreatedAt); err != nil {
			return nil, err
		}
		reflections = append(reflections, r)
	}
	return reflections, rows.Err()
}
