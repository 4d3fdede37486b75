package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/parentadvocate/advocate-backend/internal/models"
)

// AddTask records a compliance task in pending status.
func (s *Store) AddTask(ctx context.Context, userID int64, taskName, category, dueDate, notes string) (int64, error) {
	if strings.TrimSpace(taskName) == "" {
		return 0, fmt.Errorf("%w: task name is required", ErrValidation)
	}
	if !models.ValidTaskCategory(category) {
		return 0, fmt.Errorf("%w: unknown task category %q", ErrValidation, category)
	}

	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO compliance_tasks (user_id, task_name, category, due_date, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, userID, taskName, category, dueDate, notes).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ListTasks returns the user's compliance tasks in ascending due-date order.
func (s *Store) ListTasks(ctx context.Context, userID int64) ([]models.ComplianceTask, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, task_name, category, due_date, status, completion_date, notes, created_at
		FROM compliance_tasks WHERE user_id = $1
		ORDER BY due_date ASC, id ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]models.ComplianceTask, 0)
	for rows.Next() {
		var (
			t          models.ComplianceTask
			completion sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.UserID, &t.TaskName, &t.Category, &t.DueDate,
			&t.Status, &completion, &t.Notes, &t.CreatedAt); err != nil {
			return nil, err
		}
		if completion.Valid {
			d := completion.String
			t.CompletionDate = &d
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// MarkTaskCompleted transitions a pending task to completed, stamping
// today's date. Completing an already-completed task is a no-op that keeps
// the original completion date; a task id the user does not own returns
// ErrNotFound.
func (s *Store) MarkTaskCompleted(ctx context.Context, userID, taskID int64) error {
	var status string
	err := s.db.QueryRowContext(ctx, `
		SELECT status FROM compliance_tasks WHERE id = $1 AND user_id = $2
	`, taskID, userID).Scan(&status)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return err
	}
	if status == models.TaskStatusCompleted {
		return nil
	}

	// The status guard keeps the first completion date authoritative even
	// under concurrent calls.
	_, err = s.db.ExecContext(ctx, `
		UPDATE compliance_tasks
		SET status = $1, completion_date = $2
		WHERE id = $3 AND user_id = $4 AND status = $5
	`, models.TaskStatusCompleted, time.Now().Format("2006-01-02"), taskID, userID, models.TaskStatusPending)
	return err
}
