package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/parentadvocate/advocate-backend/internal/models"
)

// AddViolation records a reported violation. Status always starts open.
func (s *Store) AddViolation(ctx context.Context, userID int64, violationType, description, dateOccurred, legislationRef, evidence string) (int64, error) {
	if !models.ValidViolationType(violationType) {
		return 0, fmt.Errorf("%w: unknown violation type %q", ErrValidation, violationType)
	}
	if strings.TrimSpace(description) == "" {
		return 0, fmt.Errorf("%w: description is required", ErrValidation)
	}

	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO violations (user_id, violation_type, description, date_occurred, legislation_reference, evidence)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, userID, violationType, description, dateOccurred, legislationRef, evidence).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ListViolations returns the user's violations newest-report-first.
func (s *Store) ListViolations(ctx context.Context, userID int64) ([]models.Violation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, violation_type, description, date_occurred,
			legislation_reference, evidence, status, created_at
		FROM violations WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	violations := make([]models.Violation, 0)
	for rows.Next() {
		var v models.Violation
		if err := rows.Scan(&v.ID, &v.UserID, &v.ViolationType, &v.Description, &v.DateOccurred,
			&v.LegislationReference, &v.Evidence, &v.Status, &v.CreatedAt); err != nil {
			return nil, err
		}
		violations = append(violations, v)
	}
	return violations, rows.Err()
}

// SetViolationStatus moves a violation between open and resolved.
func (s *Store) SetViolationStatus(ctx context.Context, userID, violationID int64, status string) error {
	if !models.ValidViolationStatus(status) {
		return fmt.Errorf("%w: unknown violation status %q", ErrValidation, status)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE violations SET status = $1 WHERE id = $2 AND user_id = $3
	`, status, violationID, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
