package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/parentadvocate/advocate-backend/internal/models"
)

// AddAppointment schedules an appointment. Status starts scheduled.
func (s *Store) AddAppointment(ctx context.Context, userID int64, appointmentType, dateTime, location, notes string) (int64, error) {
	if !models.ValidAppointmentType(appointmentType) {
		return 0, fmt.Errorf("%w: unknown appointment type %q", ErrValidation, appointmentType)
	}
	if strings.TrimSpace(dateTime) == "" {
		return 0, fmt.Errorf("%w: date and time are required", ErrValidation)
	}

	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO appointments (user_id, appointment_type, date_time, location, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, userID, appointmentType, dateTime, location, notes).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ListAppointments returns the user's appointments in ascending date-time order.
func (s *Store) ListAppointments(ctx context.Context, userID int64) ([]models.Appointment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, appointment_type, date_time, location, status, notes, created_at
		FROM appointments WHERE user_id = $1
		ORDER BY date_time ASC, id ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appointments := make([]models.Appointment, 0)
	for rows.Next() {
		var a models.Appointment
		if err := rows.Scan(&a.ID, &a.UserID, &a.AppointmentType, &a.DateTime,
			&a.Location, &a.Status, &a.Notes, &a.CreatedAt); err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}

// SetAppointmentStatus records a manual status change (scheduled, completed
// or missed). Elapsed time never changes a status automatically.
func (s *Store) SetAppointmentStatus(ctx context.Context, userID, appointmentID int64, status string) error {
	if !models.ValidAppointmentStatus(status) {
		return fmt.Errorf("%w: unknown appointment status %q", ErrValidation, status)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE appointments SET status = $1 WHERE id = $2 AND user_id = $3
	`, status, appointmentID, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
