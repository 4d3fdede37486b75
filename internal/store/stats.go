package store

import (
	"context"
	"math"

	"github.com/parentadvocate/advocate-backend/internal/models"
)

// UserStats aggregates the dashboard counters for one user in a single pass
// of count queries plus the case record.
func (s *Store) UserStats(ctx context.Context, userID int64) (models.UserStats, error) {
	var stats models.UserStats

	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM violations WHERE user_id = $1 AND status = 'open'
	`, userID).Scan(&stats.OpenViolations)
	if err != nil {
		return stats, err
	}

	err = s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'completed')
		FROM compliance_tasks WHERE user_id = $1
	`, userID).Scan(&stats.PendingTasks, &stats.CompletedTasks)
	if err != nil {
		return stats, err
	}
	stats.CompliancePct = compliancePercent(stats.CompletedTasks, stats.PendingTasks)

	err = s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM appointments WHERE user_id = $1 AND status = 'scheduled'
	`, userID).Scan(&stats.UpcomingAppointments)
	if err != nil {
		return stats, err
	}

	err = s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM documents WHERE user_id = $1
	`, userID).Scan(&stats.Documents)
	if err != nil {
		return stats, err
	}

	record, err := s.CaseRecord(ctx, userID)
	if err != nil {
		return stats, err
	}
	stats.CaseRecord = record

	return stats, nil
}

// compliancePercent is completed over all tasks, as a percentage rounded to
// one decimal place. No tasks means 0, not a division error.
func compliancePercent(completed, pending int) float64 {
	total := completed + pending
	if total == 0 {
		return 0
	}
	pct := float64(completed) / float64(total) * 100
	return math.Round(pct*10) / 10
}
