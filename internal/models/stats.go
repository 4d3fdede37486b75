package models

// UserStats is the dashboard aggregation over a user's case data.
// CompliancePct is completed/(completed+pending)*100 rounded to one decimal
// place, 0 when no tasks exist.
type UserStats struct {
	OpenViolations       int        `json:"open_violations"`
	PendingTasks         int        `json:"pending_tasks"`
	CompletedTasks       int        `json:"completed_tasks"`
	CompliancePct        float64    `json:"compliance_pct"`
	UpcomingAppointments int        `json:"upcoming_appointments"`
	Documents            int        `json:"documents"`
	CaseRecord           CaseRecord `json:"case_record"`
}
