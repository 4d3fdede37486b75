package models

import "time"

const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

// TaskCategories is the closed set of compliance task categories.
var TaskCategories = []string{
	"Drug Testing",
	"Programs (DASSA, Sonder, etc)",
	"Appointments",
	"Safety Plan Tasks",
	"Court Requirements",
	"Parent Programs",
	"Other",
}

// ValidTaskCategory reports whether c is an accepted task category.
func ValidTaskCategory(c string) bool {
	for _, v := range TaskCategories {
		if v == c {
			return true
		}
	}
	return false
}

// ComplianceTask tracks one requirement the parent has to meet.
// CompletionDate is nil while the task is pending and holds the date of the
// first completion afterwards.
type ComplianceTask struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	TaskName       string    `json:"task_name"`
	Category       string    `json:"category"`
	DueDate        string    `json:"due_date"`
	Status         string    `json:"status"`
	CompletionDate *string   `json:"completion_date,omitempty"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
}
