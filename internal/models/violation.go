package models

import "time"

const (
	ViolationStatusOpen     = "open"
	ViolationStatusResolved = "resolved"
)

// ViolationTypes is the closed set of reportable violation types,
// referencing the Children and Young People (Safety) Act 2017.
var ViolationTypes = []string{
	"Failed to provide services (s20)",
	"Inadequate case planning (s37)",
	"Denied contact without court authority (s49)",
	"Failed to notify of court proceedings",
	"Inadequate consultation with parents (s18)",
	"Failed to follow reunification plan (s22)",
	"Breach of confidentiality",
	"Failure to provide interpreter",
	"Other legislative breach",
}

// ValidViolationType reports whether t is a reportable violation type.
func ValidViolationType(t string) bool {
	for _, v := range ViolationTypes {
		if v == t {
			return true
		}
	}
	return false
}

// ValidViolationStatus reports whether s is a recognised violation status.
func ValidViolationStatus(s string) bool {
	return s == ViolationStatusOpen || s == ViolationStatusResolved
}

type Violation struct {
	ID                   int64     `json:"id"`
	UserID               int64     `json:"user_id"`
	ViolationType        string    `json:"violation_type"`
	Description          string    `json:"description"`
	DateOccurred         string    `json:"date_occurred"`
	LegislationReference string    `json:"legislation_reference"`
	Evidence             string    `json:"evidence"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"created_at"`
}
