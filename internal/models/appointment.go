package models

import "time"

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusMissed    = "missed"
)

// AppointmentTypes is the closed set of appointment types.
var AppointmentTypes = []string{
	"Drug Test",
	"Court Hearing",
	"DCP Meeting",
	"Program Session",
	"Doctor/Health",
	"Lawyer Meeting",
	"Supervised Visit",
	"Other",
}

// ValidAppointmentType reports whether t is an accepted appointment type.
func ValidAppointmentType(t string) bool {
	for _, v := range AppointmentTypes {
		if v == t {
			return true
		}
	}
	return false
}

// ValidAppointmentStatus reports whether s is a recognised appointment status.
// Status changes are manual only; elapsed time never updates them.
func ValidAppointmentStatus(s string) bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted, AppointmentStatusMissed:
		return true
	}
	return false
}

type Appointment struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	AppointmentType string    `json:"appointment_type"`
	DateTime        string    `json:"date_time"`
	Location        string    `json:"location"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}
