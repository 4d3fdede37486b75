package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/parentadvocate/advocate-backend/internal/models"
)

type appointmentRequest struct {
	AppointmentType string `json:"appointment_type"`
	DateTime        string `json:"date_time"`
	Location        string `json:"location"`
	Notes           string `json:"notes"`
}

type appointmentStatusRequest struct {
	Status string `json:"status"`
}

// AddAppointment schedules a visit, meeting or hearing.
func AddAppointment(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	var req appointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := appStore.AddAppointment(r.Context(), userID, req.AppointmentType, req.DateTime, req.Location, req.Notes)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Appointment scheduled",
		Data:    map[string]interface{}{"id": id},
	})
}

// ListAppointments returns the user's appointments in date order.
func ListAppointments(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	appointments, err := appStore.ListAppointments(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: appointments})
}

// UpdateAppointmentStatus records an attended or missed appointment.
func UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	appointmentID, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid appointment id")
		return
	}

	var req appointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := appStore.SetAppointmentStatus(r.Context(), userID, appointmentID, req.Status); err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Message: "Appointment updated"})
}

// AppointmentTypes returns the selectable appointment types.
func AppointmentTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Response{Success: true, Data: models.AppointmentTypes})
}
