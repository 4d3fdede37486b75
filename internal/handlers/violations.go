package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/parentadvocate/advocate-backend/internal/models"
)

type violationRequest struct {
	ViolationType  string `json:"violation_type"`
	Description    string `json:"description"`
	DateOccurred   string `json:"date_occurred"`
	LegislationRef string `json:"legislation_ref"`
	Evidence       string `json:"evidence"`
}

type violationStatusRequest struct {
	Status string `json:"status"`
}

// ReportViolation records a procedural breach against the case file.
func ReportViolation(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	var req violationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := appStore.AddViolation(r.Context(), userID, req.ViolationType, req.Description,
		req.DateOccurred, req.LegislationRef, req.Evidence)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Violation reported and saved",
		Data:    map[string]interface{}{"id": id},
	})
}

// ListViolations returns all reported violations, newest first.
func ListViolations(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	violations, err := appStore.ListViolations(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: violations})
}

// UpdateViolationStatus flips a violation between open and resolved.
func UpdateViolationStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	violationID, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid violation id")
		return
	}

	var req violationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := appStore.SetViolationStatus(r.Context(), userID, violationID, req.Status); err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Message: "Violation updated"})
}

// ViolationTypes returns the selectable violation categories.
func ViolationTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Response{Success: true, Data: models.ViolationTypes})
}
