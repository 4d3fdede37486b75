package handlers

import (
	"encoding/json"
	"net/http"
)

// GetCaseRecord returns the user's case details.
func GetCaseRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	record, err := appStore.CaseRecord(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: record})
}

// UpdateCaseRecord overwrites the supplied case detail fields only.
func UpdateCaseRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	var fields map[string]string
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := appStore.UpdateCaseRecord(r.Context(), userID, fields); err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Message: "Case details saved"})
}
