package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/parentadvocate/advocate-backend/internal/services"
)

type guidanceRequest struct {
	Situation string `json:"situation"`
}

// GuardianshipGuidance answers questions about long-term guardianship
// orders. The question is anchored to the SA legislative context before
// it reaches the model.
func GuardianshipGuidance(w http.ResponseWriter, r *http.Request) {
	_, ok := requireAuth(w, r)
	if !ok {
		return
	}

	var req guidanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Situation == "" {
		writeError(w, http.StatusBadRequest, "Describe your situation to get guidance")
		return
	}

	guidance := services.GuardianshipGuidance(r.Context(), appAssistant, req.Situation)

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]interface{}{"guidance": guidance},
	})
}
