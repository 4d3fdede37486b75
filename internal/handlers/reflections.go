package handlers

import (
	"encoding/json"
	"net/http"
)

type reflectionRequest struct {
	ReflectionText string `json:"reflection_text"`
	Date           string `json:"date"`
}

// AddReflection saves a private journal entry. Reflection text is never
// forwarded to the assistant.
func AddReflection(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	var req reflectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := appStore.AddReflection(r.Context(), userID, req.ReflectionText, req.Date)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Reflection saved",
		Data:    map[string]interface{}{"id": id},
	})
}

// ListReflections returns the user's journal, newest first.
func ListReflections(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	reflections, err := appStore.ListReflections(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: reflections})
}
