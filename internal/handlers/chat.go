package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/parentadvocate/advocate-backend/internal/models"
)

type chatRequest struct {
	Message string `json:"message"`
}

// SendChatMessage persists the user's turn, asks the assistant for a reply
// and persists that too. The user's message is saved before the model is
// called, so a model outage never loses what the parent wrote.
func SendChatMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "Message is required")
		return
	}

	history, err := appStore.ChatHistory(r.Context(), userID, 50)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	if err := appStore.AppendChatMessage(r.Context(), userID, models.ChatRoleUser, req.Message); err != nil {
		writeStoreError(w, err)
		return
	}

	reply := appAssistant.Reply(r.Context(), history, req.Message)

	if err := appStore.AppendChatMessage(r.Context(), userID, models.ChatRoleAssistant, reply); err != nil {
		log.Printf("ERROR: failed to persist assistant reply: %v", err)
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]interface{}{"reply": reply},
	})
}

// GetChatHistory returns the most recent conversation turns in
// chronological order. Window size comes from the limit query param,
// default 50.
func GetChatHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	history, err := appStore.ChatHistory(r.Context(), userID, limit)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: history})
}
