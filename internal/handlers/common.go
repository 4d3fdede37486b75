package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/parentadvocate/advocate-backend/internal/services"
	"github.com/parentadvocate/advocate-backend/internal/store"
)

var (
	appStore     *store.Store
	appAssistant *services.Assistant
)

// InitHandlers wires the shared store and assistant into the handler
// package. Called once at startup before routes are mounted.
func InitHandlers(s *store.Store, a *services.Assistant) {
	appStore = s
	appAssistant = a
}

// Response is the standard JSON envelope.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Response{Success: false, Message: message})
}

// writeStoreError maps store sentinel errors onto HTTP statuses. Anything
// unrecognized is a 500 with the detail kept in the server log only.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, store.ErrDuplicateEmail):
		writeError(w, http.StatusConflict, "User with this email already exists")
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	default:
		log.Printf("ERROR: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func extractBearerToken(header string) string {
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// requireAuth validates the session and returns the authenticated user's ID.
// Writes a 401 and returns false when the session is missing or invalid.
func requireAuth(w http.ResponseWriter, r *http.Request) (int64, bool) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return 0, false
	}
	userID, ok, err := services.ValidateSession(token)
	if err != nil || !ok {
		writeError(w, http.StatusUnauthorized, "Invalid or expired session")
		return 0, false
	}
	return userID, true
}

// urlID parses the named chi URL parameter as a positive integer ID.
func urlID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
