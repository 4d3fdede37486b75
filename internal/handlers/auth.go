package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/parentadvocate/advocate-backend/internal/services"
)

// Signup Request
type SignupRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signin Request
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Auth Response
type AuthResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	User    map[string]interface{} `json:"user,omitempty"`
	Token   string                 `json:"token,omitempty"`
}

// Signup handles account registration. The user row and the empty case
// record are created together.
func Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.FullName == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Name, email, and password are required")
		return
	}

	userID, err := appStore.CreateAccount(r.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	token, err := services.CreateSession(userID)
	if err != nil {
		log.Printf("ERROR: failed to create session: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{
		Success: true,
		Message: "Account created successfully",
		User: map[string]interface{}{
			"id":        userID,
			"full_name": req.FullName,
			"user_type": "parent",
		},
		Token: token,
	})
}

// Signin handles login.
func Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	identity, err := appStore.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	token, err := services.CreateSession(identity.ID)
	if err != nil {
		log.Printf("ERROR: failed to create session: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: "Login successful",
		User: map[string]interface{}{
			"id":        identity.ID,
			"full_name": identity.FullName,
			"user_type": identity.UserType,
		},
		Token: token,
	})
}

// Signout invalidates the current session. Always succeeds.
func Signout(w http.ResponseWriter, r *http.Request) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	if token != "" {
		if err := services.InvalidateSession(token); err != nil {
			log.Printf("ERROR: failed to invalidate session: %v", err)
		}
	}
	writeJSON(w, http.StatusOK, Response{Success: true, Message: "Signed out"})
}

// Me returns the authenticated user's identity.
func Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	user, err := appStore.UserByID(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: user})
}
