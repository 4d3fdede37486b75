package handlers

import "net/http"

// GetStats returns the dashboard counters for the authenticated user.
func GetStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	stats, err := appStore.UserStats(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: stats})
}
