package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/parentadvocate/advocate-backend/internal/services"
)

type reportRequest struct {
	ReportType string `json:"report_type"`
	DateFrom   string `json:"date_from"`
	DateTo     string `json:"date_to"`
}

// GenerateReport builds a court-ready report from the user's case data.
// Requested as JSON, returned as a text/plain attachment.
func GenerateReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !services.ValidReportType(req.ReportType) {
		writeError(w, http.StatusBadRequest, "Unknown report type")
		return
	}

	stats, err := appStore.UserStats(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	reflections, err := appStore.ListReflections(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	report := services.GenerateReport(r.Context(), appAssistant, services.ReportInput{
		ReportType:  req.ReportType,
		DateFrom:    req.DateFrom,
		DateTo:      req.DateTo,
		Stats:       stats,
		Reflections: len(reflections),
	})

	filename := services.ReportFilename(req.ReportType, time.Now())
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write([]byte(report))
}

// ReportTypes returns the selectable report formats.
func ReportTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Response{Success: true, Data: services.ReportTypes})
}
