package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/parentadvocate/advocate-backend/internal/services"
)

func TestGenerateReportRejectsUnknownType(t *testing.T) {
	setupTestRedis(t)
	token, err := services.CreateSession(1)
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/reports",
		strings.NewReader(`{"report_type":"Meeting Minutes"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	GenerateReport(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestGuardianshipGuidanceRequiresSituation(t *testing.T) {
	setupTestRedis(t)
	token, err := services.CreateSession(1)
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/guidance/guardianship",
		strings.NewReader(`{}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	GuardianshipGuidance(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
