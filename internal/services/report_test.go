package services

import (
	"strings"
	"testing"
	"time"

	"github.com/parentadvocate/advocate-backend/internal/models"
)

func TestBuildReportPrompt(t *testing.T) {
	prompt := BuildReportPrompt(ReportInput{
		ReportType: "Compliance Progress Report",
		DateFrom:   "2026-07-01",
		DateTo:     "2026-08-31",
		Stats: models.UserStats{
			CompliancePct:  75.0,
			CompletedTasks: 3,
			PendingTasks:   1,
			OpenViolations: 2,
			Documents:      5,
		},
		Reflections: 4,
	})

	for _, want := range []string{
		"Compliance Progress Report",
		"Compliance Rate: 75.0%",
		"Completed Tasks: 3",
		"Pending Tasks: 1",
		"Violations Reported: 2",
		"Documents on File: 5",
		"Reflections Written: 4",
		"2026-07-01 to 2026-08-31",
		"court submission",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestReportFilename(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	got := ReportFilename("Court Submission Package", now)
	if got != "Court_Submission_Package_20260901.txt" {
		t.Fatalf("ReportFilename = %q", got)
	}
}

func TestValidReportType(t *testing.T) {
	if !ValidReportType("Comprehensive Case Summary") {
		t.Fatal("known report type rejected")
	}
	if ValidReportType("Meeting Minutes") {
		t.Fatal("unknown report type accepted")
	}
}
