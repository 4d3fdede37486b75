package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/parentadvocate/advocate-backend/internal/models"
)

// ReportTypes are the court-ready report formats a parent can generate.
var ReportTypes = []string{
	"Comprehensive Case Summary",
	"Compliance Progress Report",
	"Violations Evidence Package",
	"Weekly Progress Update",
	"Court Submission Package",
}

func ValidReportType(t string) bool {
	for _, rt := range ReportTypes {
		if rt == t {
			return true
		}
	}
	return false
}

// ReportInput is everything the report prompt is assembled from.
type ReportInput struct {
	ReportType  string
	DateFrom    string
	DateTo      string
	Stats       models.UserStats
	Reflections int
}

// BuildReportPrompt assembles the generation prompt from the user's case
// data. Only aggregate counts are included, never reflection text.
func BuildReportPrompt(in ReportInput) string {
	return fmt.Sprintf(`Generate a professional %s for a parent working toward reunification with DCP South Australia.

**Case Data:**
- Compliance Rate: %.1f%%
- Completed Tasks: %d
- Pending Tasks: %d
- Violations Reported: %d
- Documents on File: %d
- Reflections Written: %d

**Date Range:** %s to %s

Create a detailed, court-appropriate report that:
1. Summarizes progress and compliance
2. Lists completed requirements
3. Addresses any concerns or violations
4. Demonstrates commitment to reunification
5. Includes next steps and goals

Format with headers, bullet points, and professional language suitable for court submission.`,
		in.ReportType, in.Stats.CompliancePct, in.Stats.CompletedTasks, in.Stats.PendingTasks,
		in.Stats.OpenViolations, in.Stats.Documents, in.Reflections, in.DateFrom, in.DateTo)
}

// ReportFilename is the download name for a generated report, for example
// Compliance_Progress_Report_20260901.txt.
func ReportFilename(reportType string, now time.Time) string {
	return strings.ReplaceAll(reportType, " ", "_") + "_" + now.Format("20060102") + ".txt"
}

// GenerateReport builds the prompt and asks the assistant for the report
// body. Provider failures come back in-band like any chat reply.
func GenerateReport(ctx context.Context, assistant *Assistant, in ReportInput) string {
	return assistant.Reply(ctx, nil, BuildReportPrompt(in))
}

// GuardianshipGuidance answers a question about long-term (18-year)
// guardianship orders, anchored to the SA context.
func GuardianshipGuidance(ctx context.Context, assistant *Assistant, situation string) string {
	return assistant.Reply(ctx, nil, "Regarding 18-year guardianship orders in SA: "+situation)
}
