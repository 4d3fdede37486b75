//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"
)

// baseURL points at a running server with fresh Postgres and Redis behind it.
func baseURL(t *testing.T) string {
	t.Helper()
	url := os.Getenv("E2E_BASE_URL")
	if url == "" {
		t.Skip("E2E_BASE_URL not set; skipping e2e tests")
	}
	return url
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	User    map[string]any  `json:"user"`
	Token   string          `json:"token"`
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var env envelope
	_ = json.NewDecoder(resp.Body).Decode(&env)
	return resp, env
}

func TestComplianceLifecycle(t *testing.T) {
	base := baseURL(t)
	email := fmt.Sprintf("e2e-%d@example.com", time.Now().UnixNano())

	// Sign up
	resp, env := doJSON(t, http.MethodPost, base+"/api/auth/signup", "", map[string]string{
		"full_name": "E2E Parent",
		"email":     email,
		"password":  "correct horse battery",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup status = %d", resp.StatusCode)
	}
	token := env.Token
	if token == "" {
		t.Fatal("signup returned no session token")
	}

	// Duplicate signup must conflict
	resp, _ = doJSON(t, http.MethodPost, base+"/api/auth/signup", "", map[string]string{
		"full_name": "E2E Parent",
		"email":     email,
		"password":  "another password",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate signup status = %d, want %d", resp.StatusCode, http.StatusConflict)
	}

	// Wrong password must be rejected
	resp, _ = doJSON(t, http.MethodPost, base+"/api/auth/signin", "", map[string]string{
		"email":    email,
		"password": "wrong password",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad signin status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}

	// Add a compliance task
	resp, env = doJSON(t, http.MethodPost, base+"/api/tasks", token, map[string]string{
		"task_name": "Complete parenting course",
		"category":  "Parent Programs",
		"due_date":  "2026-12-01",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add task status = %d: %s", resp.StatusCode, env.Message)
	}
	var created struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode task id: %v", err)
	}

	// One pending task, 0% compliance
	stats := fetchStats(t, base, token)
	if stats.PendingTasks != 1 || stats.CompletedTasks != 0 {
		t.Fatalf("stats = %+v, want 1 pending / 0 completed", stats)
	}
	if stats.CompliancePct != 0 {
		t.Fatalf("compliance = %v, want 0", stats.CompliancePct)
	}

	// Complete it, twice. The second completion is a no-op.
	for i := 0; i < 2; i++ {
		resp, env = doJSON(t, http.MethodPut,
			fmt.Sprintf("%s/api/tasks/%d/complete", base, created.ID), token, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("complete task status = %d: %s", resp.StatusCode, env.Message)
		}
	}

	stats = fetchStats(t, base, token)
	if stats.PendingTasks != 0 || stats.CompletedTasks != 1 {
		t.Fatalf("stats = %+v, want 0 pending / 1 completed", stats)
	}
	if stats.CompliancePct != 100 {
		t.Fatalf("compliance = %v, want 100", stats.CompliancePct)
	}

	// Completing a task that does not exist is a 404
	resp, _ = doJSON(t, http.MethodPut, base+"/api/tasks/999999/complete", token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing task status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}

	// Sign out, then the token must stop working
	resp, _ = doJSON(t, http.MethodPost, base+"/api/auth/signout", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("signout status = %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, http.MethodGet, base+"/api/stats", token, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("stats after signout status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
}

type statsPayload struct {
	OpenViolations       int     `json:"open_violations"`
	PendingTasks         int     `json:"pending_tasks"`
	CompletedTasks       int     `json:"completed_tasks"`
	CompliancePct        float64 `json:"compliance_pct"`
	UpcomingAppointments int     `json:"upcoming_appointments"`
	Documents            int     `json:"documents"`
}

func fetchStats(t *testing.T, base, token string) statsPayload {
	t.Helper()

	resp, env := doJSON(t, http.MethodGet, base+"/api/stats", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("stats status = %d: %s", resp.StatusCode, env.Message)
	}
	var stats statsPayload
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	return stats
}
