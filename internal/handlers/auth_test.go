package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/parentadvocate/advocate-backend/internal/database"
)

func setupTestRedis(t *testing.T) {
	t.Helper()
	srv := miniredis.RunT(t)
	database.RedisClient = redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { database.RedisClient = nil })
}

func TestExtractBearerToken(t *testing.T) {
	if got := extractBearerToken("Bearer abc123"); got != "abc123" {
		t.Fatalf("got %q", got)
	}
	if got := extractBearerToken("abc123"); got != "" {
		t.Fatalf("non-bearer header should yield empty token, got %q", got)
	}
	if got := extractBearerToken(""); got != "" {
		t.Fatalf("empty header should yield empty token, got %q", got)
	}
}

func TestSignupRejectsInvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	Signup(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestSignupRejectsMissingFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup",
		strings.NewReader(`{"email":"a@b.com"}`))
	rec := httptest.NewRecorder()

	Signup(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestSigninRejectsMissingFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signin",
		strings.NewReader(`{"email":"a@b.com"}`))
	rec := httptest.NewRecorder()

	Signin(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	setupTestRedis(t)

	protected := map[string]http.HandlerFunc{
		"stats":       GetStats,
		"case":        GetCaseRecord,
		"documents":   ListDocuments,
		"violations":  ListViolations,
		"tasks":       ListTasks,
		"reflections": ListReflections,
		"chat":        GetChatHistory,
		"me":          Me,
	}

	for name, handler := range protected {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()

			handler(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestRequireAuthRejectsUnknownToken(t *testing.T) {
	setupTestRedis(t)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-session")
	rec := httptest.NewRecorder()

	GetStats(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestSignoutWithoutTokenSucceeds(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signout", nil)
	rec := httptest.NewRecorder()

	Signout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
