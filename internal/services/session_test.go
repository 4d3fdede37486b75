package services

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/parentadvocate/advocate-backend/internal/database"
	"github.com/redis/go-redis/v9"
)

func setupTestRedis(t *testing.T) {
	t.Helper()
	srv := miniredis.RunT(t)
	database.RedisClient = redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { database.RedisClient = nil })
}

func TestSessionLifecycle(t *testing.T) {
	setupTestRedis(t)

	token, err := CreateSession(42)
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty session token")
	}

	userID, valid, err := ValidateSession(token)
	if err != nil {
		t.Fatalf("ValidateSession failed: %v", err)
	}
	if !valid || userID != 42 {
		t.Fatalf("ValidateSession = (%d, %v), want (42, true)", userID, valid)
	}

	if err := InvalidateSession(token); err != nil {
		t.Fatalf("InvalidateSession failed: %v", err)
	}

	_, valid, _ = ValidateSession(token)
	if valid {
		t.Fatal("session should be invalid after sign-out")
	}
}

func TestValidateSessionEmptyToken(t *testing.T) {
	setupTestRedis(t)

	_, valid, err := ValidateSession("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if valid {
		t.Fatal("empty token must never validate")
	}
}

func TestCreateSessionInvalidatesPrevious(t *testing.T) {
	setupTestRedis(t)

	first, err := CreateSession(7)
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	second, err := CreateSession(7)
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	if _, valid, _ := ValidateSession(first); valid {
		t.Fatal("old session should be invalidated by a new login")
	}
	if _, valid, _ := ValidateSession(second); !valid {
		t.Fatal("new session should be valid")
	}
}
