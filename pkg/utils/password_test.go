package utils

import (
	"strings"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("unexpected hash format: %s", hash)
	}

	ok, err := VerifyPassword("correct horse battery staple", hash)
	if err != nil {
		t.Fatalf("verify password: %v", err)
	}
	if !ok {
		t.Fatalf("correct password should verify")
	}
}

func TestVerifyPasswordSingleCharChangeFails(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	ok, err := VerifyPassword("hunter23", hash)
	if err != nil {
		t.Fatalf("verify password: %v", err)
	}
	if ok {
		t.Fatalf("one-character change must fail verification")
	}
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	h1, err := HashPassword("same password")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	h2, err := HashPassword("same password")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("hashes of the same password must differ (random salt)")
	}
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	if _, err := VerifyPassword("whatever", "5f4dcc3b5aa765d61d8327deb882cf99"); err == nil {
		t.Fatalf("expected error for non-argon2id hash")
	}
}
