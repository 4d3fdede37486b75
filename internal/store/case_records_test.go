package store

import (
	"errors"
	"testing"
)

func TestBuildCaseUpdate(t *testing.T) {
	t.Run("rejects empty field map", func(t *testing.T) {
		_, _, err := buildCaseUpdate(map[string]string{})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("rejects unknown column", func(t *testing.T) {
		_, _, err := buildCaseUpdate(map[string]string{"password_hash": "x"})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("single column", func(t *testing.T) {
		clause, args, err := buildCaseUpdate(map[string]string{"case_number": "CP-2024-118"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if clause != "case_number = $1" {
			t.Fatalf("unexpected clause: %q", clause)
		}
		if len(args) != 1 || args[0] != "CP-2024-118" {
			t.Fatalf("unexpected args: %v", args)
		}
	})

	t.Run("columns are sorted for deterministic SQL", func(t *testing.T) {
		clause, args, err := buildCaseUpdate(map[string]string{
			"court_date":     "2025-03-10",
			"case_type":      "s31 care order",
			"children_names": "Ava, Noah",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "case_type = $1, children_names = $2, court_date = $3"
		if clause != want {
			t.Fatalf("clause = %q, want %q", clause, want)
		}
		if len(args) != 3 || args[0] != "s31 care order" || args[1] != "Ava, Noah" || args[2] != "2025-03-10" {
			t.Fatalf("unexpected args: %v", args)
		}
	})
}
