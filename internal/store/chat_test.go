package store

import (
	"testing"

	"github.com/parentadvocate/advocate-backend/internal/models"
)

func TestReverseMessages(t *testing.T) {
	msgs := []models.ChatMessage{
		{ID: 3, Message: "C"},
		{ID: 2, Message: "B"},
		{ID: 1, Message: "A"},
	}

	reverseMessages(msgs)

	for i, want := range []string{"A", "B", "C"} {
		if msgs[i].Message != want {
			t.Fatalf("msgs[%d] = %q, want %q", i, msgs[i].Message, want)
		}
	}
}

func TestReverseMessagesEmpty(t *testing.T) {
	reverseMessages(nil)
	reverseMessages([]models.ChatMessage{{ID: 1, Message: "only"}})
}
