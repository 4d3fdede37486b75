package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/parentadvocate/advocate-backend/internal/models"
)

type fakeProvider struct {
	reply       string
	err         error
	gotSystem   string
	gotHistory  []models.ChatMessage
	gotMessage  string
	invocations int
}

func (f *fakeProvider) Generate(ctx context.Context, system string, history []models.ChatMessage, userMessage string) (string, error) {
	f.invocations++
	f.gotSystem = system
	f.gotHistory = history
	f.gotMessage = userMessage
	return f.reply, f.err
}

func TestAssistantReply(t *testing.T) {
	fake := &fakeProvider{reply: "Keep a written record of every contact."}
	assistant := NewAssistant(fake, time.Minute)

	got := assistant.Reply(context.Background(), nil, "How do I log a missed visit?")
	if got != fake.reply {
		t.Fatalf("Reply = %q, want %q", got, fake.reply)
	}
	if fake.gotSystem != AssistantSystemPrompt {
		t.Fatal("system prompt was not passed to the provider")
	}
	if fake.gotMessage != "How do I log a missed visit?" {
		t.Fatalf("user message = %q", fake.gotMessage)
	}
}

func TestAssistantReplyProviderFailure(t *testing.T) {
	fake := &fakeProvider{err: errors.New("connection refused")}
	assistant := NewAssistant(fake, time.Minute)

	got := assistant.Reply(context.Background(), nil, "hello")
	if !strings.HasPrefix(got, "Error connecting to AI: ") {
		t.Fatalf("expected in-band error message, got %q", got)
	}
	if !strings.Contains(got, "connection refused") {
		t.Fatalf("error detail missing from %q", got)
	}
}

func TestAssistantReplyNoProvider(t *testing.T) {
	assistant := NewAssistant(nil, time.Minute)

	got := assistant.Reply(context.Background(), nil, "hello")
	if !strings.HasPrefix(got, "Error connecting to AI: ") {
		t.Fatalf("expected in-band error message, got %q", got)
	}
}

func TestAssistantReplyTrimsHistory(t *testing.T) {
	history := make([]models.ChatMessage, 14)
	for i := range history {
		history[i] = models.ChatMessage{ID: int64(i + 1), Role: models.ChatRoleUser, Message: "m"}
	}

	fake := &fakeProvider{reply: "ok"}
	assistant := NewAssistant(fake, time.Minute)
	assistant.Reply(context.Background(), history, "latest")

	if len(fake.gotHistory) != historyWindow {
		t.Fatalf("provider saw %d turns, want %d", len(fake.gotHistory), historyWindow)
	}
	if fake.gotHistory[0].ID != 5 {
		t.Fatalf("history window should keep the most recent turns, first ID = %d", fake.gotHistory[0].ID)
	}
}
