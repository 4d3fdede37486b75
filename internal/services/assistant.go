package services

import (
	"context"
	"fmt"
	"time"

	"github.com/parentadvocate/advocate-backend/internal/models"
)

// Provider generates one assistant reply given the system instruction, the
// prior conversation turns and the new user message.
type Provider interface {
	Generate(ctx context.Context, system string, history []models.ChatMessage, userMessage string) (string, error)
}

// historyWindow caps how many prior turns are sent for context.
const historyWindow = 10

// Assistant wraps a Provider with the conversation policy: system prompt,
// history window and graceful degradation when the model is unreachable.
type Assistant struct {
	provider Provider
	timeout  time.Duration
}

func NewAssistant(provider Provider, timeout time.Duration) *Assistant {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Assistant{provider: provider, timeout: timeout}
}

// Reply asks the provider for a response. A provider failure never surfaces
// as an error: the caller gets an in-band "Error connecting to AI" message so
// the conversation (and everything persisted before it) stays intact.
func (a *Assistant) Reply(ctx context.Context, history []models.ChatMessage, userMessage string) string {
	if a == nil || a.provider == nil {
		return "Error connecting to AI: assistant is not configured"
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	reply, err := a.provider.Generate(ctx, AssistantSystemPrompt, trimHistory(history), userMessage)
	if err != nil {
		return fmt.Sprintf("Error connecting to AI: %v", err)
	}
	return reply
}

func trimHistory(history []models.ChatMessage) []models.ChatMessage {
	if len(history) <= historyWindow {
		return history
	}
	return history[len(history)-historyWindow:]
}
