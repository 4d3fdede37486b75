// Package ai holds the Gemini-backed model client used for chat,
// report generation and guardianship guidance.
package ai

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/parentadvocate/advocate-backend/internal/models"
	"github.com/parentadvocate/advocate-backend/internal/services"
)

type GeminiProvider struct {
	client    *genai.Client
	modelName string
}

func NewGeminiProvider(ctx context.Context, apiKey, modelName string) (*GeminiProvider, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}
	return &GeminiProvider{client: cl, modelName: modelName}, nil
}

func (g *GeminiProvider) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// Generate runs one chat turn. Stored assistant turns map to the "model"
// role on the wire.
func (g *GeminiProvider) Generate(ctx context.Context, system string, history []models.ChatMessage, userMessage string) (string, error) {
	m := g.client.GenerativeModel(g.modelName)
	if system != "" {
		m.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(system)},
		}
	}

	session := m.StartChat()
	session.History = make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		role := "user"
		if msg.Role == models.ChatRoleAssistant {
			role = "model"
		}
		session.History = append(session.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Message)},
		})
	}

	resp, err := session.SendMessage(ctx, genai.Text(userMessage))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if t, ok := p.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String(), nil
}

var _ services.Provider = (*GeminiProvider)(nil)
