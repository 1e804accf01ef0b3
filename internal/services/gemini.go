package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"gremaster-backend/internal/models"
)

var errEmptyReply = errors.New("Gemini returned an empty response")

// chatSender submits one live message on top of a prepared history.
type chatSender interface {
	send(ctx context.Context, history []*genai.Content, msg genai.Part) (*genai.GenerateContentResponse, error)
}

// modelSender opens a new chat session per call; the model itself is shared
// and never mutated after construction.
type modelSender struct {
	model *genai.GenerativeModel
}

func (m modelSender) send(ctx context.Context, history []*genai.Content, msg genai.Part) (*genai.GenerateContentResponse, error) {
	cs := m.model.StartChat()
	cs.History = history
	return cs.SendMessage(ctx, msg)
}

type GeminiService struct {
	client *genai.Client
	sender chatSender
}

func NewGeminiService(apiKey, modelName string) (*GeminiService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiService{
		client: client,
		sender: modelSender{model: client.GenerativeModel(modelName)},
	}, nil
}

func (s *GeminiService) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

// Reply sends userInput to the model behind the GREMaster persona and returns
// the text of its answer. Errors from the API are returned unchanged.
func (s *GeminiService) Reply(ctx context.Context, userInput string) (string, error) {
	conv := BuildConversation(userInput)
	last := len(conv) - 1

	resp, err := s.sender.send(ctx, toContents(conv[:last]), genai.Text(conv[last].Content))
	if err != nil {
		return "", err
	}

	text := extractText(resp)
	if strings.TrimSpace(text) == "" {
		return "", errEmptyReply
	}
	return text, nil
}

// Helper functions

func toContents(msgs []models.ChatMessage) []*genai.Content {
	out := make([]*genai.Content, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, &genai.Content{
			Role:  m.Role,
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}
	return out
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
