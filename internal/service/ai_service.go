package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"literacy_edu_backend/internal/config"
	"net/http"
	"time"
)

// remoteCallTimeout bounds the single chat-completions attempt. There is
// no retry; callers fall through to the heuristic evaluator on failure.
const remoteCallTimeout = 30 * time.Second

// AIService is a thin client for an OpenAI-compatible chat-completions
// endpoint. Constructed once at startup and read-only thereafter.
type AIService struct {
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{Timeout: remoteCallTimeout},
	}
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model    string          `json:"model"`
	Messages []AIChatMessage `json:"messages"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Chat issues one synchronous completion request and returns the raw
// assistant text.
func (s *AIService) Chat(ctx context.Context, prompt string) (string, error) {
	reqBody := ChatCompletionRequest{
		Model: s.config.Model,
		Messages: []AIChatMessage{
			{Role: "user", Content: prompt},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	if len(result.Choices) > 0 {
		return result.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("AI returned no choices")
}
