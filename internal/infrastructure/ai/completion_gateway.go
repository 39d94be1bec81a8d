package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/usecase/interfaces"
)

var ErrMissingAPIKey = errors.New("missing AI_GATEWAY_API_KEY")

const (
	defaultGatewayURL = "https://ai.gateway.lovable.dev/v1/chat/completions"
	defaultModel      = "google/gemini-3-flash-preview"

	// Low temperature and a bounded reply: the assistant should answer
	// literally from the prompt data, not improvise.
	temperature = 0.3
	maxTokens   = 500
)

// CompletionGateway calls the external chat-completion API. One attempt per
// question, no retries: the chat usecase falls back to a templated summary
// when this fails.
type CompletionGateway struct {
	httpClient *http.Client
	url        string
	model      string
	apiKey     string
	mockMode   bool
}

var _ interfaces.ICompletionGateway = (*CompletionGateway)(nil)

func NewCompletionGateway(apiKey string) (*CompletionGateway, error) {
	if isCompletionGatewayMockEnabled() {
		log.Printf("[chat][gateway] mock mode enabled")
		return &CompletionGateway{mockMode: true}, nil
	}

	if apiKey == "" {
		log.Printf("[chat][gateway] missing AI_GATEWAY_API_KEY")
		return nil, ErrMissingAPIKey
	}

	return &CompletionGateway{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		url:        getenvDefault("AI_GATEWAY_URL", defaultGatewayURL),
		model:      getenvDefault("AI_MODEL", defaultModel),
		apiKey:     apiKey,
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (g *CompletionGateway) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	if g.mockMode {
		log.Printf("[chat][gateway] mock completion prompt_len=%d", len(systemPrompt))
		return "Resposta simulada: " + userMessage, nil
	}

	payload, err := json.Marshal(completionRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[chat][gateway] completion API status=%d", resp.StatusCode)
		return "", fmt.Errorf("completion API returned status %d", resp.StatusCode)
	}

	var out completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", nil
	}
	return out.Choices[0].Message.Content, nil
}

func isCompletionGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("AI_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
