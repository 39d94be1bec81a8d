package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testGateway(url string) *CompletionGateway {
	return &CompletionGateway{
		httpClient: &http.Client{Timeout: time.Second},
		url:        url,
		model:      defaultModel,
		apiKey:     "test-key",
	}
}

func TestCompletionGateway_Complete(t *testing.T) {
	t.Run("sends the chat payload and returns the reply", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
				t.Errorf("unexpected authorization header %q", got)
			}

			var req completionRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("invalid request body: %v", err)
			}
			if req.Model != defaultModel || req.MaxTokens != 500 || req.Temperature != 0.3 {
				t.Errorf("unexpected request %+v", req)
			}
			if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
				t.Errorf("unexpected messages %+v", req.Messages)
			}

			json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"content": "A OS está Em Execução."}},
				},
			})
		}))
		defer srv.Close()

		got, err := testGateway(srv.URL).Complete(context.Background(), "instruções", "qual o status?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "A OS está Em Execução." {
			t.Fatalf("unexpected reply %q", got)
		}
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		if _, err := testGateway(srv.URL).Complete(context.Background(), "instruções", "pergunta"); err == nil {
			t.Fatalf("expected error on 429")
		}
	})

	t.Run("empty choices yields an empty reply", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		}))
		defer srv.Close()

		got, err := testGateway(srv.URL).Complete(context.Background(), "instruções", "pergunta")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "" {
			t.Fatalf("expected empty reply, got %q", got)
		}
	})

	t.Run("mock mode answers without the network", func(t *testing.T) {
		g := &CompletionGateway{mockMode: true}
		got, err := g.Complete(context.Background(), "instruções", "qual o status?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "Resposta simulada: qual o status?" {
			t.Fatalf("unexpected reply %q", got)
		}
	})
}

func TestNewCompletionGateway(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		if _, err := NewCompletionGateway(""); err != ErrMissingAPIKey {
			t.Fatalf("expected ErrMissingAPIKey, got %v", err)
		}
	})

	t.Run("mock mode skips the key requirement", func(t *testing.T) {
		t.Setenv("AI_GATEWAY_MOCK", "true")
		g, err := NewCompletionGateway("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !g.mockMode {
			t.Fatalf("expected mock mode")
		}
	})
}
