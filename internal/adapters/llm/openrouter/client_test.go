package openrouter_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Cayson-Choi/caysontarot/internal/adapters/llm/openrouter"
	"github.com/Cayson-Choi/caysontarot/internal/domain"
)

func testMessages() []domain.Message {
	return []domain.Message{
		{Role: domain.RoleSystem, Content: "You are a tarot reader."},
		{Role: domain.RoleUser, Content: "Three Card | What lies ahead?"},
	}
}

func TestComplete_Success(t *testing.T) {
	var gotReq map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify method and path.
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/chat/completions" {
			t.Errorf("expected /chat/completions, got %s", r.URL.Path)
		}
		// Verify headers.
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("bad auth header: %s", r.Header.Get("Authorization"))
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("bad content-type: %s", r.Header.Get("Content-Type"))
		}

		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotReq)

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "  A thoughtful reading.  "}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := openrouter.NewClient(srv.Client(), "test-key", srv.URL, nil, slog.Default())

	text, err := client.Complete(context.Background(), "test-model", testMessages(), 1500, 0.7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "A thoughtful reading." {
		t.Errorf("unexpected text: %q", text)
	}

	if gotReq["model"] != "test-model" {
		t.Errorf("request model: %v", gotReq["model"])
	}
	if gotReq["max_tokens"] != float64(1500) {
		t.Errorf("request max_tokens: %v", gotReq["max_tokens"])
	}
	if gotReq["temperature"] != 0.7 {
		t.Errorf("request temperature: %v", gotReq["temperature"])
	}
	msgs, _ := gotReq["messages"].([]any)
	if len(msgs) != 2 {
		t.Errorf("expected 2 messages, got %d", len(msgs))
	}
}

func TestComplete_FallbackModel(t *testing.T) {
	var models []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &req)
		model, _ := req["model"].(string)
		models = append(models, model)

		if model == "primary" {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"rate limited"}`))
			return
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "fallback reading"}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := openrouter.NewClient(srv.Client(), "key", srv.URL, []string{"backup"}, slog.Default())

	text, err := client.Complete(context.Background(), "primary", testMessages(), 800, 0.7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "fallback reading" {
		t.Errorf("unexpected text: %q", text)
	}
	if len(models) != 2 || models[0] != "primary" || models[1] != "backup" {
		t.Errorf("unexpected model sequence: %v", models)
	}
}

func TestComplete_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"boom"}`))
	}))
	defer srv.Close()

	client := openrouter.NewClient(srv.Client(), "key", srv.URL, nil, slog.Default())

	_, err := client.Complete(context.Background(), "model", testMessages(), 800, 0.7)
	if !errors.Is(err, domain.ErrService) {
		t.Fatalf("expected ErrService, got %v", err)
	}
}

func TestComplete_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := openrouter.NewClient(srv.Client(), "key", srv.URL, nil, slog.Default())

	_, err := client.Complete(context.Background(), "model", testMessages(), 800, 0.7)
	if !errors.Is(err, domain.ErrService) {
		t.Fatalf("expected ErrService, got %v", err)
	}
}
