package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Cayson-Choi/caysontarot/internal/config"
	"github.com/Cayson-Choi/caysontarot/internal/domain"
)

// clearEnv blanks the optional knobs so ambient shell vars cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_ADDR", "OPENROUTER_MODEL", "OPENROUTER_BASE_URL",
		"LLM_FALLBACK_MODELS", "LLM_TIMEOUT", "LOG_LEVEL", "CAYSONTAROT_CONFIG",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENROUTER_API_KEY", "test-key")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.LLMModel != "deepseek/deepseek-chat" {
		t.Errorf("LLMModel = %q", cfg.LLMModel)
	}
	if cfg.Prompts.Style != "markdown" {
		t.Errorf("Style = %q", cfg.Prompts.Style)
	}
	if !cfg.IncludeReference() {
		t.Error("IncludeReference should default to true")
	}
	if cfg.Prompts.FormalRegister {
		t.Error("FormalRegister should default to false")
	}
}

func TestLoad_MissingAPIKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENROUTER_API_KEY", "")

	_, err := config.Load()
	if !errors.Is(err, domain.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestLoad_FallbackModels(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENROUTER_API_KEY", "test-key")
	t.Setenv("LLM_FALLBACK_MODELS", "model-a, model-b ,,")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.LLMFallbackModels) != 2 || cfg.LLMFallbackModels[0] != "model-a" || cfg.LLMFallbackModels[1] != "model-b" {
		t.Errorf("LLMFallbackModels = %v", cfg.LLMFallbackModels)
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENROUTER_API_KEY", "test-key")
	t.Setenv("LOG_LEVEL", "loud")

	_, err := config.Load()
	if !errors.Is(err, domain.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestLoad_PolicyFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte("model: custom/model\nprompts:\n  style: plain\n  include_reference: false\n  formal_register: true\n")
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("OPENROUTER_API_KEY", "test-key")
	t.Setenv("CAYSONTAROT_CONFIG", path)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LLMModel != "custom/model" {
		t.Errorf("LLMModel = %q", cfg.LLMModel)
	}
	if cfg.Prompts.Style != "plain" {
		t.Errorf("Style = %q", cfg.Prompts.Style)
	}
	if cfg.IncludeReference() {
		t.Error("include_reference: false not applied")
	}
	if !cfg.Prompts.FormalRegister {
		t.Error("formal_register: true not applied")
	}
}

func TestLoad_InvalidStyle(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("prompts:\n  style: fancy\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("OPENROUTER_API_KEY", "test-key")
	t.Setenv("CAYSONTAROT_CONFIG", path)

	_, err := config.Load()
	if !errors.Is(err, domain.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}
