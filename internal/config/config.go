package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Cayson-Choi/caysontarot/internal/domain"
)

// Prompts holds the per-deployment prompt policy knobs. These live in the
// optional YAML file because they are deployment choices, not secrets.
type Prompts struct {
	// Style is "markdown" or "plain"; it fixes the formatting contract of
	// initial readings for this deployment.
	Style string `yaml:"style"`
	// IncludeReference toggles injection of the card-meaning reference
	// block into reading prompts. Defaults to true.
	IncludeReference *bool `yaml:"include_reference"`
	// FormalRegister switches Korean output from 반말 to 존댓말.
	FormalRegister bool `yaml:"formal_register"`
}

type Config struct {
	HTTPAddr          string
	LogLevel          slog.Level
	LLMModel          string
	LLMFallbackModels []string
	OpenRouterAPIKey  string
	OpenRouterBaseURL string
	LLMTimeout        time.Duration
	Prompts           Prompts
}

// fileConfig is the YAML overlay read from CAYSONTAROT_CONFIG.
type fileConfig struct {
	Model          string   `yaml:"model"`
	FallbackModels []string `yaml:"fallback_models"`
	Timeout        string   `yaml:"timeout"`
	Prompts        Prompts  `yaml:"prompts"`
}

// Load reads env vars, overlays the optional YAML policy file, and validates.
// A missing API key or invalid knob is a configuration error surfaced before
// any network call.
func Load() (Config, error) {
	c := Config{
		HTTPAddr:          envOr("HTTP_ADDR", ":8080"),
		LLMModel:          envOr("OPENROUTER_MODEL", "deepseek/deepseek-chat"),
		OpenRouterAPIKey:  os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBaseURL: envOr("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		LLMFallbackModels: parseList(os.Getenv("LLM_FALLBACK_MODELS")),
		LLMTimeout:        60 * time.Second,
		Prompts:           Prompts{Style: "markdown"},
	}

	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: invalid LLM_TIMEOUT %q: %w", domain.ErrConfiguration, v, err)
		}
		c.LLMTimeout = d
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	if path := os.Getenv("CAYSONTAROT_CONFIG"); path != "" {
		if err := c.applyFile(path); err != nil {
			return Config{}, err
		}
	}

	if c.Prompts.Style != "markdown" && c.Prompts.Style != "plain" {
		return Config{}, fmt.Errorf("%w: prompts.style must be markdown or plain, got %q",
			domain.ErrConfiguration, c.Prompts.Style)
	}
	if c.OpenRouterAPIKey == "" {
		return Config{}, fmt.Errorf("%w: OPENROUTER_API_KEY is required", domain.ErrConfiguration)
	}

	return c, nil
}

// IncludeReference resolves the tri-state knob, defaulting to true.
func (c Config) IncludeReference() bool {
	if c.Prompts.IncludeReference == nil {
		return true
	}
	return *c.Prompts.IncludeReference
}

func (c *Config) applyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read config file: %w", domain.ErrConfiguration, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("%w: parse config file: %w", domain.ErrConfiguration, err)
	}

	if fc.Model != "" {
		c.LLMModel = fc.Model
	}
	if len(fc.FallbackModels) > 0 {
		c.LLMFallbackModels = fc.FallbackModels
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("%w: invalid timeout %q: %w", domain.ErrConfiguration, fc.Timeout, err)
		}
		c.LLMTimeout = d
	}
	if fc.Prompts.Style != "" {
		c.Prompts.Style = fc.Prompts.Style
	}
	if fc.Prompts.IncludeReference != nil {
		c.Prompts.IncludeReference = fc.Prompts.IncludeReference
	}
	if fc.Prompts.FormalRegister {
		c.Prompts.FormalRegister = true
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	var items []string
	for _, m := range strings.Split(s, ",") {
		m = strings.TrimSpace(m)
		if m != "" {
			items = append(items, m)
		}
	}
	return items
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: invalid LOG_LEVEL %q", domain.ErrConfiguration, s)
	}
}
