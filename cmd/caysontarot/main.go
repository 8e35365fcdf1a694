package main

import (
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/Cayson-Choi/caysontarot/internal/adapters/decks"
	"github.com/Cayson-Choi/caysontarot/internal/adapters/llm/openrouter"
	"github.com/Cayson-Choi/caysontarot/internal/app"
	"github.com/Cayson-Choi/caysontarot/internal/config"
	"github.com/Cayson-Choi/caysontarot/internal/prompt"
	"github.com/Cayson-Choi/caysontarot/internal/tarot"
)

// stdRNG delegates to math/rand/v2 (auto-seeded).
type stdRNG struct{}

func (stdRNG) Intn(n int) int { return rand.IntN(n) }

func main() {
	root := &cobra.Command{
		Use:   "caysontarot",
		Short: "AI tarot reading service",
	}
	root.AddCommand(serveCmd())
	root.AddCommand(readCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads config and wires the full service graph. Both subcommands
// start here; configuration and static-data failures abort before any
// network call.
func setup() (config.Config, *slog.Logger, *app.TarotService, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	deckStore, err := decks.NewEmbeddedStore()
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	store, err := tarot.NewStore(logger)
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	llmClient := openrouter.NewClient(
		&http.Client{Timeout: cfg.LLMTimeout},
		cfg.OpenRouterAPIKey,
		cfg.OpenRouterBaseURL,
		cfg.LLMFallbackModels,
		logger,
	)

	engine := prompt.NewEngine(prompt.Options{
		Style:        prompt.Style(cfg.Prompts.Style),
		FormalKorean: cfg.Prompts.FormalRegister,
	})

	svc := app.NewTarotService(deckStore, llmClient, store, engine, stdRNG{}, app.Options{
		Model:            cfg.LLMModel,
		IncludeReference: cfg.IncludeReference(),
	})
	return cfg, logger, svc, nil
}
