package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Cayson-Choi/caysontarot/internal/domain"
	"github.com/Cayson-Choi/caysontarot/internal/ports"
	"github.com/Cayson-Choi/caysontarot/internal/prompt"
	"github.com/Cayson-Choi/caysontarot/internal/sanitize"
	"github.com/Cayson-Choi/caysontarot/internal/tarot"
)

// Per-call budgets, matching the source deployment.
const (
	readingMaxTokens = 1500
	chatMaxTokens    = 800
	temperature      = 0.7
)

// ReadingRequest is the application-level input for an initial reading.
type ReadingRequest struct {
	Cards       []domain.DrawnCard
	SpreadLabel string
	Question    string
	Language    domain.Language
}

// ReadingResponse is the sanitized interpretation.
type ReadingResponse struct {
	Text      string
	Model     string
	LatencyMS int64
}

// ChatRequest is a follow-up turn. Messages is the caller-accumulated
// transcript with the new user message already appended; the service stores
// nothing between turns.
type ChatRequest struct {
	Cards        []domain.DrawnCard
	SpreadLabel  string
	Question     string
	PriorReading string
	Messages     []domain.Message
	Language     domain.Language
}

// ChatResponse is the sanitized plain-prose reply.
type ChatResponse struct {
	Reply     string
	Model     string
	LatencyMS int64
}

// DrawRequest draws a hand from a deck for a named spread.
type DrawRequest struct {
	DeckID        string
	SpreadID      string
	Count         int
	AllowReversed bool
	Language      domain.Language
}

// DrawResponse is the drawn hand with its spread definition.
type DrawResponse struct {
	Spread domain.SpreadDef
	Cards  []domain.DrawnCard
}

// Options are the service-level policy knobs.
type Options struct {
	Model            string
	IncludeReference bool
}

// TarotService orchestrates draw, prompt rendering, the model call, and
// output sanitization. Stateless per request; the knowledge store is the
// only shared resource and is read-only.
type TarotService struct {
	decks   ports.DeckStore
	llm     ports.Completer
	store   *tarot.Store
	prompts *prompt.Engine
	rng     domain.RNG
	opts    Options
}

func NewTarotService(decks ports.DeckStore, llm ports.Completer, store *tarot.Store, prompts *prompt.Engine, rng domain.RNG, opts Options) *TarotService {
	return &TarotService{
		decks:   decks,
		llm:     llm,
		store:   store,
		prompts: prompts,
		rng:     rng,
		opts:    opts,
	}
}

// Interpret renders the reading prompts, invokes the model once, and returns
// the sanitized text. Validation happens before any network call.
func (s *TarotService) Interpret(ctx context.Context, req ReadingRequest) (ReadingResponse, error) {
	if len(req.Cards) == 0 {
		return ReadingResponse{}, fmt.Errorf("%w: cards are required", domain.ErrValidation)
	}

	reference := ""
	if s.opts.IncludeReference {
		reference = s.store.BuildCardReference(req.Cards)
	}

	system, user := s.prompts.Reading(prompt.ReadingInput{
		Cards:       req.Cards,
		SpreadLabel: req.SpreadLabel,
		Question:    req.Question,
		Language:    req.Language,
		Reference:   reference,
	})
	messages := []domain.Message{
		{Role: domain.RoleSystem, Content: system},
		{Role: domain.RoleUser, Content: user},
	}

	start := time.Now()
	text, err := s.llm.Complete(ctx, s.opts.Model, messages, readingMaxTokens, temperature)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		return ReadingResponse{}, fmt.Errorf("interpret: %w", err)
	}

	return ReadingResponse{
		Text:      sanitize.Clean(text, sanitize.ChannelReading),
		Model:     s.opts.Model,
		LatencyMS: latency,
	}, nil
}

// Chat replays the caller's transcript after the follow-up system prompt and
// returns the sanitized plain-prose reply.
func (s *TarotService) Chat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	if len(req.Messages) == 0 {
		return ChatResponse{}, fmt.Errorf("%w: messages are required", domain.ErrValidation)
	}

	messages := s.prompts.Chat(prompt.ChatInput{
		Cards:        req.Cards,
		SpreadLabel:  req.SpreadLabel,
		Question:     req.Question,
		PriorReading: req.PriorReading,
		History:      req.Messages,
		Language:     req.Language,
	})

	start := time.Now()
	text, err := s.llm.Complete(ctx, s.opts.Model, messages, chatMaxTokens, temperature)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		return ChatResponse{}, fmt.Errorf("chat: %w", err)
	}

	return ChatResponse{
		Reply:     sanitize.Clean(text, sanitize.ChannelChat),
		Model:     s.opts.Model,
		LatencyMS: latency,
	}, nil
}

// Draw picks a hand from the deck for the requested spread. Fixed spreads
// dictate the card count; the free layout uses the requested count.
func (s *TarotService) Draw(ctx context.Context, req DrawRequest) (DrawResponse, error) {
	deckID := req.DeckID
	if deckID == "" {
		deckID = "rider_waite"
	}
	deck, err := s.decks.GetDeck(ctx, deckID)
	if err != nil {
		return DrawResponse{}, fmt.Errorf("get deck: %w", err)
	}

	spreadID := req.SpreadID
	if spreadID == "" {
		spreadID = "free"
	}
	def, err := domain.GetSpread(spreadID)
	if err != nil {
		return DrawResponse{}, fmt.Errorf("get spread: %w", err)
	}

	count := def.Count
	if count == 0 {
		count = req.Count
	}
	positions := def.Positions(req.Language, count)

	cards, err := domain.Draw(deck, count, positions, req.AllowReversed, s.rng)
	if err != nil {
		return DrawResponse{}, fmt.Errorf("draw: %w", err)
	}

	return DrawResponse{Spread: def, Cards: cards}, nil
}
