package ports

import (
	"context"

	"github.com/Cayson-Choi/caysontarot/internal/domain"
)

// DeckStore provides access to tarot decks.
type DeckStore interface {
	GetDeck(ctx context.Context, deckID string) (domain.Deck, error)
}
