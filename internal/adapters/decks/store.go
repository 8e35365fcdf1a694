package decks

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/Cayson-Choi/caysontarot/internal/domain"
)

//go:embed data/*.json
var deckFS embed.FS

// registry maps deck IDs to their JSON filenames inside data/.
var registry = map[string]struct {
	filename string
	name     string
}{
	"rider_waite": {"data/rider_waite.json", "Rider-Waite"},
}

// EmbeddedStore serves decks parsed from embedded JSON files. Construction
// is eager so a corrupt deck file fails at startup, not mid-request.
type EmbeddedStore struct {
	decks map[string]domain.Deck
}

func NewEmbeddedStore() (*EmbeddedStore, error) {
	s := &EmbeddedStore{decks: make(map[string]domain.Deck, len(registry))}
	for id, entry := range registry {
		raw, err := deckFS.ReadFile(entry.filename)
		if err != nil {
			return nil, fmt.Errorf("read embedded deck %s: %w", id, err)
		}
		var cards []domain.Card
		if err := json.Unmarshal(raw, &cards); err != nil {
			return nil, fmt.Errorf("parse embedded deck %s: %w", id, err)
		}
		if len(cards) == 0 {
			return nil, fmt.Errorf("embedded deck %s is empty", id)
		}
		s.decks[id] = domain.Deck{
			ID:    id,
			Name:  entry.name,
			Cards: cards,
		}
	}
	return s, nil
}

func (s *EmbeddedStore) GetDeck(_ context.Context, deckID string) (domain.Deck, error) {
	deck, ok := s.decks[deckID]
	if !ok {
		return domain.Deck{}, domain.ErrDeckNotFound
	}
	return deck, nil
}
