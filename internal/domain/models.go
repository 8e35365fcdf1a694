package domain

// Language selects the output language for prompts and readings.
type Language string

const (
	LangEN Language = "en"
	LangKO Language = "ko"
)

// ParseLanguage maps a raw language code to a supported Language.
// Anything other than "ko" falls back to English.
func ParseLanguage(raw string) Language {
	if raw == string(LangKO) {
		return LangKO
	}
	return LangEN
}

// Message is a single chat-completion turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// Card represents a single tarot card in a deck.
type Card struct {
	ID     string `json:"id"`
	NameEn string `json:"name_en"`
	NameKo string `json:"name_ko"`
	Arcana string `json:"arcana,omitempty"`
}

// DrawnCard is a card that has been drawn into a spread position.
// Position is a semantic label ("Past", "현재 상황", ...); callers may leave
// it empty, in which case prompts fall back to an ordinal "Card N" label.
type DrawnCard struct {
	Card
	Reversed bool   `json:"reversed"`
	Position string `json:"position,omitempty"`
}

// Deck is a collection of tarot cards.
type Deck struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Cards []Card `json:"cards"`
}

// HasReversed reports whether any card in the hand is reversed.
func HasReversed(cards []DrawnCard) bool {
	for _, c := range cards {
		if c.Reversed {
			return true
		}
	}
	return false
}
