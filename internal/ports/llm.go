package ports

import (
	"context"

	"github.com/Cayson-Choi/caysontarot/internal/domain"
)

// Completer is the single capability the core needs from the model provider:
// send an ordered message sequence, get text back. Implementations wrap
// upstream failures in domain.ErrService; the core never retries.
type Completer interface {
	Complete(ctx context.Context, model string, messages []domain.Message, maxTokens int, temperature float64) (string, error)
}
