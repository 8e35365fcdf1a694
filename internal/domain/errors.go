package domain

import "errors"

var (
	// ErrValidation marks missing or empty required input (cards, messages).
	ErrValidation = errors.New("invalid request")
	// ErrConfiguration marks absent or malformed deployment configuration,
	// detected before any network call.
	ErrConfiguration = errors.New("configuration error")
	// ErrService marks an upstream model call that did not complete
	// successfully. Never retried by the core.
	ErrService = errors.New("upstream LLM failure")
	// ErrInternal marks an unexpected failure during prompt construction
	// or static-data parsing.
	ErrInternal = errors.New("internal error")

	ErrDeckNotFound     = errors.New("deck not found")
	ErrSpreadNotFound   = errors.New("spread not found")
	ErrInvalidCount     = errors.New("count must be between 1 and 10")
	ErrCountExceedsDeck = errors.New("count exceeds number of cards in deck")
)
