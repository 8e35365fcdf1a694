package http

import "github.com/Cayson-Choi/caysontarot/internal/domain"

// ReadingRequest is the JSON body of POST /v1/reading.
type ReadingRequest struct {
	Cards    []CardDTO `json:"cards"`
	Spread   string    `json:"spread"`
	Question string    `json:"question"`
	Lang     string    `json:"lang"`
}

// ChatRequest is the JSON body of POST /v1/chat. Messages is the full
// transcript with the new user message already appended by the caller.
type ChatRequest struct {
	Cards    []CardDTO        `json:"cards"`
	Spread   string           `json:"spread"`
	Question string           `json:"question"`
	Reading  string           `json:"reading"`
	Messages []domain.Message `json:"messages"`
	Lang     string           `json:"lang"`
}

// DrawRequest is the JSON body of POST /v1/draw.
type DrawRequest struct {
	Deck          string `json:"deck"`
	Spread        string `json:"spread"`
	Count         int    `json:"count"`
	AllowReversed bool   `json:"allow_reversed"`
	Lang          string `json:"lang"`
}

// CardDTO is a drawn card as exchanged with the UI.
type CardDTO struct {
	NameEn   string `json:"name_en"`
	NameKo   string `json:"name_ko"`
	Reversed bool   `json:"reversed"`
	Position string `json:"position,omitempty"`
}

// ReadingResponse is the JSON shape returned by POST /v1/reading.
type ReadingResponse struct {
	Reading string   `json:"reading"`
	Meta    MetaResp `json:"meta"`
}

// ChatResponse is the JSON shape returned by POST /v1/chat.
type ChatResponse struct {
	Reply string   `json:"reply"`
	Meta  MetaResp `json:"meta"`
}

// DrawResponse is the JSON shape returned by POST /v1/draw.
type DrawResponse struct {
	Spread SpreadResp         `json:"spread"`
	Cards  []domain.DrawnCard `json:"cards"`
}

type SpreadResp struct {
	ID     string `json:"id"`
	NameEn string `json:"name_en"`
	NameKo string `json:"name_ko"`
	Count  int    `json:"count"`
}

type MetaResp struct {
	Model     string `json:"model"`
	RequestID string `json:"request_id"`
	LatencyMS int64  `json:"latency_ms"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func toDrawnCards(dtos []CardDTO) []domain.DrawnCard {
	cards := make([]domain.DrawnCard, len(dtos))
	for i, d := range dtos {
		cards[i] = domain.DrawnCard{
			Card:     domain.Card{NameEn: d.NameEn, NameKo: d.NameKo},
			Reversed: d.Reversed,
			Position: d.Position,
		}
	}
	return cards
}
