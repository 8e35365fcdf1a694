package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Cayson-Choi/caysontarot/internal/app"
	"github.com/Cayson-Choi/caysontarot/internal/domain"
)

const maxQuestionLen = 500

type Handler struct {
	svc *app.TarotService
}

func NewHandler(svc *app.TarotService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/v1/spreads", h.ListSpreads)
	e.POST("/v1/draw", h.Draw)
	e.POST("/v1/reading", h.Reading)
	e.POST("/v1/chat", h.Chat)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) ListSpreads(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.Spreads())
}

func (h *Handler) Draw(c echo.Context) error {
	var req DrawRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	resp, err := h.svc.Draw(c.Request().Context(), app.DrawRequest{
		DeckID:        req.Deck,
		SpreadID:      req.Spread,
		Count:         req.Count,
		AllowReversed: req.AllowReversed,
		Language:      domain.ParseLanguage(req.Lang),
	})
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, DrawResponse{
		Spread: SpreadResp{
			ID:     resp.Spread.ID,
			NameEn: resp.Spread.NameEn,
			NameKo: resp.Spread.NameKo,
			Count:  len(resp.Cards),
		},
		Cards: resp.Cards,
	})
}

func (h *Handler) Reading(c echo.Context) error {
	var req ReadingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if len(req.Cards) == 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cards are required"})
	}
	if len(req.Question) > maxQuestionLen {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "question must be at most 500 characters"})
	}

	resp, err := h.svc.Interpret(c.Request().Context(), app.ReadingRequest{
		Cards:       toDrawnCards(req.Cards),
		SpreadLabel: req.Spread,
		Question:    req.Question,
		Language:    domain.ParseLanguage(req.Lang),
	})
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, ReadingResponse{
		Reading: resp.Text,
		Meta:    meta(c, resp.Model, resp.LatencyMS),
	})
}

func (h *Handler) Chat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if len(req.Messages) == 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "messages are required"})
	}

	resp, err := h.svc.Chat(c.Request().Context(), app.ChatRequest{
		Cards:        toDrawnCards(req.Cards),
		SpreadLabel:  req.Spread,
		Question:     req.Question,
		PriorReading: req.Reading,
		Messages:     req.Messages,
		Language:     domain.ParseLanguage(req.Lang),
	})
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, ChatResponse{
		Reply: resp.Reply,
		Meta:  meta(c, resp.Model, resp.LatencyMS),
	})
}

func meta(c echo.Context, model string, latencyMS int64) MetaResp {
	requestID, _ := c.Get("request_id").(string)
	return MetaResp{
		Model:     model,
		RequestID: requestID,
		LatencyMS: latencyMS,
	}
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidCount),
		errors.Is(err, domain.ErrCountExceedsDeck):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrDeckNotFound), errors.Is(err, domain.ErrSpreadNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrService):
		slog.Error("upstream LLM failure", "request_id", requestID, "error", err)
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "upstream LLM failure"})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
