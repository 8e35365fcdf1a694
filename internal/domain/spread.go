package domain

import (
	"fmt"
	"strings"
)

// SpreadCategory drives the structural rules of a reading prompt.
// It is derived per-call from the spread's display label, never stored.
type SpreadCategory string

const (
	CategoryGeneral  SpreadCategory = "general"
	CategoryYesNo    SpreadCategory = "yes_no"
	CategoryEitherOr SpreadCategory = "either_or"
)

// DetectSpreadCategory matches a spread display label (English or Korean)
// against the fixed literal set. Unrecognized labels are General.
func DetectSpreadCategory(label string) SpreadCategory {
	switch strings.TrimSpace(label) {
	case "Yes / No", "예스/노":
		return CategoryYesNo
	case "Either/Or", "양자택일":
		return CategoryEitherOr
	default:
		return CategoryGeneral
	}
}

// SpreadDef is a named layout of card positions with bilingual labels.
type SpreadDef struct {
	ID          string   `json:"id"`
	NameEn      string   `json:"name_en"`
	NameKo      string   `json:"name_ko"`
	Count       int      `json:"count"`
	PositionsEn []string `json:"positions_en"`
	PositionsKo []string `json:"positions_ko"`
}

// Label returns the display label for a language.
func (s SpreadDef) Label(lang Language) string {
	if lang == LangKO {
		return s.NameKo
	}
	return s.NameEn
}

// Positions returns the position labels for a language, generating ordinal
// labels for free-layout spreads with no fixed positions.
func (s SpreadDef) Positions(lang Language, count int) []string {
	fixed := s.PositionsEn
	if lang == LangKO {
		fixed = s.PositionsKo
	}
	if len(fixed) >= count {
		return fixed[:count]
	}
	out := make([]string, count)
	copy(out, fixed)
	for i := len(fixed); i < count; i++ {
		if lang == LangKO {
			out[i] = fmt.Sprintf("카드 %d", i+1)
		} else {
			out[i] = fmt.Sprintf("Card %d", i+1)
		}
	}
	return out
}

// spreadCatalog lists the layouts the service knows about.
var spreadCatalog = []SpreadDef{
	{
		ID: "one_card", NameEn: "One Card", NameKo: "원 카드", Count: 1,
		PositionsEn: []string{"Today's Message"},
		PositionsKo: []string{"오늘의 메시지"},
	},
	{
		ID: "three_card", NameEn: "Three Card", NameKo: "쓰리 카드", Count: 3,
		PositionsEn: []string{"Past", "Present", "Future"},
		PositionsKo: []string{"과거", "현재", "미래"},
	},
	{
		ID: "yes_no", NameEn: "Yes / No", NameKo: "예스/노", Count: 1,
		PositionsEn: []string{"Answer"},
		PositionsKo: []string{"답"},
	},
	{
		ID: "either_or", NameEn: "Either/Or", NameKo: "양자택일", Count: 2,
		PositionsEn: []string{"Option A", "Option B"},
		PositionsKo: []string{"선택 A", "선택 B"},
	},
	{
		ID: "relationship", NameEn: "Relationship", NameKo: "관계 스프레드", Count: 7,
		PositionsEn: []string{
			"My Current State", "Their Current State", "My Feelings",
			"Their Feelings", "Obstacles", "Potential", "Outcome",
		},
		PositionsKo: []string{
			"나의 현재 상태", "상대방의 현재 상태", "나의 감정",
			"상대방의 감정", "관계의 장애물", "관계의 잠재력", "최종 결과",
		},
	},
	{
		ID: "celtic_cross", NameEn: "Celtic Cross", NameKo: "켈틱 크로스", Count: 10,
		PositionsEn: []string{
			"Present Situation", "Challenge", "Past Influence", "Near Future",
			"Goal", "Subconscious", "Advice", "External Influence",
			"Hopes and Fears", "Outcome",
		},
		PositionsKo: []string{
			"현재 상황", "장애물/도전", "과거의 영향", "가까운 미래",
			"목표/이상", "잠재의식", "조언", "외부 영향",
			"희망과 두려움", "최종 결과",
		},
	},
	{
		ID: "free", NameEn: "Free Layout", NameKo: "자유 배치", Count: 0,
	},
}

// Spreads returns the full spread catalog in display order.
func Spreads() []SpreadDef {
	out := make([]SpreadDef, len(spreadCatalog))
	copy(out, spreadCatalog)
	return out
}

// GetSpread looks a spread up by ID.
func GetSpread(id string) (SpreadDef, error) {
	for _, s := range spreadCatalog {
		if s.ID == id {
			return s, nil
		}
	}
	return SpreadDef{}, ErrSpreadNotFound
}

// Draw picks n unique cards from deck using the provided RNG and assigns
// position labels. Reversal is 50/50 per card when allowReversed is set.
func Draw(deck Deck, n int, positions []string, allowReversed bool, rng RNG) ([]DrawnCard, error) {
	if n < 1 || n > 10 {
		return nil, ErrInvalidCount
	}
	if n > len(deck.Cards) {
		return nil, ErrCountExceedsDeck
	}

	// Fisher-Yates partial shuffle: only need first n elements.
	indices := make([]int, len(deck.Cards))
	for i := range indices {
		indices[i] = i
	}
	for i := len(indices) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		indices[i], indices[j] = indices[j], indices[i]
	}

	cards := make([]DrawnCard, n)
	for i := range n {
		reversed := allowReversed && rng.Intn(2) == 1
		pos := ""
		if i < len(positions) {
			pos = positions[i]
		}
		cards[i] = DrawnCard{
			Card:     deck.Cards[indices[i]],
			Reversed: reversed,
			Position: pos,
		}
	}
	return cards, nil
}
