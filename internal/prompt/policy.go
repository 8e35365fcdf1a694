// Package prompt renders the system and user prompts for initial readings
// and follow-up chat. The policy is composed from orthogonal axes — a
// per-language phrase table, a per-spread-category structural block, and two
// boolean modifiers (reversed-card clause, tone register) — combined by a
// single render function per call purpose.
package prompt

import (
	"fmt"
	"strings"

	"github.com/Cayson-Choi/caysontarot/internal/domain"
)

// Style selects the formatting contract of the initial reading. A deployment
// picks one and keeps it consistent; mixing styles changes the expected
// output shape downstream.
type Style string

const (
	StyleMarkdown Style = "markdown"
	StylePlain    Style = "plain"
)

// Options are the per-deployment policy knobs.
type Options struct {
	Style        Style
	FormalKorean bool
}

// Engine renders prompts according to fixed policy plus deployment options.
type Engine struct {
	opts Options
}

func NewEngine(opts Options) *Engine {
	if opts.Style == "" {
		opts.Style = StyleMarkdown
	}
	return &Engine{opts: opts}
}

// ReadingInput carries everything needed to render an initial reading.
// Reference, when non-empty, is a pre-built card-meaning reference block
// appended to the system prompt.
type ReadingInput struct {
	Cards       []domain.DrawnCard
	SpreadLabel string
	Question    string
	Language    domain.Language
	Reference   string
}

// ChatInput carries the prior reading context plus the caller-accumulated
// transcript for a follow-up turn. History is replayed verbatim after the
// system prompt; the caller appends the new user message before invocation.
type ChatInput struct {
	Cards        []domain.DrawnCard
	SpreadLabel  string
	Question     string
	PriorReading string
	History      []domain.Message
	Language     domain.Language
}

// langPack is the per-language phrase table. Length ceilings use
// target-language-appropriate units: characters for Korean, words for
// English.
type langPack struct {
	name            string
	tone            string
	formalTone      string
	readingLimits   map[domain.SpreadCategory]string
	chatLimit       string
	defaultQuestion string
	ctxHeader       string
	questionLabel   string
	spreadLabel     string
	priorLabel      string
	noPrior         string
	keepContext     string
}

var packs = map[domain.Language]langPack{
	domain.LangEN: {
		name:       "English",
		tone:       "Use a warm, friendly, casual tone as if talking to a close friend.",
		formalTone: "Use a warm, friendly, casual tone as if talking to a close friend.",
		readingLimits: map[domain.SpreadCategory]string{
			domain.CategoryYesNo:    "Keep the entire reading under 150 words.",
			domain.CategoryEitherOr: "Keep the entire reading under 300 words.",
			domain.CategoryGeneral:  "Keep the entire reading under 300 words.",
		},
		// Tighter than every reading ceiling above.
		chatLimit:       "Keep responses concise, under 100 words.",
		defaultQuestion: "General reading",
		ctxHeader:       "Previous tarot reading context:",
		questionLabel:   "User question",
		spreadLabel:     "Spread",
		priorLabel:      "Previous interpretation:",
		noPrior:         "(none)",
		keepContext:     "Keep the above cards and interpretation as context while answering the user's follow-up questions.",
	},
	domain.LangKO: {
		name:       "Korean",
		tone:       "한국어 반말(~해, ~야, ~거야, ~있어, ~해봐)로 친근하게 작성하고 존댓말은 사용하지 마라.",
		formalTone: "한국어 존댓말(~해요, ~입니다)로 정중하고 따뜻하게 작성하라.",
		readingLimits: map[domain.SpreadCategory]string{
			domain.CategoryYesNo:    "전체 답변은 300자 이내로 작성하라.",
			domain.CategoryEitherOr: "전체 답변은 600자 이내로 작성하라.",
			domain.CategoryGeneral:  "전체 답변은 600자 이내로 작성하라.",
		},
		chatLimit:       "200자 이내로 간결하게 답하라.",
		defaultQuestion: "일반 리딩",
		ctxHeader:       "이전 타로 리딩 맥락:",
		questionLabel:   "사용자 질문",
		spreadLabel:     "스프레드",
		priorLabel:      "이전 해석:",
		noPrior:         "(없음)",
		keepContext:     "위 카드와 해석을 맥락으로 유지하면서 사용자의 후속 질문에 답하라.",
	},
}

// Structural blocks per spread category. General adds nothing beyond the
// common directives.
var categoryBlocks = map[domain.SpreadCategory]string{
	domain.CategoryYesNo: "This is a yes/no question. Open with an unambiguous yes or no verdict " +
		"in the very first sentence, then explain what in the cards supports it.",
	domain.CategoryEitherOr: "The querent is choosing between exactly two options. Name both sides, " +
		"compare what the cards say about each, and state clearly which side the cards favor.",
}

const (
	questionDirective = "Your answer must reference and directly address the querent's question. " +
		"Never give a generic reading that ignores what was asked."

	priorityDirective = "Interpretation priority: 1) the context of the question, " +
		"2) the explicit meaning of each card's position when one is given, " +
		"3) how the cards interact and the overall energy flow between them, " +
		"4) each card's traditional symbolism and its upright or reversed meaning."

	temporalRule = "Do not impose a past/present/future narrative purely because of the number of cards. " +
		"Use temporal structure only when the spread positions or the question imply it."

	reversedClause = "At least one card is reversed. Read reversed cards through their shadow side — " +
		"blocked, delayed, internalized, or excessive expressions of the upright energy — " +
		"not as simple bad omens."

	markdownBlock = "Structure:\n" +
		"1. **Each card**: meaning by position (2-3 sentences each)\n" +
		"2. **Card interactions**: how they connect and overall energy flow\n" +
		"3. **Advice**: specific, actionable guidance (no vague platitudes)\n\n" +
		"Rules: Use **bold** for card names. Use ## headers. Be concise and specific."

	plainBlock = "Write in plain prose only. No markdown, no headers, no bold, no bullet points."
)

func (e *Engine) pack(lang domain.Language) langPack {
	if p, ok := packs[lang]; ok {
		return p
	}
	return packs[domain.LangEN]
}

func (e *Engine) toneFor(p langPack) string {
	if e.opts.FormalKorean {
		return p.formalTone
	}
	return p.tone
}

// Reading renders the system and user prompts for an initial reading.
func (e *Engine) Reading(in ReadingInput) (system, user string) {
	p := e.pack(in.Language)
	category := domain.DetectSpreadCategory(in.SpreadLabel)

	sections := []string{
		fmt.Sprintf("You are a Rider-Waite tarot master. You MUST respond in %s only.", p.name),
	}
	if e.opts.Style == StylePlain {
		sections = append(sections, plainBlock)
	} else {
		sections = append(sections, markdownBlock)
	}
	sections = append(sections,
		e.toneFor(p),
		questionDirective,
		priorityDirective,
		temporalRule,
	)
	if block, ok := categoryBlocks[category]; ok {
		sections = append(sections, block)
	}
	if domain.HasReversed(in.Cards) {
		sections = append(sections, reversedClause)
	}
	sections = append(sections, p.readingLimits[category])

	system = strings.Join(sections, "\n\n")
	if in.Reference != "" {
		system += in.Reference
	}

	user = fmt.Sprintf("%s | %s\n%s",
		orDefault(in.SpreadLabel, "Free Layout"),
		orDefault(in.Question, p.defaultQuestion),
		cardList(in.Cards),
	)
	return system, user
}

// Chat renders the full message sequence for a follow-up turn: the chat
// system prompt followed by the caller's transcript verbatim.
func (e *Engine) Chat(in ChatInput) []domain.Message {
	p := e.pack(in.Language)

	var b strings.Builder
	fmt.Fprintf(&b, "You are a tarot reader having a follow-up conversation. You MUST respond in %s only.\n", p.name)
	b.WriteString(plainBlock)
	b.WriteString("\n")
	b.WriteString(e.toneFor(p))
	b.WriteString("\n\n")
	b.WriteString(p.ctxHeader)
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s: %s\n", p.questionLabel, orDefault(in.Question, p.defaultQuestion))
	fmt.Fprintf(&b, "%s: %s\n", p.spreadLabel, orDefault(in.SpreadLabel, "Free Layout"))
	b.WriteString(cardList(in.Cards))
	b.WriteString("\n\n")
	b.WriteString(p.priorLabel)
	b.WriteString("\n")
	b.WriteString(orDefault(in.PriorReading, p.noPrior))
	b.WriteString("\n\n")
	b.WriteString(p.keepContext)
	b.WriteString(" ")
	b.WriteString(p.chatLimit)

	msgs := make([]domain.Message, 0, 1+len(in.History))
	msgs = append(msgs, domain.Message{Role: domain.RoleSystem, Content: b.String()})
	msgs = append(msgs, in.History...)
	return msgs
}

// cardList renders the per-card listing shared by both call purposes.
func cardList(cards []domain.DrawnCard) string {
	lines := make([]string, len(cards))
	for i, c := range cards {
		name := c.NameEn
		if c.NameKo != "" {
			name = fmt.Sprintf("%s (%s)", c.NameEn, c.NameKo)
		}
		pos := c.Position
		if pos == "" {
			pos = fmt.Sprintf("Card %d", i+1)
		}
		rev := ""
		if c.Reversed {
			rev = " [Reversed]"
		}
		lines[i] = fmt.Sprintf("- Position [%s]: %s%s", pos, name, rev)
	}
	return strings.Join(lines, "\n")
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
