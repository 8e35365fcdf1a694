package tarot

import (
	"fmt"
	"strings"

	"github.com/Cayson-Choi/caysontarot/internal/domain"
)

// Truncation policy for reference blocks. Fixed, not configurable.
const (
	maxMeanings = 3
	maxFortune  = 2
	maxExamples = 2
)

// BuildCardReference assembles the reference block injected into a reading
// system prompt: per-card canonical meanings selected by orientation, plus up
// to two example readings involving any of the drawn cards. Cards the store
// does not know are skipped without placeholder text. Returns the empty
// string when nothing matched; callers omit the section entirely in that
// case.
func (s *Store) BuildCardReference(cards []domain.DrawnCard) string {
	var blocks []string
	for _, card := range cards {
		rec, ok := s.LookupCard(card.NameEn)
		if !ok {
			continue
		}
		dir := "Upright"
		meanings := rec.Meanings.Light
		if card.Reversed {
			dir = "Reversed"
			meanings = rec.Meanings.Shadow
		}
		var b strings.Builder
		fmt.Fprintf(&b, "[%s] (%s)\n", card.NameEn, dir)
		fmt.Fprintf(&b, "  Keywords: %s\n", strings.Join(rec.Keywords, ", "))
		fmt.Fprintf(&b, "  %s meanings: %s\n", dir, strings.Join(firstN(meanings, maxMeanings), "; "))
		fmt.Fprintf(&b, "  Fortune telling: %s", strings.Join(firstN(rec.FortuneTelling, maxFortune), "; "))
		blocks = append(blocks, b.String())
	}
	if len(blocks) == 0 {
		return ""
	}

	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.NameEn
	}
	examples := s.FindExampleReadings(names, maxExamples)

	var ref strings.Builder
	ref.WriteString("\n\nCard Meaning Reference:\n")
	ref.WriteString(strings.Join(blocks, "\n\n"))
	if len(examples) > 0 {
		ref.WriteString("\n\nExample Readings for Reference:")
		for i, ex := range examples {
			fmt.Fprintf(&ref, "\n%d. %s", i+1, ex)
		}
	}
	ref.WriteString("\n\nUse the above reference to inform your interpretation, but write naturally in your own words.")
	return ref.String()
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
