package tarot

import (
	"regexp"
	"strings"
)

// Card names diverge across three sources:
//   frontend/deck:  "The High Priestess", "Ace of Pentacles", "2 of Cups"
//   reference JSON: "The Papess/High Priestess", "Ace of Coins", "Two of Cups"
//   example corpus: "The high priestess", "Two of Pentacles"
// Normalize collapses all three into one canonical lookup key.

var digitToWord = map[string]string{
	"2": "two", "3": "three", "4": "four", "5": "five", "6": "six",
	"7": "seven", "8": "eight", "9": "nine", "10": "ten",
}

var (
	coinsRe = regexp.MustCompile(`\bcoins\b`)
	rankRe  = regexp.MustCompile(`^(\d+)\s+of\s+`)
)

// Normalize converts a display name into the canonical key used for all
// index lookups. Pure and idempotent; names matching no rule pass through
// lower-cased and trimmed.
func Normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))

	// Major arcana variant titles.
	n = strings.Replace(n, "the papess/high priestess", "the high priestess", 1)
	n = strings.Replace(n, "the pope/hierophant", "the hierophant", 1)
	if n == "the wheel" {
		n = "wheel of fortune"
	}

	// Suit synonym, whole word only.
	n = coinsRe.ReplaceAllString(n, "pentacles")

	// Leading digit rank: "2 of cups" -> "two of cups".
	n = rankRe.ReplaceAllStringFunc(n, func(m string) string {
		sub := rankRe.FindStringSubmatch(m)
		if w, ok := digitToWord[sub[1]]; ok {
			return w + " of "
		}
		return m
	})

	return n
}
