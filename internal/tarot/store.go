package tarot

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Cayson-Choi/caysontarot/internal/domain"
)

//go:embed data/tarot_interpretations.json data/tarot_readings.csv
var dataFS embed.FS

// Meanings holds the upright (light) and reversed (shadow) meaning lists.
type Meanings struct {
	Light  []string `json:"light"`
	Shadow []string `json:"shadow"`
}

// CardRecord is the canonical reference entry for one card.
type CardRecord struct {
	Name           string   `json:"name"`
	Keywords       []string `json:"keywords"`
	Meanings       Meanings `json:"meanings"`
	FortuneTelling []string `json:"fortune_telling"`
}

// ExampleReading is one historical reading from the corpus, with its card
// names pre-normalized for matching.
type ExampleReading struct {
	Cards []string
	Text  string
}

// Store is a load-once, read-only index over canonical card meanings and
// example readings. Build it exactly once at startup and share it freely;
// concurrent reads need no locking.
type Store struct {
	cards    map[string]CardRecord
	examples []ExampleReading
}

type interpretationsFile struct {
	TarotInterpretations []CardRecord `json:"tarot_interpretations"`
}

// NewStore parses the embedded reference data and example corpus. A parse
// failure is fatal: the store cannot serve a partial index without producing
// subtly wrong prompts.
func NewStore(logger *slog.Logger) (*Store, error) {
	raw, err := dataFS.ReadFile("data/tarot_interpretations.json")
	if err != nil {
		return nil, fmt.Errorf("%w: read interpretations: %w", domain.ErrInternal, err)
	}
	var file interpretationsFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: parse interpretations: %w", domain.ErrInternal, err)
	}
	if len(file.TarotInterpretations) == 0 {
		return nil, fmt.Errorf("%w: interpretations file is empty", domain.ErrInternal)
	}

	cards := make(map[string]CardRecord, len(file.TarotInterpretations))
	for _, rec := range file.TarotInterpretations {
		cards[Normalize(rec.Name)] = rec
	}

	corpus, err := dataFS.ReadFile("data/tarot_readings.csv")
	if err != nil {
		return nil, fmt.Errorf("%w: read example corpus: %w", domain.ErrInternal, err)
	}
	examples := parseExampleCorpus(string(corpus), logger)

	return &Store{cards: cards, examples: examples}, nil
}

// parseExampleCorpus scans the line-oriented corpus. Fields are
// comma-separated with quote-toggle escaping so embedded commas inside a
// quoted narrative do not split the record. The first line is a header.
// Rows with fewer than 4 fields are logged and skipped; extra fields beyond
// 4 are logged and dropped.
func parseExampleCorpus(raw string, logger *slog.Logger) []ExampleReading {
	var examples []ExampleReading
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		if i == 0 || strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitQuoted(line)
		if len(fields) < 4 {
			logger.Warn("skipping malformed example corpus row",
				"line", i+1, "fields", len(fields))
			continue
		}
		if len(fields) > 4 {
			logger.Warn("example corpus row has extra fields, dropping extras",
				"line", i+1, "fields", len(fields))
		}
		examples = append(examples, ExampleReading{
			Cards: []string{
				Normalize(fields[0]),
				Normalize(fields[1]),
				Normalize(fields[2]),
			},
			Text: fields[3],
		})
	}
	return examples
}

// splitQuoted splits a corpus line on commas, with double quotes toggling an
// inside-field mode. Quote characters themselves are not kept.
func splitQuoted(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false
	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(cur.String()))
	return fields
}

// LookupCard returns the canonical record for a display name, or false when
// the name resolves to no known key.
func (s *Store) LookupCard(displayName string) (CardRecord, bool) {
	rec, ok := s.cards[Normalize(displayName)]
	return rec, ok
}

// FindExampleReadings returns up to limit example narratives whose card set
// overlaps the query names. Records are scanned in stored order and the scan
// stops as soon as limit is reached, so earlier corpus rows are favored.
func (s *Store) FindExampleReadings(cardNames []string, limit int) []string {
	if limit <= 0 {
		return nil
	}
	query := make(map[string]bool, len(cardNames))
	for _, name := range cardNames {
		query[Normalize(name)] = true
	}

	var results []string
	for _, ex := range s.examples {
		for _, c := range ex.Cards {
			if query[c] {
				results = append(results, ex.Text)
				break
			}
		}
		if len(results) >= limit {
			break
		}
	}
	return results
}
