package tarot

import (
	"log/slog"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(slog.Default())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestLookupCard_TotalOverLoadedKeys(t *testing.T) {
	s := newTestStore(t)
	if len(s.cards) == 0 {
		t.Fatal("store loaded no cards")
	}
	for key := range s.cards {
		rec, ok := s.cards[Normalize(key)]
		if !ok {
			t.Errorf("loaded key %q not found through normalization", key)
			continue
		}
		if len(rec.Keywords) == 0 || len(rec.Meanings.Light) == 0 || len(rec.Meanings.Shadow) == 0 {
			t.Errorf("key %q returned an incomplete record", key)
		}
	}
}

func TestLookupCard_DisplayNameVariants(t *testing.T) {
	s := newTestStore(t)
	// Frontend-style names must resolve against reference-style keys.
	for _, name := range []string{
		"The High Priestess",
		"The Hierophant",
		"Wheel of Fortune",
		"Ace of Pentacles",
		"2 of Cups",
		"10 of Pentacles",
	} {
		if _, ok := s.LookupCard(name); !ok {
			t.Errorf("LookupCard(%q) not found", name)
		}
	}
}

func TestLookupCard_NotFound(t *testing.T) {
	s := newTestStore(t)
	if _, ok := s.LookupCard("The Nonexistent Card"); ok {
		t.Error("expected not-found for unknown name")
	}
}

func TestFindExampleReadings_LimitAndOverlap(t *testing.T) {
	s := newTestStore(t)

	results := s.FindExampleReadings([]string{"The Fool"}, 2)
	if len(results) == 0 {
		t.Fatal("expected at least one example for The Fool")
	}
	if len(results) > 2 {
		t.Fatalf("limit exceeded: got %d", len(results))
	}

	// Zero-overlap queries return nothing.
	none := s.FindExampleReadings([]string{"The Nonexistent Card"}, 5)
	if len(none) != 0 {
		t.Errorf("expected no results for zero-overlap query, got %d", len(none))
	}

	if got := s.FindExampleReadings([]string{"The Fool"}, 0); got != nil {
		t.Errorf("limit 0 should return nil, got %v", got)
	}
}

func TestFindExampleReadings_PartialOverlapSuffices(t *testing.T) {
	s := newTestStore(t)
	// One shared card out of three is enough for a record to match.
	withFool := s.FindExampleReadings([]string{"The Fool", "The Nonexistent Card"}, 1)
	if len(withFool) != 1 {
		t.Fatalf("expected a match on partial overlap, got %d", len(withFool))
	}
}

func TestParseExampleCorpus_QuotedCommas(t *testing.T) {
	raw := "card1,card2,card3,reading\n" +
		"The Fool,The Star,The Sun,\"A hopeful, bright, open outcome.\"\n"
	got := parseExampleCorpus(raw, slog.Default())
	if len(got) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got))
	}
	if got[0].Text != "A hopeful, bright, open outcome." {
		t.Errorf("quoted commas split the narrative: %q", got[0].Text)
	}
	if got[0].Cards[0] != "the fool" {
		t.Errorf("card names not normalized: %v", got[0].Cards)
	}
}

func TestParseExampleCorpus_SkipsMalformedRows(t *testing.T) {
	raw := "card1,card2,card3,reading\n" +
		"only,three,fields\n" +
		"The Fool,The Star,The Sun,\"Fine row.\"\n" +
		"\n"
	got := parseExampleCorpus(raw, slog.Default())
	if len(got) != 1 {
		t.Fatalf("expected malformed row skipped, got %d rows", len(got))
	}
	if got[0].Text != "Fine row." {
		t.Errorf("unexpected surviving row: %q", got[0].Text)
	}
}

func TestParseExampleCorpus_DropsExtraFields(t *testing.T) {
	raw := "card1,card2,card3,reading\n" +
		"The Fool,The Star,The Sun,unquoted reading,extra field\n"
	got := parseExampleCorpus(raw, slog.Default())
	if len(got) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got))
	}
	if got[0].Text != "unquoted reading" {
		t.Errorf("expected extras dropped after field 4, got %q", got[0].Text)
	}
}
