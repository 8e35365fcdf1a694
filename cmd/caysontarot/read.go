package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Cayson-Choi/caysontarot/internal/app"
	"github.com/Cayson-Choi/caysontarot/internal/domain"
)

func readCmd() *cobra.Command {
	var (
		spreadID string
		question string
		lang     string
		count    int
		reversed bool
		deck     string
	)

	cmd := &cobra.Command{
		Use:   "read",
		Short: "Draw a hand and print a one-shot reading",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _, svc, err := setup()
			if err != nil {
				slog.Error("startup failed", "error", err)
				return err
			}

			language := domain.ParseLanguage(lang)
			draw, err := svc.Draw(cmd.Context(), app.DrawRequest{
				DeckID:        deck,
				SpreadID:      spreadID,
				Count:         count,
				AllowReversed: reversed,
				Language:      language,
			})
			if err != nil {
				return err
			}

			for _, c := range draw.Cards {
				orientation := ""
				if c.Reversed {
					orientation = " [Reversed]"
				}
				fmt.Printf("%s: %s (%s)%s\n", c.Position, c.NameEn, c.NameKo, orientation)
			}
			fmt.Println()

			reading, err := svc.Interpret(cmd.Context(), app.ReadingRequest{
				Cards:       draw.Cards,
				SpreadLabel: draw.Spread.Label(language),
				Question:    question,
				Language:    language,
			})
			if err != nil {
				return err
			}

			fmt.Println(reading.Text)
			return nil
		},
	}

	cmd.Flags().StringVar(&spreadID, "spread", "three_card", "spread ID (see /v1/spreads)")
	cmd.Flags().StringVarP(&question, "question", "q", "", "question for the cards")
	cmd.Flags().StringVar(&lang, "lang", "en", "output language (en or ko)")
	cmd.Flags().IntVar(&count, "count", 3, "card count for the free layout")
	cmd.Flags().BoolVar(&reversed, "reversed", true, "allow reversed cards")
	cmd.Flags().StringVar(&deck, "deck", "rider_waite", "deck ID")
	return cmd
}
