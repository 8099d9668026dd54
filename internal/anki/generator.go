// Package anki exports the word collection as Anki decks, either a
// full .apkg package (SQLite collection inside a zip) or a legacy CSV
// import file.
package anki

import (
	"encoding/csv"
	"fmt"
	"os"

	"codeberg.org/snonux/tangocho/internal/store"
)

// Card is one deck entry derived from a flashcard. Genre becomes an
// Anki tag, with path separators flattened since Anki tags are
// whitespace-separated tokens.
type Card struct {
	Word    string
	Meaning string
	Genre   string
}

// CardsFromEntries converts the collection to deck cards. Entries with
// both fields empty carry no information and are skipped.
func CardsFromEntries(entries []store.Entry) []Card {
	cards := make([]Card, 0, len(entries))
	for _, e := range entries {
		if e.Word == "" && e.Meaning == "" {
			continue
		}
		cards = append(cards, Card{Word: e.Word, Meaning: e.Meaning, Genre: e.Genre})
	}
	return cards
}

// GenerateCSV writes cards as a CSV file for Anki's text importer,
// columns word, meaning, genre with a header row.
func GenerateCSV(cards []Card, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"Word", "Meaning", "Genre"}); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	for _, card := range cards {
		if err := writer.Write([]string{card.Word, card.Meaning, card.Genre}); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}
	return nil
}
