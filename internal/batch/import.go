// Package batch reads bulk word-import files: one "word = meaning"
// pair per line, with optional "[genre/path]" section headers that
// assign the genre to all following lines.
package batch

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"codeberg.org/snonux/tangocho/internal/genre"
	"codeberg.org/snonux/tangocho/internal/store"
)

// ReadImportFile parses an import file into entries. Supported lines:
//   - "word = meaning"  one flashcard in the current section's genre
//   - "[food/fruit]"    switch genre for the following lines
//   - "[]"              switch back to uncategorized
//   - "# ..." and blank lines are skipped
//
// Lines with an empty word or no "=" are ignored rather than aborting
// the whole file.
func ReadImportFile(filename string) ([]store.Entry, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	var entries []store.Entry
	currentGenre := genre.Uncategorized

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentGenre = genre.Normalize(line[1 : len(line)-1])
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		word := strings.TrimSpace(parts[0])
		meaning := strings.TrimSpace(parts[1])
		if word == "" {
			continue
		}

		entries = append(entries, store.Entry{
			Word:    word,
			Meaning: meaning,
			Genre:   currentGenre,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read import file: %w", err)
	}

	return entries, nil
}
