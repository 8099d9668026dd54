package store

// Run is a styled fragment of a word or meaning. Optional attributes are
// pointers so that an explicitly stored false/empty value survives a
// load/save round trip, while absent attributes stay absent.
type Run struct {
	Text      string  `json:"text"`
	FG        *string `json:"fg,omitempty"`
	BG        *string `json:"bg,omitempty"`
	Bold      *bool   `json:"bold,omitempty"`
	Italic    *bool   `json:"italic,omitempty"`
	Underline *bool   `json:"underline,omitempty"`
}

// Entry is one flashcard. Word and meaning are always present (possibly
// empty), genre and the run lists only when set.
type Entry struct {
	Word        string `json:"word"`
	Meaning     string `json:"meaning"`
	Genre       string `json:"genre,omitempty"`
	WordRuns    []Run  `json:"word_runs,omitempty"`
	MeaningRuns []Run  `json:"meaning_runs,omitempty"`
}

// sanitizeEntry builds an Entry from one raw JSON record, keeping only
// type-correct fields. Word and meaning default to "".
func sanitizeEntry(raw map[string]any) Entry {
	var e Entry
	if s, ok := raw["word"].(string); ok {
		e.Word = s
	}
	if s, ok := raw["meaning"].(string); ok {
		e.Meaning = s
	}
	if s, ok := raw["genre"].(string); ok && s != "" {
		e.Genre = s
	}
	e.WordRuns = sanitizeRuns(raw["word_runs"])
	e.MeaningRuns = sanitizeRuns(raw["meaning_runs"])
	return e
}

// sanitizeRuns filters a raw run list. Elements without a string "text"
// are dropped; optional attributes are copied only when type-correct.
// Returns nil when nothing survives, so the field is omitted on save.
func sanitizeRuns(raw any) []Run {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}

	var runs []Run
	for _, el := range list {
		m, ok := el.(map[string]any)
		if !ok {
			continue
		}
		text, ok := m["text"].(string)
		if !ok {
			continue
		}

		run := Run{Text: text}
		if s, ok := m["fg"].(string); ok {
			run.FG = &s
		}
		if s, ok := m["bg"].(string); ok {
			run.BG = &s
		}
		if b, ok := m["bold"].(bool); ok {
			run.Bold = &b
		}
		if b, ok := m["italic"].(bool); ok {
			run.Italic = &b
		}
		if b, ok := m["underline"].(bool); ok {
			run.Underline = &b
		}
		runs = append(runs, run)
	}
	return runs
}
