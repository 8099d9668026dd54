package render

import "codeberg.org/snonux/tangocho/internal/store"

// Script classifies a fragment produced without explicit runs.
type Script int

const (
	// ScriptNone marks fragments from explicit runs; no script fallback applies.
	ScriptNone Script = iota
	// ScriptJapanese marks kana/kanji fragments.
	ScriptJapanese
	// ScriptOther marks everything else.
	ScriptOther
)

// Style carries the display attributes of one fragment.
type Style struct {
	FG        string
	BG        string
	Bold      bool
	Italic    bool
	Underline bool
	Script    Script
}

// Fragment is one uniformly-styled piece of text.
type Fragment struct {
	Text  string
	Style Style
}

// IsJapaneseScript reports whether r falls in the Hiragana/Katakana,
// CJK Unified Ideographs, or half-width Katakana ranges. The exact
// ranges govern how unstyled text is split into fragments and must not
// be widened or narrowed.
func IsJapaneseScript(r rune) bool {
	return (r >= 0x3040 && r <= 0x30FF) ||
		(r >= 0x4E00 && r <= 0x9FFF) ||
		(r >= 0xFF66 && r <= 0xFF9D)
}

// Expand produces the fragment sequence for text with optional runs.
// Explicit runs take precedence verbatim, in order, with empty-text
// runs skipped. Without runs the text is split into maximal fragments
// of the same script class so the display can pick per-script styling.
func Expand(text string, runs []store.Run) []Fragment {
	if len(runs) == 0 {
		return splitByScript(text)
	}

	frags := make([]Fragment, 0, len(runs))
	for _, run := range runs {
		if run.Text == "" {
			continue
		}
		frags = append(frags, Fragment{Text: run.Text, Style: runStyle(run)})
	}
	return frags
}

// runStyle flattens a run's optional attributes into a Style.
func runStyle(run store.Run) Style {
	var st Style
	if run.FG != nil {
		st.FG = *run.FG
	}
	if run.BG != nil {
		st.BG = *run.BG
	}
	if run.Bold != nil {
		st.Bold = *run.Bold
	}
	if run.Italic != nil {
		st.Italic = *run.Italic
	}
	if run.Underline != nil {
		st.Underline = *run.Underline
	}
	return st
}

// splitByScript groups consecutive characters of the same script class.
func splitByScript(text string) []Fragment {
	if text == "" {
		return nil
	}

	var frags []Fragment
	var current []rune
	currentScript := ScriptNone

	flush := func() {
		if len(current) > 0 {
			frags = append(frags, Fragment{
				Text:  string(current),
				Style: Style{Script: currentScript},
			})
			current = current[:0]
		}
	}

	for _, r := range text {
		script := ScriptOther
		if IsJapaneseScript(r) {
			script = ScriptJapanese
		}
		if script != currentScript {
			flush()
			currentScript = script
		}
		current = append(current, r)
	}
	flush()
	return frags
}
