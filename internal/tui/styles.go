package tui

import (
	"github.com/charmbracelet/lipgloss"

	"codeberg.org/snonux/tangocho/internal/render"
)

// Styles bundles the lipgloss styles of the study screen.
type Styles struct {
	GenrePane     lipgloss.Style
	GenreSelected lipgloss.Style
	GenreCount    lipgloss.Style
	CardPane      lipgloss.Style
	WordDefault   lipgloss.Style
	Japanese      lipgloss.Style
	Placeholder   lipgloss.Style
	Help          lipgloss.Style
	Status        lipgloss.Style
}

// DefaultStyles returns the standard color scheme.
func DefaultStyles() Styles {
	return Styles{
		GenrePane:     lipgloss.NewStyle().PaddingRight(2),
		GenreSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("25")),
		GenreCount:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		CardPane:      lipgloss.NewStyle().PaddingLeft(2),
		WordDefault:   lipgloss.NewStyle(),
		Japanese:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Placeholder:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Help:          lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// namedColors maps the color names used in stored runs onto ANSI
// colors; hex codes pass through unchanged.
var namedColors = map[string]string{
	"black":   "0",
	"red":     "9",
	"green":   "10",
	"yellow":  "11",
	"blue":    "12",
	"magenta": "13",
	"cyan":    "14",
	"white":   "15",
	"gray":    "8",
	"grey":    "8",
}

func colorFor(name string) lipgloss.Color {
	if c, ok := namedColors[name]; ok {
		return lipgloss.Color(c)
	}
	return lipgloss.Color(name)
}

// renderFragments maps run-renderer output onto terminal styling. The
// script-class fallback mirrors the legacy mixed-font display: kana and
// kanji get their own style when no explicit run styling exists.
func (s Styles) renderFragments(frags []render.Fragment) string {
	var out string
	for _, frag := range frags {
		style := s.WordDefault
		if frag.Style.Script == render.ScriptJapanese {
			style = s.Japanese
		}
		if frag.Style.FG != "" {
			style = style.Foreground(colorFor(frag.Style.FG))
		}
		if frag.Style.BG != "" {
			style = style.Background(colorFor(frag.Style.BG))
		}
		if frag.Style.Bold {
			style = style.Bold(true)
		}
		if frag.Style.Italic {
			style = style.Italic(true)
		}
		if frag.Style.Underline {
			style = style.Underline(true)
		}
		out += style.Render(frag.Text)
	}
	return out
}
