// Package tui is the interactive study screen: a genre tree on the
// left, the current card on the right. It is a pure projection of the
// study controller; all state lives in the controller and the genre
// index, never in the widget layer.
package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"codeberg.org/snonux/tangocho/internal/genre"
	"codeberg.org/snonux/tangocho/internal/study"
)

// Model is the bubbletea model of the study session.
type Model struct {
	ctrl   *study.Controller
	styles Styles

	nodes       []genre.Node
	genreCursor int

	width  int
	height int
	status string
}

// NewModel builds the study screen over a controller and activates the
// starting genre (the first tree row when startGroup is empty or not
// found) so the session starts on a card when one exists.
func NewModel(ctrl *study.Controller, startGroup string) Model {
	m := Model{
		ctrl:   ctrl,
		styles: DefaultStyles(),
		nodes:  ctrl.Index().Nodes(),
		width:  80,
		height: 24,
	}
	if startGroup != "" {
		want := genre.Normalize(startGroup)
		for i, node := range m.nodes {
			if node.Path == want {
				m.genreCursor = i
				break
			}
		}
	}
	m.selectCursorGenre()
	return m
}

// GenreCursor returns the highlighted genre row, for tests.
func (m Model) GenreCursor() int {
	return m.genreCursor
}

// selectCursorGenre activates the highlighted genre. Empty groups put
// the controller into Idle; the view shows the placeholder then.
func (m *Model) selectCursorGenre() {
	if len(m.nodes) == 0 {
		return
	}
	if err := m.ctrl.Select(m.nodes[m.genreCursor].Path); err != nil &&
		!errors.Is(err, genre.ErrEmptyGroup) {
		m.status = err.Error()
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. a/d (or arrows) move through the
// active genre, enter reveals the meaning, j/k walk the genre tree.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "j", "down":
			if m.genreCursor < len(m.nodes)-1 {
				m.genreCursor++
				m.selectCursorGenre()
			}
			return m, nil

		case "k", "up":
			if m.genreCursor > 0 {
				m.genreCursor--
				m.selectCursorGenre()
			}
			return m, nil

		case "d", "right":
			if err := m.ctrl.Next(); err != nil && !errors.Is(err, genre.ErrEmptyGroup) {
				m.status = err.Error()
			}
			return m, nil

		case "a", "left":
			if err := m.ctrl.Prev(); err != nil && !errors.Is(err, genre.ErrEmptyGroup) {
				m.status = err.Error()
			}
			return m, nil

		case "enter", " ":
			m.ctrl.Reveal()
			return m, nil
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	left := m.viewGenreTree()
	right := m.viewCard()
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.GenrePane.Render(left),
		m.styles.CardPane.Render(right),
	)

	help := m.styles.Help.Render("a/d: prev/next  enter: meaning  j/k: genre  q: quit")
	lines := []string{body, "", help}
	if m.status != "" {
		lines = append(lines, m.styles.Status.Render(m.status))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewGenreTree() string {
	var b strings.Builder
	for i, node := range m.nodes {
		label := strings.Repeat("  ", node.Depth) + node.Label
		row := fmt.Sprintf("%-20s %s", label,
			m.styles.GenreCount.Render(fmt.Sprintf("(%d)", node.Count)))
		if i == m.genreCursor {
			row = m.styles.GenreSelected.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewCard() string {
	if m.ctrl.Idle() {
		return m.styles.Placeholder.Render("(単語がありません)")
	}

	word := m.styles.renderFragments(m.ctrl.WordFragments())
	meaning := m.styles.Placeholder.Render(study.HiddenMeaning)
	if m.ctrl.Revealed() {
		meaning = m.styles.renderFragments(m.ctrl.MeaningFragments())
	}

	return word + "\n\n" + meaning
}

// Run starts the interactive study session and blocks until quit.
func Run(ctrl *study.Controller, startGroup string) error {
	p := tea.NewProgram(NewModel(ctrl, startGroup), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
