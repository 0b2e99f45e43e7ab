package levelmap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathrush/internal/levels"
	"github.com/abhisek/mathrush/internal/problemgen"
	"github.com/abhisek/mathrush/internal/router"
	"github.com/abhisek/mathrush/internal/screen"
	"github.com/abhisek/mathrush/internal/ui/layout"
	"github.com/abhisek/mathrush/internal/ui/theme"
)

type rowKind int

const (
	rowLevelHeader rowKind = iota
	rowTemplate
)

type row struct {
	kind  rowKind
	level levels.Config
	tmpl  *problemgen.Template
}

// LevelMapScreen lists the levels and the question types each one unlocks.
type LevelMapScreen struct {
	rows         []row
	cursor       int
	scrollOffset int
	reached      int
	rng          problemgen.Rand
}

var _ screen.Screen = (*LevelMapScreen)(nil)
var _ screen.KeyHintProvider = (*LevelMapScreen)(nil)

// New creates a LevelMapScreen. reached is the highest level the player
// got to in this run (0 if none); rng draws the sample questions shown on
// the detail screen.
func New(reached int, rng problemgen.Rand) *LevelMapScreen {
	pool := problemgen.Pool()

	var rows []row
	for _, lc := range levels.All() {
		rows = append(rows, row{kind: rowLevelHeader, level: lc})
		for i := range pool {
			if max(pool[i].Gate, levels.MinLevel) == lc.Level {
				rows = append(rows, row{kind: rowTemplate, level: lc, tmpl: &pool[i]})
			}
		}
	}

	s := &LevelMapScreen{rows: rows, reached: reached, rng: rng}

	// Set cursor to first template row
	for i, r := range s.rows {
		if r.kind == rowTemplate {
			s.cursor = i
			break
		}
	}
	return s
}

func (s *LevelMapScreen) Init() tea.Cmd {
	return nil
}

func (s *LevelMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextLevel()
		case "enter":
			return s, s.selectTemplate()
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *LevelMapScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return ""
	}

	s.adjustScroll(height)

	var lines []string
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= height {
			break
		}
		switch r.kind {
		case rowLevelHeader:
			lines = append(lines, s.renderLevelHeader(r.level, width))
		case rowTemplate:
			lines = append(lines, s.renderTemplateRow(r, i == s.cursor))
		}
		visible++
	}
	return strings.Join(lines, "\n")
}

func (s *LevelMapScreen) Title() string {
	return "Level Map"
}

func (s *LevelMapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Next level"},
		{Key: "Enter", Description: "Sample"},
		{Key: "Esc", Description: "Back"},
	}
}

// moveCursor moves the cursor by delta, skipping level headers.
func (s *LevelMapScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowTemplate {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextLevel jumps the cursor to the first template of the next level
// that unlocks any.
func (s *LevelMapScreen) nextLevel() {
	current := s.rows[s.cursor].level.Level
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowTemplate && s.rows[i].level.Level != current {
			s.cursor = i
			return
		}
	}
}

// adjustScroll keeps the cursor and its level header inside the viewport.
func (s *LevelMapScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowLevelHeader {
		headerRow--
	}
	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *LevelMapScreen) selectTemplate() tea.Cmd {
	r := s.rows[s.cursor]
	if r.kind != rowTemplate || r.tmpl == nil {
		return nil
	}
	detail := newTemplateDetail(*r.tmpl, r.level, s.rng)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

func (s *LevelMapScreen) renderLevelHeader(lc levels.Config, width int) string {
	icon := "○"
	if lc.Level <= s.reached {
		icon = "●"
	}
	next := "top level"
	if lc.Level < levels.MaxLevel {
		next = fmt.Sprintf("level up every %d correct", levels.Threshold(lc.Level))
	}
	title := fmt.Sprintf("%s LEVEL %d  %s", icon, lc.Level, strings.ToUpper(lc.Name))
	meta := fmt.Sprintf("   numbers %d-%d · %s", lc.Min, lc.Max, next)

	return lipgloss.NewStyle().
		Width(width).
		Padding(1, 0, 0, 2).
		Render(lipgloss.NewStyle().Foreground(theme.LevelColor(lc.Tag)).Bold(true).Render(title) +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(meta))
}

func (s *LevelMapScreen) renderTemplateRow(r row, selected bool) string {
	name := r.tmpl.Category.DisplayName()

	style := lipgloss.NewStyle().Foreground(theme.Text)
	if r.level.Level > s.reached {
		style = lipgloss.NewStyle().Foreground(theme.TextDim)
	}
	cursor := "  "
	if selected {
		cursor = "▸ "
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	return fmt.Sprintf("    %s%s", cursor, style.Render(name))
}
