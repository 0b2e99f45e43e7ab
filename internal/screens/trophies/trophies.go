package trophies

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathrush/internal/achievements"
	"github.com/abhisek/mathrush/internal/router"
	"github.com/abhisek/mathrush/internal/screen"
	"github.com/abhisek/mathrush/internal/screens/history"
	"github.com/abhisek/mathrush/internal/ui/layout"
	"github.com/abhisek/mathrush/internal/ui/theme"
)

// Shelf groups related achievement types under one tab.
type Shelf struct {
	Name  string
	Types []achievements.Type
}

// Shelves returns the tabs of the trophy case in display order.
func Shelves() []Shelf {
	return []Shelf{
		{Name: "Streaks", Types: []achievements.Type{achievements.TypeStreak, achievements.TypeFire, achievements.TypeMegaFire}},
		{Name: "Score", Types: []achievements.Type{achievements.TypeScore, achievements.TypeMegaScore}},
		{Name: "Levels", Types: []achievements.Type{achievements.TypeLevel, achievements.TypeDemon, achievements.TypeGod}},
	}
}

func (s Shelf) holds(t achievements.Type) bool {
	for _, st := range s.Types {
		if st == t {
			return true
		}
	}
	return false
}

// trophy is one achievement earned in a finished game.
type trophy struct {
	achievement achievements.Achievement
	record      history.Record
}

type trophiesLoadedMsg struct {
	Trophies []trophy
}

// TrophyCaseScreen displays the achievements earned across finished games.
type TrophyCaseScreen struct {
	log           *history.Log
	all           []trophy
	selectedShelf int
	scrollOffset  int
	loaded        bool
}

var _ screen.Screen = (*TrophyCaseScreen)(nil)
var _ screen.KeyHintProvider = (*TrophyCaseScreen)(nil)

// New creates a new TrophyCaseScreen.
func New(log *history.Log) *TrophyCaseScreen {
	return &TrophyCaseScreen{log: log}
}

func (s *TrophyCaseScreen) Init() tea.Cmd {
	return func() tea.Msg {
		var out []trophy
		for _, r := range s.log.Records() {
			for _, a := range r.Achievements {
				out = append(out, trophy{achievement: a, record: r})
			}
		}
		return trophiesLoadedMsg{Trophies: out}
	}
}

func (s *TrophyCaseScreen) Title() string {
	return "Trophy Case"
}

func (s *TrophyCaseScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch shelf"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *TrophyCaseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case trophiesLoadedMsg:
		s.all = msg.Trophies
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		shelves := Shelves()
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			s.selectedShelf = (s.selectedShelf + 1) % len(shelves)
			s.scrollOffset = 0
		case "shift+tab":
			s.selectedShelf = (s.selectedShelf - 1 + len(shelves)) % len(shelves)
			s.scrollOffset = 0
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
		case "down", "j":
			if s.scrollOffset < len(s.filtered())-1 {
				s.scrollOffset++
			}
		}
	}
	return s, nil
}

func (s *TrophyCaseScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Polishing trophies...")
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(fmt.Sprintf("\nTotal: %d trophies\n", len(s.all))))
	b.WriteString("\n")

	var tabs []string
	for i, shelf := range Shelves() {
		label := fmt.Sprintf("%s %s (%d)", shelf.Types[0].Icon(), shelf.Name, s.countOn(shelf))
		if i == s.selectedShelf {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(tabs, "     ")))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(min(width-8, 60), 0)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	filtered := s.filtered()
	if len(filtered) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("Nothing on this shelf yet. Go play!"))
		return b.String()
	}

	maxVisible := max(height-10, 3)
	start := s.scrollOffset
	end := min(start+maxVisible, len(filtered))

	for _, t := range filtered[start:end] {
		line := fmt.Sprintf("  %s %-22s %-10s %s",
			t.achievement.Type.Icon(),
			t.achievement.Message,
			t.record.Mode,
			t.record.EndedAt.Format("Jan 02 15:04"))
		style := lipgloss.NewStyle().Foreground(tierColor(t.achievement.Type))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if end < len(filtered) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(filtered)-end)))
	}

	return b.String()
}

func (s *TrophyCaseScreen) filtered() []trophy {
	shelf := Shelves()[s.selectedShelf]
	var out []trophy
	for _, t := range s.all {
		if shelf.holds(t.achievement.Type) {
			out = append(out, t)
		}
	}
	return out
}

func (s *TrophyCaseScreen) countOn(shelf Shelf) int {
	count := 0
	for _, t := range s.all {
		if shelf.holds(t.achievement.Type) {
			count++
		}
	}
	return count
}

// tierColor brightens the rarer achievements.
func tierColor(t achievements.Type) color.Color {
	switch t {
	case achievements.TypeStreak, achievements.TypeScore, achievements.TypeLevel:
		return theme.Text
	case achievements.TypeFire, achievements.TypeDemon:
		return theme.Secondary
	case achievements.TypeMegaFire, achievements.TypeMegaScore:
		return theme.Primary
	case achievements.TypeGod:
		return theme.Accent
	default:
		return theme.Text
	}
}
