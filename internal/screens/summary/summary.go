package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathrush/internal/achievements"
	"github.com/abhisek/mathrush/internal/router"
	"github.com/abhisek/mathrush/internal/screen"
	"github.com/abhisek/mathrush/internal/session"
	"github.com/abhisek/mathrush/internal/ui/layout"
	"github.com/abhisek/mathrush/internal/ui/theme"
)

// SummaryScreen displays the game over summary.
type SummaryScreen struct {
	summary   *session.Summary
	playAgain func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. playAgain builds a fresh game in the
// same mode; when nil, Enter returns home like Esc.
func New(summary *session.Summary, playAgain func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{summary: summary, playAgain: playAgain}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Game Over"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	if s.playAgain == nil {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Home"},
			{Key: "Esc", Description: "Home"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Play again"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			if s.playAgain != nil {
				next := s.playAgain()
				return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
			}
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), headline(sum.EndReason)))
	b.WriteString("\n\n")

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true),
		fmt.Sprintf("◆ %d POINTS", sum.Score)))
	b.WriteString("\n")

	level := lipgloss.NewStyle().Foreground(theme.LevelColor(sum.Level.Tag)).Bold(true).
		Render(fmt.Sprintf("Level %d · %s", sum.Level.Level, sum.Level.Name))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, level))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	statsLine := fmt.Sprintf("Mode: %s      Time: %d:%02d      Best streak: %d",
		sum.Mode.Name, mins, secs, sum.BestStreak)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim), statsLine))
	b.WriteString("\n")

	answers := fmt.Sprintf("Questions: %d      Correct: %d      Accuracy: %.0f%%",
		sum.TotalQuestions, sum.CorrectAnswers, sum.Accuracy*100)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text), answers))
	b.WriteString("\n\n")

	if len(sum.Achievements) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 60)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Achievements")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		style := lipgloss.NewStyle().Foreground(theme.Accent)
		for _, line := range tally(sum.Achievements) {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func headline(r session.EndReason) string {
	switch r {
	case session.EndTime:
		return "Time's up!"
	case session.EndEnergy:
		return "Out of energy!"
	default:
		return "Game over"
	}
}

// tally collapses repeated achievements into one line each, keeping the
// order in which they were first earned.
func tally(log []achievements.Achievement) []string {
	counts := make(map[achievements.Achievement]int)
	var order []achievements.Achievement
	for _, a := range log {
		if counts[a] == 0 {
			order = append(order, a)
		}
		counts[a]++
	}

	lines := make([]string, 0, len(order))
	for _, a := range order {
		line := a.String()
		if n := counts[a]; n > 1 {
			line += fmt.Sprintf(" ×%d", n)
		}
		lines = append(lines, line)
	}
	return lines
}
