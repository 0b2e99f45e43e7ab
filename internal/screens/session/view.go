package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/mathrush/internal/session"
	"github.com/abhisek/mathrush/internal/ui/components"
	"github.com/abhisek/mathrush/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	v := s.machine.View()
	if v.Phase == sess.PhaseEnded || v.Phase == sess.PhaseIdle {
		return renderEnded(width)
	}

	var b strings.Builder

	b.WriteString(renderInfoLine(v, width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")

	bar := components.EnergyBar(v.Energy, min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	mascot := components.Mascot(string(v.Mood))
	body := lipgloss.JoinHorizontal(lipgloss.Center, mascot, "    ", s.renderQuestion(v, width-16))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body))
	b.WriteString("\n\n")

	b.WriteString(renderAchievements(v, width))

	return b.String()
}

// renderInfoLine shows the level badge on the left and the clock on the right.
func renderInfoLine(v sess.View, width int) string {
	badge := lipgloss.NewStyle().
		Foreground(theme.LevelColor(v.LevelTag)).
		Bold(true).
		Render(fmt.Sprintf("  LV %d · %s", v.Level, v.LevelName))

	clock := "∞"
	if v.Mode.Timed {
		clock = fmt.Sprintf("%d:%02d", v.TimeLeft/60, v.TimeLeft%60)
	}
	clockStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	if v.Mode.Timed && v.TimeLeft <= 10 {
		clockStyle = clockStyle.Foreground(theme.Error)
	}

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d  %s %d  %s %s",
			v.TotalQuestions+1,
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			v.CorrectAnswers,
			lipgloss.NewStyle().Foreground(theme.Accent).Render("⏱"),
			clockStyle.Render(clock),
		))

	line := badge
	pad := width - lipgloss.Width(badge) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

// renderQuestion stacks the question, the answer input or feedback, and
// the hint when revealed.
func (s *SessionScreen) renderQuestion(v sess.View, width int) string {
	q := v.CurrentQuestion
	if q == nil {
		return ""
	}

	textWidth := min(max(width, 20), 60)
	var lines []string
	lines = append(lines, lipgloss.NewStyle().
		Width(textWidth).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	lines = append(lines, "")

	if v.Phase == sess.PhaseFeedback {
		if v.LastAnswerCorrect {
			lines = append(lines, theme.Correct.Render("✓ "+v.Feedback))
		} else {
			lines = append(lines, theme.Incorrect.Render("✗ "+v.Feedback))
		}
	} else {
		lines = append(lines, "Answer: "+s.input.View())
	}

	if v.HintRevealed {
		lines = append(lines, "", theme.Hint.Width(textWidth).Render("💡 "+q.Hint))
	}

	return strings.Join(lines, "\n")
}

func renderAchievements(v sess.View, width int) string {
	if len(v.Recent) == 0 {
		return ""
	}
	style := lipgloss.NewStyle().Foreground(theme.ArcadeYellow)
	lines := make([]string, 0, len(v.Recent))
	for _, a := range v.Recent {
		lines = append(lines, style.Render(a.String()))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(lines, "   "))
}

func renderEnded(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Game over...")
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
