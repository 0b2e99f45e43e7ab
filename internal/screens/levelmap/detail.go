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

// TemplateDetailScreen shows a sample question for one question type.
type TemplateDetailScreen struct {
	tmpl   problemgen.Template
	level  levels.Config
	rng    problemgen.Rand
	sample problemgen.Question
}

var _ screen.Screen = (*TemplateDetailScreen)(nil)
var _ screen.KeyHintProvider = (*TemplateDetailScreen)(nil)

func newTemplateDetail(tmpl problemgen.Template, lc levels.Config, rng problemgen.Rand) *TemplateDetailScreen {
	d := &TemplateDetailScreen{tmpl: tmpl, level: lc, rng: rng}
	d.roll()
	return d
}

// roll draws a fresh sample at the level that unlocks the template.
func (d *TemplateDetailScreen) roll() {
	if q, ok := d.tmpl.Generate(d.rng, d.level.Level); ok {
		d.sample = q
	}
}

func (d *TemplateDetailScreen) Init() tea.Cmd { return nil }
func (d *TemplateDetailScreen) Title() string { return d.tmpl.Category.DisplayName() }

func (d *TemplateDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "r":
			d.roll()
		case "esc", "q":
			return d, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return d, nil
}

func (d *TemplateDetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "r", Description: "Another sample"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *TemplateDetailScreen) View(width, height int) string {
	contentWidth := min(width-8, 70)

	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	headStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  " + d.tmpl.Category.DisplayName()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.LevelColor(d.level.Tag)).
		Render(fmt.Sprintf("  Unlocks at level %d · %s", d.level.Level, d.level.Name)))
	b.WriteString("\n\n")

	b.WriteString(headStyle.Render("  Sample question"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(theme.Text).
		PaddingLeft(2).
		Render(d.sample.Text))
	b.WriteString("\n\n")

	b.WriteString(dimStyle.Render("  Hint:    ") + theme.Hint.Render(d.sample.Hint) + "\n")
	b.WriteString(dimStyle.Render("  Answer:  ") + theme.Correct.Render(d.sample.AnswerString()) + "\n")

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top,
		"\n"+b.String())
}
