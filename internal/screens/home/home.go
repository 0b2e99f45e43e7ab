package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathrush/internal/router"
	"github.com/abhisek/mathrush/internal/screen"
	"github.com/abhisek/mathrush/internal/session"
	"github.com/abhisek/mathrush/internal/ui/layout"
)

// PlayFunc builds the game screen for a mode.
type PlayFunc func(modeID string) screen.Screen

// Link is an extra menu item that pushes the screen built by Open.
type Link struct {
	Label string
	Open  func() screen.Screen
}

// HomeScreen lists the game modes and starts the selected one.
type HomeScreen struct {
	menu gameMenu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. Choosing a mode pushes the screen built by
// play. links are listed after the modes, before the exit item.
func New(play PlayFunc, links ...Link) *HomeScreen {
	modes := session.Modes()

	entries := make([]entry, 0, len(modes)+len(links)+1)
	for i := range modes {
		mode := &modes[i]
		entries = append(entries, entry{
			label: strings.ToUpper(mode.Name),
			mode:  mode,
			action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: play(mode.ID)}
				}
			},
		})
	}
	for _, l := range links {
		open := l.Open
		entries = append(entries, entry{
			label: strings.ToUpper(l.Label),
			action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: open()}
				}
			},
		})
	}
	entries = append(entries, entry{label: "EXIT GAME", action: func() tea.Cmd {
		return tea.Quit
	}})

	return &HomeScreen{menu: gameMenu{entries: entries}}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return h, nil
	}
	if kmsg.String() == "q" {
		return h, tea.Quit
	}
	return h, h.menu.update(kmsg)
}

// SelectedMode returns the highlighted mode, or false when a link or the
// exit item is highlighted.
func (h *HomeScreen) SelectedMode() (session.Mode, bool) {
	return h.menu.selectedMode()
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer
	termHeight := height + layout.HeaderHeight + layout.FooterHeight
	compact := termHeight < 36

	cw := contentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw))

	if !compact {
		sections = append(sections, renderMascotBox(cw))
	}

	mode, ok := h.SelectedMode()
	sections = append(sections, renderModeCard(mode, ok, cw))

	if compact {
		sections = append(sections, renderArcadeMenuCompact(h.menu.labels(), h.menu.selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(h.menu.labels(), h.menu.selected, cw))
	}

	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	content := strings.Join(sections, sep)

	return cabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose mode"},
		{Key: "Enter", Description: "Play"},
		{Key: "q", Description: "Quit"},
	}
}
