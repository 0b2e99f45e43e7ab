package home

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathrush/internal/session"
)

// entry is one item of the home menu. mode is set for game modes and nil
// for links and the exit item.
type entry struct {
	label  string
	mode   *session.Mode
	action func() tea.Cmd
}

// gameMenu is the vertical home menu. The cursor stops at both ends.
type gameMenu struct {
	entries  []entry
	selected int
}

func (m *gameMenu) update(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.entries)-1 {
			m.selected++
		}
	case "enter":
		if m.selected < len(m.entries) && m.entries[m.selected].action != nil {
			return m.entries[m.selected].action()
		}
	}
	return nil
}

// selectedMode returns the highlighted game mode, or false when a link or
// the exit item is highlighted.
func (m gameMenu) selectedMode() (session.Mode, bool) {
	if m.selected < 0 || m.selected >= len(m.entries) || m.entries[m.selected].mode == nil {
		return session.Mode{}, false
	}
	return *m.entries[m.selected].mode, true
}

func (m gameMenu) labels() []string {
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.label
	}
	return out
}
