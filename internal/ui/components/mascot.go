package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathrush/internal/ui/theme"
)

var mascotFaces = map[string]string{
	"neutral": `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ±×÷ │
└─────┘`,
	"happy": `┌─────┐
│ ◠ ◠ │
│  ‿  │
│ ±×÷ │
└─────┘`,
	"excited": `┌─────┐
│ ★ ★ │
│  ▿  │
│ ±×÷ │
└─╥═╥─┘`,
	"focused": `┌─────┐
│ ◉ ◉ │
│  ─  │
│ ±×÷ │
└─────┘`,
	"confused": `┌─────┐
│ ◉ ◑ │ ?
│  ~  │
│ ±×÷ │
└─────┘`,
}

// Mascot renders the calculator mascot for a mood. Unknown moods use the
// neutral face.
func Mascot(mood string) string {
	art, ok := mascotFaces[mood]
	if !ok {
		art = mascotFaces["neutral"]
	}
	return lipgloss.NewStyle().
		Foreground(theme.MoodColor(mood)).
		Render(art)
}
