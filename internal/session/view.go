package session

import (
	"github.com/abhisek/mathrush/internal/achievements"
	"github.com/abhisek/mathrush/internal/levels"
	"github.com/abhisek/mathrush/internal/scoring"
)

// RecentAchievementCount is how many achievements the game screen shows.
const RecentAchievementCount = 3

// View is a read-only snapshot for the presentation layer.
type View struct {
	State

	LevelName string
	LevelTag  string

	// Recent holds the last few achievements, oldest first.
	Recent   []achievements.Achievement
	Accuracy float64
}

// View returns a snapshot of the session for rendering.
func (m *Machine) View() View {
	lc := levels.Get(m.state.Level)
	return View{
		State:     m.state.clone(),
		LevelName: lc.Name,
		LevelTag:  lc.Tag,
		Recent:    m.tracker.Recent(RecentAchievementCount),
		Accuracy:  scoring.Accuracy(m.state.CorrectAnswers, m.state.TotalQuestions),
	}
}
