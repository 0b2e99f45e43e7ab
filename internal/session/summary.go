package session

import (
	"time"

	"github.com/abhisek/mathrush/internal/achievements"
	"github.com/abhisek/mathrush/internal/levels"
	"github.com/abhisek/mathrush/internal/scoring"
)

// Summary holds the data displayed on the game over screen.
type Summary struct {
	SessionID      string
	Mode           Mode
	Score          int
	Level          levels.Config
	TotalQuestions int
	CorrectAnswers int
	Accuracy       float64
	BestStreak     int
	Duration       time.Duration
	EndReason      EndReason
	Achievements   []achievements.Achievement
}

// Summary builds the end-of-session summary. For a running session the
// duration is measured up to now.
func (m *Machine) Summary() *Summary {
	s := m.state
	end := s.EndedAt
	if s.Phase != PhaseEnded {
		end = m.opts.Now()
	}
	var d time.Duration
	if !s.StartedAt.IsZero() {
		d = end.Sub(s.StartedAt)
	}

	return &Summary{
		SessionID:      s.SessionID,
		Mode:           s.Mode,
		Score:          s.Score,
		Level:          levels.Get(s.Level),
		TotalQuestions: s.TotalQuestions,
		CorrectAnswers: s.CorrectAnswers,
		Accuracy:       scoring.Accuracy(s.CorrectAnswers, s.TotalQuestions),
		BestStreak:     s.BestStreak,
		Duration:       d,
		EndReason:      s.EndReason,
		Achievements:   m.tracker.All(),
	}
}
