package history

import (
	"time"

	"github.com/abhisek/mathrush/internal/achievements"
	"github.com/abhisek/mathrush/internal/session"
)

// Record is one finished game.
type Record struct {
	SessionID    string
	Mode         string
	Score        int
	Level        int
	Questions    int
	Correct      int
	BestStreak   int
	Duration     time.Duration
	EndReason    session.EndReason
	EndedAt      time.Time
	Achievements []achievements.Achievement
}

// Log keeps the games finished since the program started. It is fed by
// session events and is not persisted.
type Log struct {
	records []Record
	pending map[string][]achievements.Achievement
}

var _ session.Observer = (*Log)(nil)

// NewLog creates an empty Log.
func NewLog() *Log {
	return &Log{pending: make(map[string][]achievements.Achievement)}
}

// Observe implements session.Observer.
func (l *Log) Observe(e session.Event) {
	id := e.State.SessionID
	switch e.Kind {
	case session.EventAchievement:
		l.pending[id] = append(l.pending[id], e.Achievement)
	case session.EventEnd:
		s := e.State
		l.records = append(l.records, Record{
			SessionID:    id,
			Mode:         s.Mode.Name,
			Score:        s.Score,
			Level:        s.Level,
			Questions:    s.TotalQuestions,
			Correct:      s.CorrectAnswers,
			BestStreak:   s.BestStreak,
			Duration:     s.EndedAt.Sub(s.StartedAt),
			EndReason:    s.EndReason,
			EndedAt:      s.EndedAt,
			Achievements: l.pending[id],
		})
		delete(l.pending, id)
	}
}

// Records returns the finished games, newest first.
func (l *Log) Records() []Record {
	out := make([]Record, len(l.records))
	for i, r := range l.records {
		out[len(l.records)-1-i] = r
	}
	return out
}

// Best returns the highest scoring game, or false when none finished.
func (l *Log) Best() (Record, bool) {
	if len(l.records) == 0 {
		return Record{}, false
	}
	best := l.records[0]
	for _, r := range l.records[1:] {
		if r.Score > best.Score {
			best = r
		}
	}
	return best, true
}

// HighestLevel returns the highest level any finished game reached, or 0.
func (l *Log) HighestLevel() int {
	highest := 0
	for _, r := range l.records {
		highest = max(highest, r.Level)
	}
	return highest
}
