package logging

import (
	"github.com/sirupsen/logrus"

	"github.com/abhisek/mathrush/internal/scoring"
	"github.com/abhisek/mathrush/internal/session"
)

// Journal writes one log entry per session event.
type Journal struct {
	log logrus.FieldLogger
}

var _ session.Observer = (*Journal)(nil)

// NewJournal creates a Journal that logs to log.
func NewJournal(log logrus.FieldLogger) *Journal {
	return &Journal{log: log}
}

// Observe implements session.Observer.
func (j *Journal) Observe(e session.Event) {
	s := e.State
	entry := j.log.WithFields(logrus.Fields{
		"event":      string(e.Kind),
		"session_id": s.SessionID,
		"mode":       s.Mode.ID,
		"score":      s.Score,
		"streak":     s.Streak,
		"energy":     s.Energy,
		"level":      s.Level,
	})

	switch e.Kind {
	case session.EventStart:
		entry.WithField("time_left", s.TimeLeft).Info("session started")
	case session.EventAnswer:
		entry.WithFields(logrus.Fields{
			"correct":  e.Correct,
			"input":    e.Input,
			"category": string(e.Category),
		}).Debug("answer submitted")
	case session.EventLevelUp:
		entry.WithField("from_level", e.FromLevel).Info("level up")
	case session.EventAchievement:
		entry.WithFields(logrus.Fields{
			"achievement": e.Achievement.Message,
			"type":        string(e.Achievement.Type),
		}).Info("achievement unlocked")
	case session.EventHint:
		entry.Debug("hint revealed")
	case session.EventEnd:
		entry.WithFields(logrus.Fields{
			"reason":    string(s.EndReason),
			"questions": s.TotalQuestions,
			"correct":   s.CorrectAnswers,
			"accuracy":  scoring.Accuracy(s.CorrectAnswers, s.TotalQuestions),
		}).Info("session ended")
	default:
		entry.Warn("unknown session event")
	}
}
