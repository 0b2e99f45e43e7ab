package session

import (
	"time"

	"github.com/abhisek/mathrush/internal/problemgen"
)

// Phase represents the lifecycle stage of a session.
type Phase int

const (
	PhaseIdle     Phase = iota // No session started yet
	PhaseActive                // Waiting for an answer
	PhaseFeedback              // Showing feedback before the next draw
	PhaseEnded                 // Game over
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseFeedback:
		return "feedback"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Mood is the mascot's expression, driven by answer outcomes.
type Mood string

const (
	MoodNeutral  Mood = "neutral"
	MoodHappy    Mood = "happy"
	MoodExcited  Mood = "excited"
	MoodConfused Mood = "confused"
	MoodFocused  Mood = "focused"
)

// EndReason records why a session ended.
type EndReason string

const (
	EndNone   EndReason = ""
	EndTime   EndReason = "time"
	EndEnergy EndReason = "energy"
	EndQuit   EndReason = "quit"
)

// State is the mutable state of one session. It is owned by a Machine;
// callers only ever see copies.
type State struct {
	SessionID string
	Mode      Mode
	Phase     Phase

	Score          int
	Streak         int
	BestStreak     int
	Energy         int
	Level          int
	TimeLeft       int
	TotalQuestions int
	CorrectAnswers int

	Mood Mood

	// CurrentQuestion is non-nil while the session is running.
	CurrentQuestion *problemgen.Question

	// HintRevealed is set once a hint was bought for the current question.
	HintRevealed bool

	// Feedback is the banner shown after an answer ("Nice!", "Answer: 12").
	Feedback          string
	LastAnswerCorrect bool

	StartedAt time.Time
	EndedAt   time.Time
	EndReason EndReason
}

// Running reports whether the session accepts ticks and input.
func (s State) Running() bool {
	return s.Phase == PhaseActive || s.Phase == PhaseFeedback
}

// AwaitingAnswer reports whether a question is open for submission.
func (s State) AwaitingAnswer() bool {
	return s.Phase == PhaseActive && s.CurrentQuestion != nil
}

func (s State) clone() State {
	if s.CurrentQuestion != nil {
		q := *s.CurrentQuestion
		s.CurrentQuestion = &q
	}
	return s
}
