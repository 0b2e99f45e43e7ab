package session

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathrush/internal/achievements"
	"github.com/abhisek/mathrush/internal/levels"
	"github.com/abhisek/mathrush/internal/problemgen"
	"github.com/abhisek/mathrush/internal/scoring"
)

// DefaultFeedbackDelay is how long answer feedback stays on screen before
// the next question is drawn.
const DefaultFeedbackDelay = 1500 * time.Millisecond

// drawTokens issues draw tokens for every Machine in the process, so a
// draw scheduled by one game never matches a token of another.
var drawTokens atomic.Uint64

var praise = []string{"Nice!", "Great!", "Excellent!", "Perfect!", "Brilliant!"}

// Options configures a Machine. The zero value is usable.
type Options struct {
	// DedupeAchievements stops score and level achievements from being
	// logged again once earned.
	DedupeAchievements bool

	// Observer receives every session event (nil to disable).
	Observer Observer

	// Now and NewID are overridable for tests.
	Now   func() time.Time
	NewID func() string
}

// Machine is the session state machine. It is not safe for concurrent
// use; the UI drives it from a single event loop.
type Machine struct {
	gen  problemgen.Generator
	rng  problemgen.Rand
	opts Options

	state   State
	tracker *achievements.Tracker

	// drawToken identifies the pending deferred draw. Any transition that
	// invalidates the pending draw replaces it with a fresh token.
	drawToken uint64
}

// SubmitResult tells the caller what Submit did.
type SubmitResult struct {
	// Accepted is false when the submission was ignored.
	Accepted bool
	Correct  bool
	LevelUp  bool
	Ended    bool

	// DrawToken must be passed to DrawNext after the feedback delay.
	// Only meaningful when Accepted and not Ended.
	DrawToken uint64

	// Unlocked lists achievements appended by this answer.
	Unlocked []achievements.Achievement
}

// NewMachine creates an idle Machine. The generator produces questions and
// rng picks praise messages.
func NewMachine(gen problemgen.Generator, rng problemgen.Rand, opts Options) *Machine {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	return &Machine{
		gen:     gen,
		rng:     rng,
		opts:    opts,
		state:   State{Phase: PhaseIdle, Level: levels.MinLevel, Energy: scoring.MaxEnergy, Mood: MoodNeutral},
		tracker: achievements.NewTracker(opts.DedupeAchievements),
	}
}

// Start begins a new session in the given mode, discarding any previous
// one. A pending draw from the previous session is invalidated.
func (m *Machine) Start(modeID string) error {
	mode, err := LookupMode(modeID)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	m.nextDrawToken()
	m.tracker = achievements.NewTracker(m.opts.DedupeAchievements)
	m.state = State{
		SessionID: m.opts.NewID(),
		Mode:      mode,
		Phase:     PhaseActive,
		Energy:    scoring.MaxEnergy,
		Level:     levels.MinLevel,
		TimeLeft:  mode.Seconds,
		Mood:      MoodNeutral,
		StartedAt: m.opts.Now(),
	}
	m.drawQuestion()
	m.emit(Event{Kind: EventStart})
	return nil
}

// Submit resolves the current question with the player's raw input.
// Empty input and submissions outside the answering phase are ignored.
// Input that is not a number counts as a wrong answer.
func (m *Machine) Submit(raw string) SubmitResult {
	if !m.state.AwaitingAnswer() {
		return SubmitResult{}
	}
	if strings.TrimSpace(raw) == "" {
		return SubmitResult{}
	}

	q := *m.state.CurrentQuestion
	correct := problemgen.CheckAnswer(raw, q)

	s := &m.state
	s.TotalQuestions++
	s.HintRevealed = false
	s.LastAnswerCorrect = correct

	res := SubmitResult{Accepted: true, Correct: correct}
	if correct {
		res.LevelUp, res.Unlocked = m.applyCorrect()
	} else {
		res.Ended = m.applyWrong(q)
	}
	m.emit(Event{Kind: EventAnswer, Input: raw, Correct: correct, Category: q.Category})
	if res.LevelUp {
		m.emit(Event{Kind: EventLevelUp, FromLevel: s.Level - 1})
	}
	for _, a := range res.Unlocked {
		m.emit(Event{Kind: EventAchievement, Achievement: a})
	}

	if res.Ended {
		m.end(EndEnergy)
		return res
	}

	s.Phase = PhaseFeedback
	res.DrawToken = m.nextDrawToken()
	return res
}

func (m *Machine) applyCorrect() (bool, []achievements.Achievement) {
	s := &m.state
	s.Score += scoring.PointsForCorrect(s.Level, s.Streak)
	s.Streak++
	if s.Streak > s.BestStreak {
		s.BestStreak = s.Streak
	}
	s.CorrectAnswers++
	s.Energy = scoring.GainEnergy(s.Energy)
	s.Mood = MoodHappy
	s.Feedback = praise[m.rng.IntN(len(praise))]

	levelUp := levels.ShouldLevelUp(s.Level, s.CorrectAnswers)
	if levelUp {
		from := s.Level
		s.Level++
		s.Mood = MoodExcited
		if from >= 4 {
			s.Feedback = "INSANE LEVEL UP!"
		} else {
			s.Feedback = "Level Up!"
		}
	}

	return levelUp, m.tracker.Record(s.Score, s.Streak, s.Level)
}

// applyWrong reports whether the energy loss ended the session.
func (m *Machine) applyWrong(q problemgen.Question) bool {
	s := &m.state
	s.Streak = 0
	s.Mood = MoodConfused
	s.Feedback = "Answer: " + q.AnswerString()

	var depleted bool
	s.Energy, depleted = scoring.LoseEnergy(s.Energy, s.Level)
	return depleted
}

// DrawNext draws the next question after the feedback delay. It returns
// false and does nothing when the token is stale, which happens when the
// session ended or restarted while the draw was pending.
func (m *Machine) DrawNext(token uint64) bool {
	if m.state.Phase != PhaseFeedback || token != m.drawToken {
		return false
	}
	m.drawQuestion()
	m.state.Feedback = ""
	m.state.Mood = MoodFocused
	m.state.Phase = PhaseActive
	return true
}

// RequestHint reveals the hint for the current question and charges the
// hint penalty. Every request is charged. It returns false when no
// question is open. A hint that drains the last energy ends the session.
func (m *Machine) RequestHint() bool {
	if !m.state.AwaitingAnswer() {
		return false
	}
	s := &m.state
	s.Score, s.Energy = scoring.ApplyHint(s.Score, s.Energy, s.Level)
	s.HintRevealed = true
	m.emit(Event{Kind: EventHint})
	if s.Energy == 0 {
		m.end(EndEnergy)
	}
	return true
}

// End forces the running session to end. It returns false if no session
// is running.
func (m *Machine) End() bool {
	if !m.state.Running() {
		return false
	}
	m.end(EndQuit)
	return true
}

func (m *Machine) nextDrawToken() uint64 {
	m.drawToken = drawTokens.Add(1)
	return m.drawToken
}

func (m *Machine) end(reason EndReason) {
	m.nextDrawToken()
	s := &m.state
	s.Phase = PhaseEnded
	s.CurrentQuestion = nil
	s.HintRevealed = false
	s.Mood = MoodNeutral
	s.EndReason = reason
	s.EndedAt = m.opts.Now()
	m.emit(Event{Kind: EventEnd})
}

func (m *Machine) drawQuestion() {
	q := m.gen.Generate(m.state.Level)
	m.state.CurrentQuestion = &q
	m.state.HintRevealed = false
}

func (m *Machine) emit(e Event) {
	if m.opts.Observer == nil {
		return
	}
	e.State = m.state.clone()
	m.opts.Observer.Observe(e)
}

// State returns a copy of the current state.
func (m *Machine) State() State {
	return m.state.clone()
}

// Achievements returns the full achievement log of the current session.
func (m *Machine) Achievements() []achievements.Achievement {
	return m.tracker.All()
}
