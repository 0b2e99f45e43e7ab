package session

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathrush/internal/router"
	"github.com/abhisek/mathrush/internal/screen"
	sess "github.com/abhisek/mathrush/internal/session"
	"github.com/abhisek/mathrush/internal/ui/components"
	"github.com/abhisek/mathrush/internal/ui/layout"
)

// SessionScreen implements screen.Screen for a running game.
type SessionScreen struct {
	machine   *sess.Machine
	modeID    string
	delay     time.Duration
	playAgain func() screen.Screen

	input    components.TextInput
	errMsg   string
	finished bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)

// New creates a SessionScreen that plays modeID on machine. delay is how
// long feedback stays up before the next question. playAgain is handed to
// the summary screen and may be nil.
func New(machine *sess.Machine, modeID string, delay time.Duration, playAgain func() screen.Screen) *SessionScreen {
	return &SessionScreen{
		machine:   machine,
		modeID:    modeID,
		delay:     delay,
		playAgain: playAgain,
		input:     components.NewTextInput("Type your answer...", true, 12),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	if err := s.machine.Start(s.modeID); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	return tea.Batch(
		tickCmd(s.sessionID()),
		s.input.Init(),
	)
}

func (s *SessionScreen) Title() string {
	return s.machine.State().Mode.Name
}

// Status shows the score and streak in the header.
func (s *SessionScreen) Status() string {
	st := s.machine.State()
	return layout.FormatStatus(st.Score, st.Streak)
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{
			{Key: "any key", Description: "Back"},
		}
	}
	if s.machine.State().Phase == sess.PhaseFeedback {
		return []layout.KeyHint{
			{Key: "Esc", Description: "End game"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "?", Description: "Hint"},
		{Key: "Esc", Description: "End game"},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if msg.SessionID != s.sessionID() {
			return s, nil
		}
		return s.handleTimerTick()

	case drawMsg:
		if msg.SessionID != s.sessionID() {
			return s, nil
		}
		if s.machine.DrawNext(msg.Token) {
			s.input.Reset()
		}
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.machine.State().AwaitingAnswer() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SessionScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.finished || s.errMsg != "" {
		return s, nil
	}
	if !s.machine.Tick() {
		return s, s.finish()
	}
	return s, tickCmd(s.sessionID())
}

func (s *SessionScreen) sessionID() string {
	return s.machine.State().SessionID
}

func (s *SessionScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.finished {
		return s, nil
	}

	switch msg.String() {
	case "esc":
		s.machine.End()
		return s, s.finish()
	case "enter":
		return s.submitAnswer()
	case "?":
		if s.machine.RequestHint() && !s.machine.State().Running() {
			return s, s.finish()
		}
		return s, nil
	}

	if s.machine.State().AwaitingAnswer() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// submitAnswer resolves the current question and schedules the next draw.
func (s *SessionScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	res := s.machine.Submit(s.input.Value())
	if !res.Accepted {
		return s, nil
	}
	s.input.Submit(res.Correct)
	if res.Ended {
		return s, s.finish()
	}
	return s, drawCmd(s.delay, drawMsg{SessionID: s.sessionID(), Token: res.DrawToken})
}

// finish swaps this screen for the summary. It runs at most once.
func (s *SessionScreen) finish() tea.Cmd {
	if s.finished {
		return nil
	}
	s.finished = true
	next := newSummaryScreenAdapter(s.machine.Summary(), s.playAgain)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// tickCmd returns a one-second tick command for the given game.
func tickCmd(sessionID string) tea.Cmd {
	return tea.Tick(sess.TickInterval, func(time.Time) tea.Msg {
		return timerTickMsg{SessionID: sessionID}
	})
}

func drawCmd(delay time.Duration, msg drawMsg) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return msg
	})
}
