package session

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathrush/internal/problemgen"
	"github.com/abhisek/mathrush/internal/router"
	"github.com/abhisek/mathrush/internal/screen"
	"github.com/abhisek/mathrush/internal/screens/summary"
	sess "github.com/abhisek/mathrush/internal/session"
)

type fixedGenerator struct{}

func (fixedGenerator) Generate(int) problemgen.Question {
	return problemgen.Question{Text: "What is 2 + 2?", Answer: 4, Hint: "Count on from two", Category: problemgen.CategoryBasic}
}

type zeroRand struct{}

func (zeroRand) IntN(int) int { return 0 }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testSessionScreen(t *testing.T, modeID string) *SessionScreen {
	t.Helper()
	m := sess.NewMachine(fixedGenerator{}, zeroRand{}, sess.Options{
		NewID: func() string { return "test-session" },
	})
	s := New(m, modeID, 0, nil)
	s.Init()
	return s
}

// tick builds the timer message the screen's own tick chain would deliver.
func tick(s *SessionScreen) timerTickMsg {
	return timerTickMsg{SessionID: s.machine.State().SessionID}
}

func typeAnswer(s *SessionScreen, answer string) {
	for _, r := range answer {
		s.Update(keyPress(r))
	}
}

// expectSummary runs cmd and checks that it replaces the game with the summary.
func expectSummary(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg := cmd()
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := replace.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("expected summary screen, got %T", replace.Screen)
	}
}

func TestSessionScreen_InitStartsSession(t *testing.T) {
	s := testSessionScreen(t, "classic")
	st := s.machine.State()
	if st.Phase != sess.PhaseActive {
		t.Fatalf("expected active phase, got %s", st.Phase)
	}
	if st.CurrentQuestion == nil {
		t.Fatal("expected a question")
	}
	if s.Title() != "Classic" {
		t.Errorf("Title = %q, want Classic", s.Title())
	}
}

func TestSessionScreen_CorrectAnswerThenDraw(t *testing.T) {
	s := testSessionScreen(t, "classic")

	typeAnswer(s, "4")
	if s.input.Value() != "4" {
		t.Fatalf("expected typed answer, got %q", s.input.Value())
	}

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("submitting should schedule the next draw")
	}
	st := s.machine.State()
	if st.Phase != sess.PhaseFeedback {
		t.Fatalf("expected feedback phase, got %s", st.Phase)
	}
	if st.Score != 60 {
		t.Errorf("score = %d, want 60", st.Score)
	}

	s.Update(cmd())
	st = s.machine.State()
	if st.Phase != sess.PhaseActive {
		t.Errorf("expected active phase after draw, got %s", st.Phase)
	}
	if s.input.Value() != "" {
		t.Error("input should be cleared for the next question")
	}
}

func TestSessionScreen_WrongAnswerShowsCorrectOne(t *testing.T) {
	s := testSessionScreen(t, "classic")
	typeAnswer(s, "5")
	s.Update(specialKey(tea.KeyEnter))

	view := s.View(100, 30)
	if !strings.Contains(view, "Answer: 4") {
		t.Error("feedback should reveal the correct answer")
	}
	if s.machine.State().Energy != 85 {
		t.Errorf("energy = %d, want 85", s.machine.State().Energy)
	}
}

func TestSessionScreen_EmptySubmitIgnored(t *testing.T) {
	s := testSessionScreen(t, "classic")
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("empty submit should not produce a command")
	}
	if s.machine.State().TotalQuestions != 0 {
		t.Error("empty submit should not count as an answer")
	}
}

func TestSessionScreen_LettersFiltered(t *testing.T) {
	s := testSessionScreen(t, "classic")
	typeAnswer(s, "a1b")
	if s.input.Value() != "1" {
		t.Errorf("expected only digits, got %q", s.input.Value())
	}
}

func TestSessionScreen_HintKey(t *testing.T) {
	s := testSessionScreen(t, "classic")
	s.Update(keyPress('?'))

	st := s.machine.State()
	if !st.HintRevealed {
		t.Fatal("hint should be revealed")
	}
	if st.Energy != 95 {
		t.Errorf("energy = %d, want 95", st.Energy)
	}
	if s.input.Value() != "" {
		t.Error("? should not be typed into the answer")
	}
	if !strings.Contains(s.View(100, 30), "Count on from two") {
		t.Error("view should show the hint")
	}
}

func TestSessionScreen_EscEndsGame(t *testing.T) {
	s := testSessionScreen(t, "classic")
	_, cmd := s.Update(specialKey(tea.KeyEscape))
	expectSummary(t, cmd)

	st := s.machine.State()
	if st.Phase != sess.PhaseEnded || st.EndReason != sess.EndQuit {
		t.Errorf("expected quit end, got %s/%q", st.Phase, st.EndReason)
	}

	if _, cmd := s.Update(specialKey(tea.KeyEscape)); cmd != nil {
		t.Error("summary should only be shown once")
	}
}

func TestSessionScreen_TimerRunsOut(t *testing.T) {
	s := testSessionScreen(t, "blitz")

	var cmd tea.Cmd
	for i := 0; i < 29; i++ {
		_, cmd = s.Update(tick(s))
		if cmd == nil {
			t.Fatalf("tick %d should schedule another tick", i+1)
		}
	}
	_, cmd = s.Update(tick(s))
	expectSummary(t, cmd)

	if s.machine.State().EndReason != sess.EndTime {
		t.Errorf("end reason = %q, want time", s.machine.State().EndReason)
	}
	if _, cmd := s.Update(tick(s)); cmd != nil {
		t.Error("ticks should stop after the game ends")
	}
}

func TestSessionScreen_ZenShowsInfinity(t *testing.T) {
	s := testSessionScreen(t, "zen")
	for i := 0; i < 100; i++ {
		s.Update(tick(s))
	}
	if !s.machine.State().Running() {
		t.Fatal("zen should never time out")
	}
	if !strings.Contains(s.View(100, 30), "∞") {
		t.Error("zen view should show an infinite clock")
	}
}

func TestSessionScreen_StaleDrawIgnored(t *testing.T) {
	s := testSessionScreen(t, "classic")
	typeAnswer(s, "4")
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	draw := cmd()

	s.Update(specialKey(tea.KeyEscape))
	s.Update(draw)
	if s.machine.State().Phase != sess.PhaseEnded {
		t.Error("a stale draw must not revive an ended game")
	}
}

func TestSessionScreen_EnergyDepletionEndsGame(t *testing.T) {
	s := testSessionScreen(t, "zen")
	var cmd tea.Cmd
	for i := 0; i < 7; i++ {
		typeAnswer(s, "0")
		_, cmd = s.Update(specialKey(tea.KeyEnter))
		if s.machine.State().Phase == sess.PhaseEnded {
			break
		}
		s.Update(cmd())
	}
	expectSummary(t, cmd)
	if s.machine.State().EndReason != sess.EndEnergy {
		t.Errorf("end reason = %q, want energy", s.machine.State().EndReason)
	}
}

func TestSessionScreen_UnknownMode(t *testing.T) {
	s := testSessionScreen(t, "speedrun")
	if !strings.Contains(s.View(80, 24), "Error") {
		t.Error("unknown mode should render an error")
	}
	_, cmd := s.Update(keyPress('x'))
	if cmd == nil {
		t.Fatal("any key should go back")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestSessionScreen_StatusAndHints(t *testing.T) {
	s := testSessionScreen(t, "classic")
	if got := s.Status(); !strings.Contains(got, "◆ 0") {
		t.Errorf("status = %q", got)
	}
	if len(s.KeyHints()) != 3 {
		t.Errorf("expected 3 key hints while answering, got %d", len(s.KeyHints()))
	}

	typeAnswer(s, "4")
	s.Update(specialKey(tea.KeyEnter))
	if len(s.KeyHints()) != 1 {
		t.Errorf("expected 1 key hint during feedback, got %d", len(s.KeyHints()))
	}
}

// playAgainRouter drives game A to its summary with Esc, then replays
// into game B through the summary's Enter, as a player would.
func playAgainRouter(t *testing.T) (*router.Router, *SessionScreen, *SessionScreen) {
	t.Helper()
	ids := 0
	var games []*SessionScreen
	var play func() screen.Screen
	play = func() screen.Screen {
		m := sess.NewMachine(fixedGenerator{}, zeroRand{}, sess.Options{
			NewID: func() string {
				ids++
				return fmt.Sprintf("game-%d", ids)
			},
		})
		g := New(m, "classic", time.Second, play)
		games = append(games, g)
		return g
	}

	r := router.New(play())
	a := games[0]
	a.Init()

	deliver := func(msg tea.Msg) {
		cmd := r.Update(msg)
		for cmd != nil {
			next := cmd()
			switch next.(type) {
			case router.ReplaceScreenMsg, router.PushScreenMsg, router.PopScreenMsg:
				cmd = r.Update(next)
			default:
				cmd = nil
			}
		}
	}
	deliver(specialKey(tea.KeyEscape))
	deliver(specialKey(tea.KeyEnter))

	if len(games) != 2 {
		t.Fatalf("expected a second game after play again, got %d games", len(games))
	}
	return r, a, games[1]
}

func TestSessionScreen_TickFromPreviousGameDropped(t *testing.T) {
	r, a, b := playAgainRouter(t)
	if a.sessionID() == b.sessionID() {
		t.Fatal("games should have distinct session IDs")
	}

	before := b.machine.State().TimeLeft
	if cmd := r.Update(timerTickMsg{SessionID: a.sessionID()}); cmd != nil {
		t.Error("a stale tick must not start a second tick chain")
	}
	if got := b.machine.State().TimeLeft; got != before {
		t.Errorf("TimeLeft = %d after stale tick, want %d", got, before)
	}

	if cmd := r.Update(tick(b)); cmd == nil {
		t.Error("the game's own tick should schedule the next one")
	}
	if got := b.machine.State().TimeLeft; got != before-1 {
		t.Errorf("TimeLeft = %d after own tick, want %d", got, before-1)
	}
}

func TestSessionScreen_DrawFromPreviousGameDropped(t *testing.T) {
	s := testSessionScreen(t, "classic")
	typeAnswer(s, "4")
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	draw, ok := cmd().(drawMsg)
	if !ok {
		t.Fatal("expected a draw message")
	}

	draw.SessionID = "some-other-game"
	s.Update(draw)
	if s.machine.State().Phase != sess.PhaseFeedback {
		t.Error("a draw from another game must not skip the feedback delay")
	}
}

var _ screen.Screen = (*SessionScreen)(nil)
