package app

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/mathrush/internal/config"
	"github.com/abhisek/mathrush/internal/logging"
	"github.com/abhisek/mathrush/internal/problemgen"
	"github.com/abhisek/mathrush/internal/router"
	"github.com/abhisek/mathrush/internal/screen"
	"github.com/abhisek/mathrush/internal/screens/history"
	"github.com/abhisek/mathrush/internal/screens/home"
	"github.com/abhisek/mathrush/internal/screens/levelmap"
	sessionscreen "github.com/abhisek/mathrush/internal/screens/session"
	"github.com/abhisek/mathrush/internal/screens/trophies"
	"github.com/abhisek/mathrush/internal/screens/welcome"
	"github.com/abhisek/mathrush/internal/session"
	"github.com/abhisek/mathrush/internal/ui/layout"
)

// Options holds the dependencies of the app.
type Options struct {
	Config *config.Config
	Logger logrus.FieldLogger

	// Direct skips the splash and menu and starts Config.Mode right away.
	Direct bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	games  *gameFactory
	direct string
	width  int
	height int
}

// gameFactory builds game screens sharing one RNG, journal and scoreboard.
type gameFactory struct {
	cfg      *config.Config
	rng      *rand.Rand
	gen      problemgen.Generator
	scores   *history.Log
	observer session.Observer
}

func newGameFactory(cfg *config.Config, log logrus.FieldLogger) *gameFactory {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := problemgen.NewRand(seed)
	log.WithField("seed", seed).Debug("question generator seeded")
	scores := history.NewLog()
	return &gameFactory{
		cfg:      cfg,
		rng:      rng,
		gen:      problemgen.New(rng, problemgen.DefaultConfig()),
		scores:   scores,
		observer: session.Observers{logging.NewJournal(log), scores},
	}
}

// play builds a game screen for modeID. Play again on the summary
// starts another game in the same mode.
func (f *gameFactory) play(modeID string) screen.Screen {
	m := session.NewMachine(f.gen, f.rng, session.Options{
		DedupeAchievements: f.cfg.DedupeAchievements,
		Observer:           f.observer,
	})
	return sessionscreen.New(m, modeID, f.cfg.FeedbackDelay, func() screen.Screen {
		return f.play(modeID)
	})
}

// levelMap builds the level map, marking the levels reached so far.
func (f *gameFactory) levelMap() screen.Screen {
	return levelmap.New(f.scores.HighestLevel(), f.rng)
}

// newAppModel creates a new AppModel starting at the welcome screen.
func newAppModel(opts Options) AppModel {
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	games := newGameFactory(opts.Config, log)

	homeFactory := func() screen.Screen {
		return home.New(games.play,
			home.Link{Label: "Scores", Open: func() screen.Screen {
				return history.New(games.scores)
			}},
			home.Link{Label: "Trophies", Open: func() screen.Screen {
				return trophies.New(games.scores)
			}},
			home.Link{Label: "Levels", Open: games.levelMap},
		)
	}

	m := AppModel{games: games}
	if opts.Direct {
		m.router = router.New(homeFactory())
		m.direct = opts.Config.Mode
	} else {
		m.router = router.New(welcome.New(homeFactory))
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	if m.direct != "" {
		game := m.games.play(m.direct)
		return func() tea.Msg { return router.PushScreenMsg{Screen: game} }
	}
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current window size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	var footerHints []layout.KeyHint
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if kp, ok := active.(screen.KeyHintProvider); ok {
			footerHints = kp.KeyHints()
		}
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Config == nil {
		return errors.New("run app: missing config")
	}
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
