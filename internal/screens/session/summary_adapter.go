package session

import (
	"github.com/abhisek/mathrush/internal/screen"
	"github.com/abhisek/mathrush/internal/screens/summary"
	sess "github.com/abhisek/mathrush/internal/session"
)

// newSummaryScreenAdapter creates a summary screen from session data.
func newSummaryScreenAdapter(s *sess.Summary, playAgain func() screen.Screen) screen.Screen {
	return summary.New(s, playAgain)
}
