package session

import (
	"errors"
	"fmt"
)

// ErrUnknownMode is returned by Start for a mode ID not in the mode table.
var ErrUnknownMode = errors.New("unknown game mode")

// ZenSeconds is the sentinel time shown for the untimed zen mode.
const ZenSeconds = 999

// Mode describes one way to play a session.
type Mode struct {
	ID          string
	Name        string
	Description string
	Seconds     int  // initial TimeLeft
	Timed       bool // false means the clock never runs
}

var modes = []Mode{
	{ID: "classic", Name: "Classic", Description: "Standard gameplay", Seconds: 60, Timed: true},
	{ID: "blitz", Name: "Blitz", Description: "Quick fire questions", Seconds: 30, Timed: true},
	{ID: "zen", Name: "Zen", Description: "No time pressure", Seconds: ZenSeconds, Timed: false},
	{ID: "challenge", Name: "Challenge", Description: "Harder questions", Seconds: 60, Timed: true},
}

// DefaultMode is the mode used when none is configured.
const DefaultMode = "classic"

// Modes returns the mode table in menu order.
func Modes() []Mode {
	out := make([]Mode, len(modes))
	copy(out, modes)
	return out
}

// LookupMode finds a mode by ID.
func LookupMode(id string) (Mode, error) {
	for _, m := range modes {
		if m.ID == id {
			return m, nil
		}
	}
	return Mode{}, fmt.Errorf("%w: %q", ErrUnknownMode, id)
}

// ModeIDs returns the IDs of every mode in menu order.
func ModeIDs() []string {
	ids := make([]string, len(modes))
	for i, m := range modes {
		ids[i] = m.ID
	}
	return ids
}
