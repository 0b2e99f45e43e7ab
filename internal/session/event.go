package session

import (
	"github.com/abhisek/mathrush/internal/achievements"
	"github.com/abhisek/mathrush/internal/problemgen"
)

// EventKind names a session event.
type EventKind string

const (
	EventStart       EventKind = "start"
	EventAnswer      EventKind = "answer"
	EventLevelUp     EventKind = "level_up"
	EventAchievement EventKind = "achievement"
	EventHint        EventKind = "hint"
	EventEnd         EventKind = "end"
)

// Event is emitted to the Observer after each state transition. State is
// a copy taken after the transition was applied.
type Event struct {
	Kind  EventKind
	State State

	// Set for EventAnswer.
	Input    string
	Correct  bool
	Category problemgen.Category

	// Set for EventLevelUp.
	FromLevel int

	// Set for EventAchievement.
	Achievement achievements.Achievement
}

// Observer receives session events. Implementations must not call back
// into the Machine.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// Observe implements Observer.
func (f ObserverFunc) Observe(e Event) { f(e) }

// Observers fans each event out to every observer in order.
type Observers []Observer

// Observe implements Observer.
func (o Observers) Observe(e Event) {
	for _, obs := range o {
		if obs != nil {
			obs.Observe(e)
		}
	}
}
