package session

import "time"

// TickInterval is the real time represented by one Tick.
const TickInterval = time.Second

// Tick advances the session clock by one second. Zen sessions never count
// down. Reaching zero ends the session. Tick returns whether the session
// is still running, so the caller knows whether to schedule another tick.
func (m *Machine) Tick() bool {
	if !m.state.Running() {
		return false
	}
	if !m.state.Mode.Timed {
		return true
	}
	if m.state.TimeLeft > 0 {
		m.state.TimeLeft--
	}
	if m.state.TimeLeft == 0 {
		m.end(EndTime)
		return false
	}
	return true
}
