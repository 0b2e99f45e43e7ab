package session

// timerTickMsg is sent every second to update the countdown. SessionID
// ties the tick to the game that scheduled it; ticks still in flight
// when that game ends are dropped by the next game.
type timerTickMsg struct {
	SessionID string
}

// drawMsg is sent when the feedback delay ends. Token identifies the
// draw it was scheduled for.
type drawMsg struct {
	SessionID string
	Token     uint64
}
