package levels

// Threshold returns how many correct answers separate level-ups at the
// given level.
func Threshold(level int) int {
	switch {
	case level < 4:
		return 5
	case level == 4:
		return 8
	default:
		return 12
	}
}

// ShouldLevelUp reports whether a correct answer that brought the running
// total to correctAnswers promotes the player from level.
func ShouldLevelUp(level, correctAnswers int) bool {
	if level >= MaxLevel || correctAnswers <= 0 {
		return false
	}
	return correctAnswers%Threshold(level) == 0
}

// Next returns the level after a correct answer. Levels never go down and
// never exceed MaxLevel.
func Next(level, correctAnswers int) int {
	if ShouldLevelUp(level, correctAnswers) {
		return level + 1
	}
	return level
}
