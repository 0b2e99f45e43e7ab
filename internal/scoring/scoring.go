// Package scoring holds the pure point and energy arithmetic of a session.
package scoring

const (
	// BasePoints is awarded for every correct answer.
	BasePoints = 50

	// LevelBonus is awarded per level for every correct answer.
	LevelBonus = 10

	// StreakBonus is awarded per streak step held before the answer.
	StreakBonus = 5

	// MaxEnergy is the energy ceiling; sessions start full.
	MaxEnergy = 100

	// EnergyGainCorrect is restored on every correct answer.
	EnergyGainCorrect = 5

	// hardLevel is the level from which penalties get heavier.
	hardLevel = 5
)

// PointsForCorrect returns the points for a correct answer given the level
// and the streak held before the answer.
func PointsForCorrect(level, streak int) int {
	if streak < 0 {
		streak = 0
	}
	return BasePoints + level*LevelBonus + streak*StreakBonus
}

// EnergyLossWrong returns the energy lost on a wrong answer.
func EnergyLossWrong(level int) int {
	if level >= hardLevel {
		return 25
	}
	return 15
}

// HintPenalty returns the score and energy cost of revealing a hint.
func HintPenalty(level int) (score, energy int) {
	if level >= hardLevel {
		return 25, 10
	}
	return 10, 5
}

// ClampEnergy bounds energy to [0, MaxEnergy].
func ClampEnergy(energy int) int {
	if energy < 0 {
		return 0
	}
	if energy > MaxEnergy {
		return MaxEnergy
	}
	return energy
}

// GainEnergy applies the correct-answer energy gain.
func GainEnergy(energy int) int {
	return ClampEnergy(energy + EnergyGainCorrect)
}

// LoseEnergy applies the wrong-answer energy loss. depleted is true when
// the loss drains all remaining energy.
func LoseEnergy(energy, level int) (remaining int, depleted bool) {
	loss := EnergyLossWrong(level)
	return ClampEnergy(energy - loss), energy <= loss
}

// ApplyHint deducts the hint penalty, flooring both values at zero.
func ApplyHint(score, energy, level int) (newScore, newEnergy int) {
	scoreCost, energyCost := HintPenalty(level)
	newScore = score - scoreCost
	if newScore < 0 {
		newScore = 0
	}
	return newScore, ClampEnergy(energy - energyCost)
}

// Accuracy returns correct/total in [0, 1]; zero when nothing was answered.
func Accuracy(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(correct) / float64(total)
}
