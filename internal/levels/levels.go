package levels

import "fmt"

// MinLevel and MaxLevel bound the difficulty ladder.
const (
	MinLevel = 1
	MaxLevel = 6
)

// Config describes one difficulty level.
type Config struct {
	Level int
	Name  string

	// Min and Max bound the number domain (inclusive) used by the
	// range-driven question templates.
	Min int
	Max int

	// Tag is a display tag (a color name) for the level badge.
	Tag string
}

var table = [MaxLevel]Config{
	{Level: 1, Name: "Starter", Min: 1, Max: 10, Tag: "green"},
	{Level: 2, Name: "Warmed Up", Min: 1, Max: 25, Tag: "blue"},
	{Level: 3, Name: "Getting Hot", Min: 1, Max: 50, Tag: "purple"},
	{Level: 4, Name: "On Fire", Min: 1, Max: 100, Tag: "orange"},
	{Level: 5, Name: "Math Demon", Min: 1, Max: 1000, Tag: "red"},
	{Level: 6, Name: "Calculation God", Min: 1, Max: 10000, Tag: "pink"},
}

// Get returns the config for the given level. Out-of-range levels are
// clamped to the nearest valid level.
func Get(level int) Config {
	return table[Clamp(level)-1]
}

// All returns every level config in ascending order.
func All() []Config {
	out := make([]Config, len(table))
	copy(out, table[:])
	return out
}

// Clamp bounds a level to [MinLevel, MaxLevel].
func Clamp(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// Label returns a short "L3 Getting Hot" style label.
func (c Config) Label() string {
	return fmt.Sprintf("L%d %s", c.Level, c.Name)
}
