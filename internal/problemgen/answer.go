package problemgen

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAnswer parses the player's raw input as a number. The whole
// trimmed input must be numeric: "12abc" is an error, not 12.
func ParseAnswer(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("empty answer")
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number: %w", err)
	}
	return f, nil
}

// CheckAnswer compares the player's input against the accepted answer.
// Input that does not parse as a number never matches.
func CheckAnswer(raw string, q Question) bool {
	f, err := ParseAnswer(raw)
	if err != nil {
		return false
	}
	return f == float64(q.Answer)
}
