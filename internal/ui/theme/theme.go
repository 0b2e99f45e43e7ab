package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, bright arcade tones on a dark background
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
)

// Level badge colors, keyed by the level tag.
var levelColors = map[string]color.Color{
	"green":  lipgloss.Color("#4ADE80"),
	"blue":   lipgloss.Color("#60A5FA"),
	"purple": lipgloss.Color("#C084FC"),
	"orange": lipgloss.Color("#FB923C"),
	"red":    lipgloss.Color("#F87171"),
	"pink":   lipgloss.Color("#F472B6"),
}

// LevelColor returns the badge color for a level tag.
func LevelColor(tag string) color.Color {
	if c, ok := levelColors[tag]; ok {
		return c
	}
	return TextDim
}

// Mascot colors, keyed by mood.
var moodColors = map[string]color.Color{
	"neutral":  lipgloss.Color("#4B5563"),
	"happy":    lipgloss.Color("#22C55E"),
	"excited":  lipgloss.Color("#3B82F6"),
	"focused":  lipgloss.Color("#A855F7"),
	"confused": lipgloss.Color("#F97316"),
}

// MoodColor returns the mascot color for a mood.
func MoodColor(mood string) color.Color {
	if c, ok := moodColors[mood]; ok {
		return c
	}
	return Primary
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
