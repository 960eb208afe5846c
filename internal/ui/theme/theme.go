package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette — calm, exam-room blues with amber highlights
var (
	Primary   = lipgloss.Color("#3B82F6") // Blue
	Secondary = lipgloss.Color("#06B6D4") // Cyan
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#10B981") // Emerald
	Error     = lipgloss.Color("#EF4444") // Red
	Warning   = lipgloss.Color("#FBBF24") // Gold
	Text      = lipgloss.Color("#F1F5F9") // Off-white
	TextDim   = lipgloss.Color("#8B99AD") // Slate
	BgDark    = lipgloss.Color("#0B1120") // Near-black navy
	BgCard    = lipgloss.Color("#1A2436") // Dark blue-gray
	Border    = lipgloss.Color("#2E3B52") // Muted blue
)

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

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Answered = lipgloss.NewStyle().
			Foreground(Secondary)
)

// DifficultyColor returns the badge color for a difficulty label.
func DifficultyColor(difficulty string) color.Color {
	switch difficulty {
	case "Easy":
		return Success
	case "Medium":
		return Warning
	case "Hard":
		return Error
	}
	return TextDim
}
