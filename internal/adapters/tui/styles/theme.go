package styles

import (
	"github.com/charmbracelet/lipgloss"

	"roadmap/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Difficulty colors
	DifficultyEasy   = lipgloss.Color("#10B981") // Green
	DifficultyMedium = lipgloss.Color("#F59E0B") // Amber
	DifficultyHard   = lipgloss.Color("#EF4444") // Red
	DifficultyOther  = lipgloss.Color("#6366F1") // Indigo

	// Progress bar gradient
	ProgressFrom = "#7C3AED"
	ProgressTo   = "#10B981"

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Roadmap rows
	Section = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#60A5FA")) // Blue

	Topic = lipgloss.NewStyle()

	TopicDone = lipgloss.NewStyle().
			Foreground(Muted).
			Strikethrough(true)

	Selected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	TimerRunning = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	// Tree indicators
	TreeBranch    = lipgloss.NewStyle().Foreground(Muted)
	TreeExpanded  = "▼ "
	TreeCollapsed = "▶ "

	CheckDone = "[x] "
	CheckOpen = "[ ] "

	// Detail panel
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(0, 1)

	// Status bar
	StatusKey = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Padding(0, 1).
			MarginRight(1)

	StatusText = lipgloss.NewStyle().
			Foreground(Muted)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// DifficultyColor returns the color for a difficulty's statistics bucket
func DifficultyColor(d domain.Difficulty) lipgloss.Color {
	switch d.Bucket() {
	case domain.DifficultyEasy:
		return DifficultyEasy
	case domain.DifficultyMedium:
		return DifficultyMedium
	case domain.DifficultyHard:
		return DifficultyHard
	default:
		return DifficultyOther
	}
}

// Difficulty renders a difficulty label in its color. Unset renders as "Other".
func Difficulty(d domain.Difficulty) string {
	label := string(d)
	if d == domain.DifficultyNone {
		label = string(domain.DifficultyOther)
	}
	return lipgloss.NewStyle().Foreground(DifficultyColor(d)).Render(label)
}
