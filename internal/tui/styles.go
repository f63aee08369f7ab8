package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/compasshq/compass/internal/constants"
)

//nolint:gochecknoglobals // Intentional package-level constants for TUI styling API
var (
	// ColorPrimary is blue, used for active states and primary labels.
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00D7FF"}

	// ColorSuccess is green, used for completed items.
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#00FF87"}

	// ColorWarning is yellow, used for attention-required items.
	ColorWarning = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD700"}

	// ColorError is red, used for error states.
	ColorError = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}

	// ColorMuted is gray, used for dim/secondary text.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#6C6C6C"}

	// StyleBold applies bold formatting to text.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleDim applies dim/faint formatting to text.
	StyleDim = lipgloss.NewStyle().Faint(true)
)

// OutputStyles holds the semantic styles used by TTY command output.
type OutputStyles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
}

// NewOutputStyles creates the default output styles.
func NewOutputStyles() *OutputStyles {
	return &OutputStyles{
		Success: lipgloss.NewStyle().Foreground(ColorSuccess),
		Error:   lipgloss.NewStyle().Foreground(ColorError),
		Warning: lipgloss.NewStyle().Foreground(ColorWarning),
		Info:    lipgloss.NewStyle(),
	}
}

// CheckNoColor disables colored output when the NO_COLOR environment
// variable is set or the terminal is dumb. Call at the start of commands.
func CheckNoColor() {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// TaskStatusIcon returns the display icon for a task status. Icon, color,
// and text are kept redundant so no single channel carries the state.
func TaskStatusIcon(status constants.TaskStatus) string {
	switch status {
	case constants.TaskStatusCompleted:
		return "✓"
	case constants.TaskStatusInProgress:
		return "◐"
	case constants.TaskStatusPending:
		return "○"
	default:
		return "?"
	}
}

// PriorityIcon returns the display marker for a task priority.
func PriorityIcon(priority constants.TaskPriority) string {
	switch priority {
	case constants.TaskPriorityHigh:
		return "!!"
	case constants.TaskPriorityMedium:
		return "!"
	default:
		return " "
	}
}
