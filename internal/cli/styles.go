package cli

import "github.com/charmbracelet/lipgloss"

// Styles for command output. Adaptive colors pick the light or dark
// variant from the terminal background.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliError   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
)

func symError() string { return cliError.Render("✖") }

// highlight renders a next-step command.
func highlight(s string) string { return cliSuccess.Render(s) }
