package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)

	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)

	boxChecked   = "☑"
	boxUnchecked = "☐"
)

const progressBarWidth = 28

// progressBar renders done out of total as a fixed width bar followed by a percentage.
func progressBar(done, total, width int) string {
	if total <= 0 {
		return ""
	}

	filled := min(done*width/total, width)

	return fmt.Sprintf("[%s%s] %d%%",
		successStyle.Render(strings.Repeat("█", filled)),
		mutedStyle.Render(strings.Repeat("░", width-filled)),
		percent(done, total),
	)
}

func percent(done, total int) int {
	if total <= 0 {
		return 0
	}

	// rounded to the nearest whole percent
	return (done*100 + total/2) / total
}
