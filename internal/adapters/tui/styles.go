package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/swu/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Blue).
			Foreground(style.White)

	targetStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	panelStyle = lipgloss.NewStyle().
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(style.Green).
			Bold(true)

	failureStyle = lipgloss.NewStyle().
			Foreground(style.Red).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	dangerStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	logPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(style.Slate)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(style.Yellow).
			Padding(1, 4)
)
