package style

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/swu/internal/core/domain"
)

// BarColor returns the fill color for a progress bar mode.
func BarColor(mode domain.BarMode) lipgloss.Color {
	switch mode {
	case domain.BarRunning:
		return Blue
	case domain.BarSuccess:
		return Green
	case domain.BarFailure:
		return Red
	default:
		return Slate
	}
}

// ConnectionIcon returns the glyph and color for a connection state.
func ConnectionIcon(state domain.ConnectionState) (string, lipgloss.Color) {
	switch state {
	case domain.ConnectionOpen:
		return Dot, Green
	case domain.ConnectionClosed:
		return Dot, Red
	default:
		return Circle, Yellow
	}
}

// PanelTitle returns the headline shown for a status panel.
func PanelTitle(panel domain.Panel) string {
	switch panel {
	case domain.PanelIdle:
		return "Waiting for an update"
	case domain.PanelRun:
		return "Update in progress"
	case domain.PanelSuccess:
		return Check + " Update successful"
	case domain.PanelFailure:
		return Cross + " Update failed"
	case domain.PanelDone:
		return "Update finished"
	default:
		return ""
	}
}
