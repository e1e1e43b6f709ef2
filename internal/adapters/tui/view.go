package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/swu/internal/core/domain"
	"go.trai.ch/swu/internal/ui/style"
)

// View renders the model.
func (m *Model) View() string {
	if m.Restarting {
		return m.viewRestart()
	}

	sections := []string{
		m.viewHeader(),
		"",
		m.viewPanel(),
		m.viewProgress(),
		logPaneStyle.Render(m.logPane.View()),
		m.viewFooter(),
	}
	return strings.Join(sections, "\n")
}

func (m *Model) viewHeader() string {
	icon, color := style.ConnectionIcon(m.Connection)
	state := lipgloss.NewStyle().Foreground(color).Render(icon + " " + m.Connection.String())
	left := titleStyle.Render("swu") + " " + targetStyle.Render(m.Target)

	gap := max(m.Width-lipgloss.Width(left)-lipgloss.Width(state), 1)
	return left + strings.Repeat(" ", gap) + state
}

func (m *Model) viewPanel() string {
	title := style.PanelTitle(m.Panel)
	switch m.Panel {
	case domain.PanelNone:
		return mutedStyle.Render("Waiting for the update server")
	case domain.PanelSuccess:
		return successStyle.Render(title)
	case domain.PanelFailure:
		return failureStyle.Render(title)
	case domain.PanelRun:
		if m.Mode == domain.BarRunning {
			return m.spin.View() + " " + panelStyle.Render(title)
		}
	}
	return panelStyle.Render(title)
}

func (m *Model) viewProgress() string {
	label := m.Progress.StepLabel
	text := m.Progress.Text()

	width := m.Width - lipgloss.Width(label) - lipgloss.Width(text) - 2
	bar := m.bar
	bar.Width = max(width, minBarWidth)

	parts := make([]string, 0, 3)
	if label != "" {
		parts = append(parts, label)
	}
	parts = append(parts, bar.ViewAs(m.Progress.Fraction()))
	if text != "" {
		parts = append(parts, text)
	}
	return strings.Join(parts, " ")
}

func (m *Model) viewFooter() string {
	return mutedStyle.Render("r restart • ↑/↓ scroll • q quit")
}

func (m *Model) viewRestart() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		panelStyle.Render("Restarting"),
		"",
		m.spin.View()+" waiting for the update server to come back",
	)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, modalStyle.Render(body))
}
