// Package tui renders the update status as an interactive Bubble Tea program.
package tui

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/swu/internal/core/domain"
	"go.trai.ch/swu/internal/ui/output"
	"go.trai.ch/swu/internal/ui/style"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// title, blank, panel, progress, blank above the log pane and the footer below it.
	chromeHeight = 6
	minLogHeight = 3
	minBarWidth  = 10
)

// Model is the TUI state. The exported fields mirror what the presenter has shown.
type Model struct {
	Target     string
	Connection domain.ConnectionState
	Panel      domain.Panel
	Mode       domain.BarMode
	Progress   domain.Progress
	Logs       []domain.LogEntry
	Restarting bool
	Width      int
	Height     int

	// FollowLogs keeps the log pane scrolled to the newest line.
	FollowLogs bool

	onRestart func()
	bar       progress.Model
	spin      spinner.Model
	logPane   viewport.Model
}

// NewModel creates a model for target. onRestart is invoked, off the UI
// goroutine, when the user asks for a restart. It may be nil.
func NewModel(target string, w io.Writer, onRestart func()) Model {
	if w == nil {
		w = os.Stderr
	}

	out := output.New(w)
	lipgloss.SetColorProfile(out.Profile)

	spin := spinner.New()
	spin.Spinner = spinner.Line
	spin.Style = lipgloss.NewStyle().Foreground(style.Blue)

	m := Model{
		Target:     target,
		Width:      defaultWidth,
		Height:     defaultHeight,
		FollowLogs: true,
		onRestart:  onRestart,
		bar: progress.New(
			progress.WithSolidFill(string(style.BarColor(domain.BarPlain))),
			progress.WithoutPercentage(),
			progress.WithColorProfile(out.Profile),
		),
		spin:    spin,
		logPane: viewport.New(defaultWidth, minLogHeight),
	}
	m.reflow()
	return m
}

// Init starts the spinner.
func (m *Model) Init() tea.Cmd {
	return m.spin.Tick
}

// Update handles presenter messages, keys and resizes.
//
//nolint:cyclop // message switch
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.reflow()
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case MsgConnection:
		m.Connection = msg.State
	case MsgPanel:
		m.Panel = msg.Panel
	case MsgBarMode:
		m.Mode = msg.Mode
		m.bar.FullColor = string(style.BarColor(msg.Mode))
	case MsgProgress:
		m.Progress = msg.Progress
	case MsgLog:
		m.Logs = append(m.Logs, msg.Entry)
		m.refreshLogs()
	case MsgRestart:
		m.Restarting = true
	case MsgReset:
		m.reset()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		return tea.Quit
	}
	// The restart notice is modal.
	if m.Restarting {
		return nil
	}

	switch key {
	case "q":
		return tea.Quit
	case "r":
		if m.onRestart == nil {
			return nil
		}
		restart := m.onRestart
		return func() tea.Msg {
			restart()
			return nil
		}
	case "up", "k":
		m.logPane.ScrollUp(1)
		m.FollowLogs = false
	case "down", "j":
		m.logPane.ScrollDown(1)
		m.FollowLogs = m.logPane.AtBottom()
	case "pgup":
		m.logPane.ScrollUp(m.logPane.Height)
		m.FollowLogs = false
	case "pgdown":
		m.logPane.ScrollDown(m.logPane.Height)
		m.FollowLogs = m.logPane.AtBottom()
	case "end", "G":
		m.logPane.GotoBottom()
		m.FollowLogs = true
	}
	return nil
}

func (m *Model) reset() {
	m.Connection = domain.ConnectionConnecting
	m.Panel = domain.PanelNone
	m.Mode = domain.BarPlain
	m.Progress = domain.Progress{}
	m.Logs = nil
	m.Restarting = false
	m.FollowLogs = true
	m.bar.FullColor = string(style.BarColor(domain.BarPlain))
	m.refreshLogs()
}

func (m *Model) reflow() {
	width := max(m.Width-2, 1)
	height := max(m.Height-chromeHeight-2, minLogHeight)

	m.logPane.Width = width
	m.logPane.Height = height
	m.refreshLogs()
}

func (m *Model) refreshLogs() {
	lines := make([]string, 0, len(m.Logs))
	for _, entry := range m.Logs {
		text := strings.TrimRight(entry.Text, "\r\n")
		if entry.Danger() {
			text = dangerStyle.Render(text)
		}
		lines = append(lines, text)
	}
	m.logPane.SetContent(strings.Join(lines, "\n"))
	if m.FollowLogs {
		m.logPane.GotoBottom()
	}
}
