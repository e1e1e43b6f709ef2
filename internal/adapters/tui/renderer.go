package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/swu/internal/core/domain"
)

// Renderer wraps the Bubble Tea program as a ports.Renderer.
type Renderer struct {
	program *tea.Program
	model   *Model
	errCh   chan error
}

// NewRenderer creates a new TUI renderer.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	return &Renderer{
		program: tea.NewProgram(model, opts...),
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// Start launches the program in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Stop asks the program to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the program has terminated.
func (r *Renderer) Wait() error {
	return <-r.errCh
}

// SetConnection forwards the socket state.
func (r *Renderer) SetConnection(state domain.ConnectionState) {
	r.program.Send(MsgConnection{State: state})
}

// ShowPanel forwards the visible panel.
func (r *Renderer) ShowPanel(panel domain.Panel) {
	r.program.Send(MsgPanel{Panel: panel})
}

// SetBarMode forwards the bar mode.
func (r *Renderer) SetBarMode(mode domain.BarMode) {
	r.program.Send(MsgBarMode{Mode: mode})
}

// SetProgress forwards the bar position.
func (r *Renderer) SetProgress(progress domain.Progress) {
	r.program.Send(MsgProgress{Progress: progress})
}

// AppendLog forwards a server message.
func (r *Renderer) AppendLog(entry domain.LogEntry) {
	r.program.Send(MsgLog{Entry: entry})
}

// ShowRestart opens the restart notice.
func (r *Renderer) ShowRestart() {
	r.program.Send(MsgRestart{})
}

// Reset clears the view.
func (r *Renderer) Reset() {
	r.program.Send(MsgReset{})
}

// Program returns the underlying tea.Program for testing.
func (r *Renderer) Program() *tea.Program {
	return r.program
}
