// Package linear renders the update status as plain, chronological lines for CI logs and pipes.
package linear

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/swu/internal/core/domain"
	"go.trai.ch/swu/internal/ui/output"
	"go.trai.ch/swu/internal/ui/style"
)

// Renderer implements ports.Renderer with line output.
// Server messages go to stdout; status changes go to stderr.
type Renderer struct {
	stdout *termenv.Output
	stderr *termenv.Output

	mu         sync.Mutex
	connection domain.ConnectionState
	panel      domain.Panel
	mode       domain.BarMode
	progress   string
	restarting bool

	done     chan struct{}
	stopOnce sync.Once
}

// NewRenderer creates a Renderer. Nil writers default to os.Stdout and os.Stderr.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout:     output.NewWithProfile(stdout, output.ColorProfileANSI),
		stderr:     output.NewWithProfile(stderr, output.ColorProfileANSI),
		connection: -1,
		done:       make(chan struct{}),
	}
}

// Start is a no-op; the renderer writes synchronously.
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop releases Wait.
func (r *Renderer) Stop() error {
	r.stopOnce.Do(func() { close(r.done) })
	return nil
}

// Wait blocks until Stop is called.
func (r *Renderer) Wait() error {
	<-r.done
	return nil
}

// SetConnection prints socket state changes.
func (r *Renderer) SetConnection(state domain.ConnectionState) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if state == r.connection {
		return
	}
	r.connection = state

	icon, color := style.ConnectionIcon(state)
	r.statusLocked(output.Paint(r.stderr, icon, string(color)) + " connection " + state.String())
}

// ShowPanel prints the panel headline when it changes.
func (r *Renderer) ShowPanel(panel domain.Panel) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if panel == r.panel {
		return
	}
	r.panel = panel

	title := style.PanelTitle(panel)
	switch panel {
	case domain.PanelSuccess:
		title = output.Paint(r.stderr, title, string(style.Green))
	case domain.PanelFailure:
		title = output.Paint(r.stderr, title, string(style.Red))
	}
	r.statusLocked(title)
}

// SetBarMode records the mode; the panel line already reports the outcome.
func (r *Renderer) SetBarMode(mode domain.BarMode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mode = mode
}

// SetProgress prints the step progress when its text changes.
func (r *Renderer) SetProgress(progress domain.Progress) {
	r.mu.Lock()
	defer r.mu.Unlock()

	text := progress.Text()
	if text == "" || text == r.progress {
		r.progress = text
		return
	}
	r.progress = text

	line := text
	if progress.StepLabel != "" {
		line = progress.StepLabel + " " + text
	}
	r.statusLocked(output.Paint(r.stderr, style.Arrow, string(style.BarColor(r.mode))) + " " + line)
}

// AppendLog prints a server message to stdout. Danger lines are red.
func (r *Renderer) AppendLog(entry domain.LogEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, line := range strings.Split(strings.TrimRight(entry.Text, "\r\n"), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if entry.Danger() {
			line = output.Paint(r.stdout, line, string(style.Red))
		}
		_, _ = fmt.Fprintln(r.stdout, line)
	}
}

// ShowRestart prints the restart notice once per restart.
func (r *Renderer) ShowRestart() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.restarting {
		return
	}
	r.restarting = true
	r.statusLocked(output.Paint(r.stderr, style.Warning, string(style.Yellow)) +
		" restarting, waiting for the update server to come back")
}

// Reset forgets the printed state, as a page reload would.
func (r *Renderer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.restarting {
		r.statusLocked(output.Paint(r.stderr, style.Check, string(style.Green)) + " update server is back, reloading")
	}
	r.connection = -1
	r.panel = domain.PanelNone
	r.mode = domain.BarPlain
	r.progress = ""
	r.restarting = false
}

// statusLocked must be called with r.mu held.
func (r *Renderer) statusLocked(line string) {
	_, _ = fmt.Fprintln(r.stderr, line)
}
