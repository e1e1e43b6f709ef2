package presenter_test

import (
	"context"
	"io"
	"sync"

	"go.trai.ch/swu/internal/core/domain"
)

// recordingView is a ports.View that keeps the rendered state.
type recordingView struct {
	mu sync.Mutex

	connection domain.ConnectionState
	panel      domain.Panel
	panelCalls int
	mode       domain.BarMode
	progress   domain.Progress
	logs       []domain.LogEntry
	restart    int
	resets     int
}

func (v *recordingView) SetConnection(state domain.ConnectionState) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.connection = state
}

func (v *recordingView) ShowPanel(panel domain.Panel) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.panel = panel
	v.panelCalls++
}

func (v *recordingView) SetBarMode(mode domain.BarMode) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.mode = mode
}

func (v *recordingView) SetProgress(progress domain.Progress) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.progress = progress
}

func (v *recordingView) AppendLog(entry domain.LogEntry) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.logs = append(v.logs, entry)
}

func (v *recordingView) ShowRestart() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.restart++
}

func (v *recordingView) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.resets++
	v.panel = domain.PanelNone
	v.mode = domain.BarPlain
	v.progress = domain.Progress{}
	v.logs = nil
}

// visiblePanels returns the panels a reader would see.
func (v *recordingView) visiblePanels() []domain.Panel {
	v.mu.Lock()
	defer v.mu.Unlock()
	var visible []domain.Panel
	for _, p := range domain.Panels {
		if p == v.panel {
			visible = append(visible, p)
		}
	}
	return visible
}

func (v *recordingView) snapshot() recordingView {
	v.mu.Lock()
	defer v.mu.Unlock()
	return recordingView{
		connection: v.connection,
		panel:      v.panel,
		panelCalls: v.panelCalls,
		mode:       v.mode,
		progress:   v.progress,
		logs:       append([]domain.LogEntry(nil), v.logs...),
		restart:    v.restart,
		resets:     v.resets,
	}
}

// nopLogger discards everything but counts warnings.
type nopLogger struct {
	mu    sync.Mutex
	warns []string
}

func (l *nopLogger) Info(string) {}

func (l *nopLogger) Warn(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

func (l *nopLogger) Error(error)         {}
func (l *nopLogger) SetOutput(io.Writer) {}
func (l *nopLogger) SetJSON(bool)        {}

// scriptedSocket replays frames and then reports EOF.
// With hold set it blocks after the frames until its context is done.
type scriptedSocket struct {
	frames chan []byte
	hold   bool
}

func newScriptedSocket(hold bool, frames ...string) *scriptedSocket {
	ch := make(chan []byte, len(frames))
	for _, f := range frames {
		ch <- []byte(f)
	}
	close(ch)
	return &scriptedSocket{frames: ch, hold: hold}
}

func (s *scriptedSocket) Read(ctx context.Context) ([]byte, error) {
	if f, ok := <-s.frames; ok {
		return f, nil
	}
	if s.hold {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return nil, io.EOF
}

func (s *scriptedSocket) Close() error {
	return nil
}
