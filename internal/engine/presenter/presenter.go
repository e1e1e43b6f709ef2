// Package presenter turns status socket traffic into view updates.
package presenter

import (
	"fmt"

	"go.trai.ch/swu/internal/core/domain"
	"go.trai.ch/swu/internal/core/ports"
)

// Options configures a Presenter.
type Options struct {
	Timing domain.Timing
	// ExitOnDone finishes the dispatch loop once the server reports DONE.
	ExitOnDone bool
}

// Presenter owns the connection lifecycle and maps inbound frames to view
// updates. It is a plain state machine: Handle is the only entry point and
// must not be called concurrently.
type Presenter struct {
	view   ports.View
	logger ports.Logger
	opts   Options

	conn       domain.ConnectionState
	previous   domain.UpdateStatus
	restarting bool
	outcome    error

	// restartPending is set while a restart request is in flight.
	restartPending bool
	// generation counts reloads. Restart requests sent before the latest
	// reload report back with an older generation and are dropped.
	generation uint64
}

// New creates a Presenter rendering into view.
func New(view ports.View, logger ports.Logger, opts Options) *Presenter {
	return &Presenter{
		view:   view,
		logger: logger,
		opts:   opts,
	}
}

// Connection returns the current state of the status socket.
func (p *Presenter) Connection() domain.ConnectionState {
	return p.conn
}

// PreviousStatus returns the last valid status applied to the progress bar.
func (p *Presenter) PreviousStatus() domain.UpdateStatus {
	return p.previous
}

// Restarting reports whether the restart notice is up and the reload-poll loop is running.
func (p *Presenter) Restarting() bool {
	return p.restarting
}

// Boot marks the socket as connecting and asks for it to be opened.
func (p *Presenter) Boot() []Effect {
	p.conn = domain.ConnectionConnecting
	p.view.SetConnection(p.conn)
	return []Effect{Connect{}}
}

// Handle applies ev and returns the effects it requires.
//
//nolint:cyclop // one case per event type
func (p *Presenter) Handle(ev Event) []Effect {
	switch ev := ev.(type) {
	case SocketOpened:
		p.conn = domain.ConnectionOpen
		p.view.SetConnection(p.conn)
		p.updateStatus(domain.StatusIdle)
		return nil

	case SocketMessage:
		return p.handleMessage(ev.Payload)

	case SocketClosed:
		p.conn = domain.ConnectionClosed
		p.view.SetConnection(p.conn)
		if ev.Err != nil {
			p.logger.Warn(fmt.Sprintf("status socket closed: %v", ev.Err))
		}
		// Any close is taken as the device restarting.
		return p.showRestart()

	case RestartRequested:
		if p.restarting || p.restartPending {
			return nil
		}
		p.restartPending = true
		return []Effect{PostRestart{Generation: p.generation}}

	case RestartSent:
		if ev.Generation != p.generation {
			return nil
		}
		p.restartPending = false
		if ev.Err != nil {
			p.logger.Warn(fmt.Sprintf("restart request: %v", ev.Err))
		}
		return p.showRestart()

	case ProbeSucceeded:
		if !p.restarting {
			return nil
		}
		p.reset()
		return []Effect{Reload{}}

	case ProbeFailed:
		if !p.restarting {
			return nil
		}
		if ev.Timeout {
			return []Effect{ScheduleProbe{}}
		}
		return []Effect{ScheduleProbe{After: p.opts.Timing.RetryInterval}}
	}

	return nil
}

func (p *Presenter) handleMessage(raw []byte) []Effect {
	frame, err := domain.ParseFrame(raw)
	if err != nil {
		p.logger.Warn(fmt.Sprintf("ignoring frame: %v", err))
		return nil
	}

	switch frame.Type {
	case domain.FrameMessage:
		p.view.AppendLog(frame.Level.Entry(frame.Text))

	case domain.FrameStatus:
		return p.updateStatus(domain.UpdateStatus(frame.Status))

	case domain.FrameStep:
		progress, err := domain.ComputeProgress(frame.Step.Int(), frame.Percent.Int(), frame.Count.Int(), frame.Name)
		if err != nil {
			p.logger.Warn(fmt.Sprintf("ignoring step frame: %v", err))
			return nil
		}
		p.view.SetProgress(progress)

	case domain.FrameSource:
	}

	return nil
}

func (p *Presenter) updateStatus(status domain.UpdateStatus) []Effect {
	if !status.Valid() {
		return nil
	}

	p.view.ShowPanel(status.Panel())
	p.updateBar(status)

	switch status {
	case domain.StatusSuccess:
		p.outcome = nil
	case domain.StatusFailure:
		p.outcome = domain.ErrUpdateFailed
	case domain.StatusDone:
		if p.opts.ExitOnDone {
			return []Effect{Finish{Err: p.outcome}}
		}
	}
	return nil
}

// updateBar switches the progress bar for status. previous is the only
// memory of earlier statuses: a failure right after START or RUN keeps the
// bar where it stopped, any other failure resets it.
func (p *Presenter) updateBar(status domain.UpdateStatus) {
	mode := domain.BarPlain

	switch status {
	case domain.StatusStart:
		p.view.SetProgress(domain.Progress{})
	case domain.StatusRun:
		mode = domain.BarRunning
	case domain.StatusSuccess:
		mode = domain.BarSuccess
	case domain.StatusFailure:
		if p.previous != domain.StatusStart && p.previous != domain.StatusRun {
			p.view.SetProgress(domain.Progress{})
		}
		mode = domain.BarFailure
	}

	p.view.SetBarMode(mode)
	p.previous = status
}

func (p *Presenter) showRestart() []Effect {
	if p.restarting {
		return nil
	}
	p.restarting = true
	p.view.ShowRestart()
	return []Effect{ScheduleProbe{After: p.opts.Timing.RestartDelay}}
}

func (p *Presenter) reset() {
	p.conn = domain.ConnectionConnecting
	p.previous = ""
	p.restarting = false
	p.restartPending = false
	p.generation++
	p.outcome = nil
	p.view.Reset()
	p.view.SetConnection(p.conn)
}
