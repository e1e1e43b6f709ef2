package presenter

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/swu/internal/core/domain"
	"go.trai.ch/swu/internal/core/ports"
)

const eventQueueSize = 64

// Target holds the endpoints derived from the console page URL.
type Target struct {
	Page    *url.URL
	Socket  *url.URL
	Restart *url.URL
}

// NewTarget derives every endpoint from page.
func NewTarget(page *url.URL, cfg domain.Config) Target {
	return Target{
		Page:    page,
		Socket:  domain.SocketEndpoint(page, cfg.RelayPath),
		Restart: domain.RestartEndpoint(page, cfg.RestartPath),
	}
}

// RunOptions selects what the dispatcher does on start.
type RunOptions struct {
	// Watch opens the status socket.
	Watch bool
	// Restart requests a device restart right away.
	Restart bool
	// ExitOnReload ends Run once the device is reachable again after a restart,
	// instead of reconnecting.
	ExitOnReload bool
}

type envelope struct {
	// session is the socket session an event belongs to; 0 for events that
	// are not tied to a socket.
	session uint64
	event   Event
}

// Dispatcher is the single-threaded event loop around a Presenter.
// Events are handled one at a time in arrival order; effects run on their own
// goroutines and report back through the same queue.
type Dispatcher struct {
	presenter *Presenter
	dialer    ports.SocketDialer
	device    ports.Device
	clock     clockwork.Clock
	target    Target
	timing    domain.Timing

	events     chan envelope
	session    uint64
	endSession context.CancelFunc
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(
	p *Presenter,
	dialer ports.SocketDialer,
	device ports.Device,
	clock clockwork.Clock,
	target Target,
	timing domain.Timing,
) *Dispatcher {
	return &Dispatcher{
		presenter: p,
		dialer:    dialer,
		device:    device,
		clock:     clock,
		target:    target,
		timing:    timing,
		events:    make(chan envelope, eventQueueSize),
	}
}

// Post injects an event, e.g. a restart request from the user.
// It blocks until the event is queued or ctx is done.
func (d *Dispatcher) Post(ctx context.Context, ev Event) {
	d.post(ctx, 0, ev)
}

// Run dispatches events until ctx is done or an effect ends the loop.
func (d *Dispatcher) Run(ctx context.Context, opts RunOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var initial []Effect
	if opts.Watch {
		initial = append(initial, d.presenter.Boot()...)
	}
	if opts.Restart {
		initial = append(initial, d.presenter.Handle(RestartRequested{})...)
	}
	if done, err := d.apply(ctx, initial, opts); done {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case env := <-d.events:
			if env.session != 0 && env.session != d.session {
				// Left over from a socket that was replaced by a reload.
				continue
			}
			if done, err := d.apply(ctx, d.presenter.Handle(env.event), opts); done {
				return err
			}
		}
	}
}

func (d *Dispatcher) apply(ctx context.Context, effects []Effect, opts RunOptions) (bool, error) {
	for _, eff := range effects {
		switch eff := eff.(type) {
		case Connect:
			d.connect(ctx)
		case PostRestart:
			go d.postRestart(ctx, eff.Generation)
		case ScheduleProbe:
			go d.probe(ctx, eff.After)
		case Reload:
			if opts.ExitOnReload {
				return true, nil
			}
			d.connect(ctx)
		case Finish:
			return true, eff.Err
		}
	}
	return false, nil
}

func (d *Dispatcher) connect(ctx context.Context) {
	if d.endSession != nil {
		d.endSession()
	}

	d.session++
	sctx, cancel := context.WithCancel(ctx)
	d.endSession = cancel

	go d.readSocket(sctx, d.session)
}

func (d *Dispatcher) readSocket(ctx context.Context, session uint64) {
	sock, err := d.dialer.Dial(ctx, d.target.Socket.String())
	if err != nil {
		d.post(ctx, session, SocketClosed{Err: err})
		return
	}
	defer func() {
		_ = sock.Close()
	}()

	d.post(ctx, session, SocketOpened{})

	for {
		payload, err := sock.Read(ctx)
		if err != nil {
			d.post(ctx, session, SocketClosed{Err: err})
			return
		}
		d.post(ctx, session, SocketMessage{Payload: payload})
	}
}

func (d *Dispatcher) postRestart(ctx context.Context, generation uint64) {
	err := d.device.Restart(ctx, d.target.Restart)
	d.post(ctx, 0, RestartSent{Generation: generation, Err: err})
}

func (d *Dispatcher) probe(ctx context.Context, after time.Duration) {
	if after > 0 {
		select {
		case <-ctx.Done():
			return
		case <-d.clock.After(after):
		}
	}

	pctx, cancel := context.WithTimeout(ctx, d.timing.ProbeTimeout)
	err := d.device.Probe(pctx, d.target.Page)
	timedOut := errors.Is(pctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded)
	cancel()

	if ctx.Err() != nil {
		return
	}
	if err != nil {
		d.post(ctx, 0, ProbeFailed{Timeout: timedOut, Err: err})
		return
	}
	d.post(ctx, 0, ProbeSucceeded{})
}

func (d *Dispatcher) post(ctx context.Context, session uint64, ev Event) {
	select {
	case d.events <- envelope{session: session, event: ev}:
	case <-ctx.Done():
	}
}
