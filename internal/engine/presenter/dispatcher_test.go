package presenter_test

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/swu/internal/core/domain"
	"go.trai.ch/swu/internal/core/ports"
	"go.trai.ch/swu/internal/core/ports/mocks"
	"go.trai.ch/swu/internal/engine/presenter"
	"go.uber.org/mock/gomock"
)

const testTimeout = 5 * time.Second

func testTarget(t *testing.T) presenter.Target {
	t.Helper()
	page, err := url.Parse("http://device:8080/")
	require.NoError(t, err)
	return presenter.NewTarget(page, domain.DefaultConfig())
}

func runDispatcher(ctx context.Context, d *presenter.Dispatcher, opts presenter.RunOptions) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- d.Run(ctx, opts)
	}()
	return done
}

func waitDone(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(testTimeout):
		t.Fatal("dispatcher did not finish")
		return nil
	}
}

func TestNewTarget(t *testing.T) {
	target := testTarget(t)

	assert.Equal(t, "ws://device:8080/ws", target.Socket.String())
	assert.Equal(t, "http://device:8080/restart", target.Restart.String())
	assert.Equal(t, "http://device:8080/", target.Page.String())
}

func TestDispatcher_CloseThenProbeUntilReload(t *testing.T) {
	ctrl := gomock.NewController(t)
	dialer := mocks.NewMockSocketDialer(ctrl)
	device := mocks.NewMockDevice(ctrl)
	clock := clockwork.NewFakeClock()
	view := &recordingView{}
	target := testTarget(t)

	dialer.EXPECT().Dial(gomock.Any(), "ws://device:8080/ws").Return(
		newScriptedSocket(false,
			`{"type":"status","status":"RUN"}`,
			`{"type":"message","level":"3","text":"rebooting"}`,
		), nil,
	)

	refused := errors.New("connection refused")
	gomock.InOrder(
		device.EXPECT().Probe(gomock.Any(), target.Page).Return(refused).Times(3),
		device.EXPECT().Probe(gomock.Any(), target.Page).Return(nil),
	)

	p := presenter.New(view, &nopLogger{}, presenter.Options{Timing: testTiming})
	d := presenter.NewDispatcher(p, dialer, device, clock, target, testTiming)

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()
	done := runDispatcher(ctx, d, presenter.RunOptions{Watch: true, ExitOnReload: true})

	// Initial delay, then the retry interval after every failure.
	clock.BlockUntil(1)
	clock.Advance(testTiming.RestartDelay)
	for range 3 {
		clock.BlockUntil(1)
		clock.Advance(testTiming.RetryInterval)
	}

	require.NoError(t, waitDone(t, done))

	snap := view.snapshot()
	assert.Equal(t, 1, snap.restart, "restart notice shown once")
	assert.Equal(t, 1, snap.resets, "exactly one forced reload")
}

func TestDispatcher_TimeoutRetriesImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	dialer := mocks.NewMockSocketDialer(ctrl)
	device := mocks.NewMockDevice(ctrl)
	clock := clockwork.NewFakeClock()
	view := &recordingView{}
	target := testTarget(t)

	dialer.EXPECT().Dial(gomock.Any(), gomock.Any()).Return(nil, errors.New("no route to host"))
	gomock.InOrder(
		device.EXPECT().Probe(gomock.Any(), target.Page).Return(context.DeadlineExceeded).Times(2),
		device.EXPECT().Probe(gomock.Any(), target.Page).Return(nil),
	)

	p := presenter.New(view, &nopLogger{}, presenter.Options{Timing: testTiming})
	d := presenter.NewDispatcher(p, dialer, device, clock, target, testTiming)

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()
	done := runDispatcher(ctx, d, presenter.RunOptions{Watch: true, ExitOnReload: true})

	// Only the initial delay waits on the clock; timeouts retry at once.
	clock.BlockUntil(1)
	clock.Advance(testTiming.RestartDelay)

	require.NoError(t, waitDone(t, done))
	assert.Equal(t, 1, view.snapshot().resets)
}

func TestDispatcher_ReloadReconnects(t *testing.T) {
	ctrl := gomock.NewController(t)
	dialer := mocks.NewMockSocketDialer(ctrl)
	device := mocks.NewMockDevice(ctrl)
	clock := clockwork.NewFakeClock()
	view := &recordingView{}
	target := testTarget(t)

	reconnected := make(chan struct{})
	gomock.InOrder(
		dialer.EXPECT().Dial(gomock.Any(), gomock.Any()).Return(newScriptedSocket(false), nil),
		dialer.EXPECT().Dial(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, string) (ports.Socket, error) {
				close(reconnected)
				return newScriptedSocket(true, `{"type":"status","status":"IDLE"}`), nil
			},
		),
	)
	device.EXPECT().Probe(gomock.Any(), gomock.Any()).Return(nil)

	p := presenter.New(view, &nopLogger{}, presenter.Options{Timing: testTiming})
	d := presenter.NewDispatcher(p, dialer, device, clock, target, testTiming)

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()
	done := runDispatcher(ctx, d, presenter.RunOptions{Watch: true})

	clock.BlockUntil(1)
	clock.Advance(testTiming.RestartDelay)

	select {
	case <-reconnected:
	case <-time.After(testTimeout):
		t.Fatal("dispatcher did not reconnect after reload")
	}

	cancel()
	require.NoError(t, waitDone(t, done))
	assert.Equal(t, 1, view.snapshot().resets)
}

func TestDispatcher_RestartRequest(t *testing.T) {
	t.Run("restart failure is handled like success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dialer := mocks.NewMockSocketDialer(ctrl)
		device := mocks.NewMockDevice(ctrl)
		clock := clockwork.NewFakeClock()
		view := &recordingView{}
		target := testTarget(t)
		log := &nopLogger{}

		device.EXPECT().Restart(gomock.Any(), target.Restart).Return(errors.New("connection reset"))
		device.EXPECT().Probe(gomock.Any(), target.Page).Return(nil)

		p := presenter.New(view, log, presenter.Options{Timing: testTiming})
		d := presenter.NewDispatcher(p, dialer, device, clock, target, testTiming)

		ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
		defer cancel()
		done := runDispatcher(ctx, d, presenter.RunOptions{Restart: true, ExitOnReload: true})

		clock.BlockUntil(1)
		clock.Advance(testTiming.RestartDelay)

		require.NoError(t, waitDone(t, done))
		assert.Equal(t, 1, view.snapshot().restart)
	})

	t.Run("posted request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dialer := mocks.NewMockSocketDialer(ctrl)
		device := mocks.NewMockDevice(ctrl)
		clock := clockwork.NewFakeClock()
		view := &recordingView{}
		target := testTarget(t)

		dialer.EXPECT().Dial(gomock.Any(), gomock.Any()).Return(newScriptedSocket(true), nil)
		device.EXPECT().Restart(gomock.Any(), target.Restart).Return(nil)
		device.EXPECT().Probe(gomock.Any(), target.Page).Return(nil)

		p := presenter.New(view, &nopLogger{}, presenter.Options{Timing: testTiming})
		d := presenter.NewDispatcher(p, dialer, device, clock, target, testTiming)

		ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
		defer cancel()
		done := runDispatcher(ctx, d, presenter.RunOptions{Watch: true, ExitOnReload: true})

		d.Post(ctx, presenter.RestartRequested{})
		clock.BlockUntil(1)
		clock.Advance(testTiming.RestartDelay)

		require.NoError(t, waitDone(t, done))
		assert.Equal(t, 1, view.snapshot().restart)
	})
}

func TestDispatcher_ExitOnDone(t *testing.T) {
	ctrl := gomock.NewController(t)
	dialer := mocks.NewMockSocketDialer(ctrl)
	device := mocks.NewMockDevice(ctrl)
	view := &recordingView{}

	dialer.EXPECT().Dial(gomock.Any(), gomock.Any()).Return(newScriptedSocket(true,
		`{"type":"status","status":"START"}`,
		`{"type":"step","number":"1","step":"1","percent":"70"}`,
		`{"type":"status","status":"RUN"}`,
		`{"type":"status","status":"FAILURE"}`,
		`{"type":"status","status":"DONE"}`,
	), nil)

	p := presenter.New(view, &nopLogger{}, presenter.Options{Timing: testTiming, ExitOnDone: true})
	d := presenter.NewDispatcher(p, dialer, device, clockwork.NewFakeClock(), testTarget(t), testTiming)

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	err := waitDone(t, runDispatcher(ctx, d, presenter.RunOptions{Watch: true}))

	require.ErrorIs(t, err, domain.ErrUpdateFailed)
	snap := view.snapshot()
	assert.Equal(t, domain.PanelDone, snap.panel)
	assert.Equal(t, 70, snap.progress.Percent, "failure after RUN keeps the bar")
}
