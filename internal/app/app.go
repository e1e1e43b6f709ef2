// Package app implements the application layer for swu.
package app

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/swu/internal/adapters/detector"
	"go.trai.ch/swu/internal/adapters/linear"
	"go.trai.ch/swu/internal/adapters/tui"
	"go.trai.ch/swu/internal/core/domain"
	"go.trai.ch/swu/internal/core/ports"
	"go.trai.ch/swu/internal/engine/presenter"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	dialer       ports.SocketDialer
	device       ports.Device
	clock        clockwork.Clock
	teaOptions   []tea.ProgramOption
	stdout       io.Writer
	stderr       io.Writer
	detect       func() detector.OutputMode
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	dialer ports.SocketDialer,
	device ports.Device,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		dialer:       dialer,
		device:       device,
		clock:        clockwork.NewRealClock(),
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		detect:       detector.DetectEnvironment,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithClock replaces the clock driving the restart timers.
func (a *App) WithClock(clock clockwork.Clock) *App {
	a.clock = clock
	return a
}

// WithOutput redirects the line renderer.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithDetector replaces terminal detection for the "auto" output mode.
func (a *App) WithDetector(detect func() detector.OutputMode) *App {
	a.detect = detect
	return a
}

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	// URL is the update console page; empty means the configured URL.
	URL        string
	ConfigPath string
	OutputMode string
	// ExitOnDone returns once the server reports DONE.
	ExitOnDone bool
}

// RestartOptions configuration for the Restart method.
type RestartOptions struct {
	URL        string
	ConfigPath string
	OutputMode string
	// NoWait only sends the restart request.
	NoWait bool
}

// Watch follows the status socket until the user quits or ctx is done.
// It survives device restarts by reconnecting once the server is back.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	cfg, target, err := a.resolve(opts.ConfigPath, opts.URL, opts.OutputMode)
	if err != nil {
		return err
	}

	return a.run(ctx, cfg, target,
		presenter.Options{Timing: cfg.Timing, ExitOnDone: opts.ExitOnDone},
		presenter.RunOptions{Watch: true},
	)
}

// Restart asks the device to restart and waits until the update server answers again.
func (a *App) Restart(ctx context.Context, opts RestartOptions) error {
	cfg, target, err := a.resolve(opts.ConfigPath, opts.URL, opts.OutputMode)
	if err != nil {
		return err
	}

	if opts.NoWait {
		if err := a.device.Restart(ctx, target.Restart); err != nil {
			return err
		}
		a.logger.Info("restart requested at " + target.Restart.String())
		return nil
	}

	return a.run(ctx, cfg, target,
		presenter.Options{Timing: cfg.Timing},
		presenter.RunOptions{Restart: true, ExitOnReload: true},
	)
}

func (a *App) resolve(configPath, rawURL, outputMode string) (domain.Config, presenter.Target, error) {
	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return cfg, presenter.Target{}, zerr.Wrap(err, "failed to load configuration")
	}

	if outputMode != "" {
		cfg.Output = outputMode
		if err := cfg.Validate(); err != nil {
			return cfg, presenter.Target{}, err
		}
	}

	page, err := domain.ParsePageURL(firstNonEmpty(rawURL, cfg.URL))
	if err != nil {
		return cfg, presenter.Target{}, err
	}

	return cfg, presenter.NewTarget(page, cfg), nil
}

func (a *App) run(
	ctx context.Context,
	cfg domain.Config,
	target presenter.Target,
	popts presenter.Options,
	ropts presenter.RunOptions,
) error {
	g, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var dispatcher *presenter.Dispatcher
	requestRestart := func() {
		dispatcher.Post(ctx, presenter.RestartRequested{})
	}

	var renderer ports.Renderer
	if detector.ResolveMode(a.detect(), cfg.Output) == detector.ModeTUI {
		// Log lines would tear the alternate screen.
		a.logger.SetOutput(io.Discard)
		defer a.logger.SetOutput(nil)

		model := tui.NewModel(target.Page.String(), a.stderr, requestRestart)
		opts := append([]tea.ProgramOption{tea.WithAltScreen()}, a.teaOptions...)
		renderer = tui.NewRenderer(&model, opts...)
	} else {
		renderer = linear.NewRenderer(a.stdout, a.stderr)
	}

	p := presenter.New(renderer, a.logger, popts)
	dispatcher = presenter.NewDispatcher(p, a.dialer, a.device, a.clock, target, cfg.Timing)

	// Renderer Routine
	g.Go(func() error {
		defer cancel()
		if err := renderer.Start(ctx); err != nil {
			return err
		}
		// Wait returns when the dispatcher stopped the renderer or the user quit.
		return renderer.Wait()
	})

	// Dispatcher Routine
	g.Go(func() error {
		defer func() {
			_ = renderer.Stop()
		}()
		return dispatcher.Run(ctx, ropts)
	})

	return g.Wait()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
