package domain

import (
	"strings"
	"time"

	"go.trai.ch/zerr"
)

const (
	// ConfigFileName is the config file looked up in the working directory.
	ConfigFileName = "swu.yaml"
	// UserConfigDirName is the directory below the user config dir.
	UserConfigDirName = "swu"
	// UserConfigFileName is the config file inside UserConfigDirName.
	UserConfigFileName = "config.yaml"
)

// Default timings of the restart flow.
const (
	DefaultRestartDelay  = 3 * time.Second
	DefaultProbeTimeout  = time.Second
	DefaultRetryInterval = time.Second
)

// Timing controls the reload-poll loop.
type Timing struct {
	// RestartDelay is the wait before the first probe.
	RestartDelay time.Duration
	// ProbeTimeout bounds a single probe request.
	ProbeTimeout time.Duration
	// RetryInterval is the wait after a failed (non-timeout) probe.
	RetryInterval time.Duration
}

// Config is the resolved client configuration.
type Config struct {
	URL         string
	RelayPath   string
	RestartPath string
	Output      string
	Timing      Timing
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		RelayPath:   DefaultRelayPath,
		RestartPath: DefaultRestartPath,
		Output:      "auto",
		Timing: Timing{
			RestartDelay:  DefaultRestartDelay,
			ProbeTimeout:  DefaultProbeTimeout,
			RetryInterval: DefaultRetryInterval,
		},
	}
}

// Validate checks the configuration for values the client cannot use.
func (c Config) Validate() error {
	if !strings.HasPrefix(c.RelayPath, "/") {
		return zerr.With(ErrInvalidRelayPath, "relay_path", c.RelayPath)
	}
	if c.RestartPath == "" {
		return ErrMissingRestartPath
	}
	switch c.Output {
	case "", "auto", "tui", "linear", "ci":
	default:
		return zerr.With(ErrInvalidOutputMode, "output", c.Output)
	}
	if c.Timing.RestartDelay < 0 || c.Timing.RetryInterval < 0 {
		return zerr.With(ErrInvalidTiming, "reason", "negative delay")
	}
	if c.Timing.ProbeTimeout <= 0 {
		return zerr.With(ErrInvalidTiming, "probe_timeout", c.Timing.ProbeTimeout.String())
	}
	return nil
}
