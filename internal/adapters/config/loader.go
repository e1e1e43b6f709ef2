// Package config loads the swu configuration file.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"time"

	"go.trai.ch/swu/internal/core/domain"
	"go.trai.ch/swu/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a Loader backed by the OS filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: NewOSFS()}
}

// Load reads the configuration at path. With an empty path it tries swu.yaml in
// the working directory, then swu/config.yaml in the user config directory.
// Values missing from the file keep their defaults.
func (l *Loader) Load(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if path != "" {
		data, err := l.FS.ReadFile(path)
		if err != nil {
			return cfg, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
		}
		return l.parse(cfg, path, data)
	}

	for _, candidate := range l.candidates() {
		data, err := l.FS.ReadFile(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return cfg, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", candidate)
		}
		return l.parse(cfg, candidate, data)
	}

	return cfg, nil
}

func (l *Loader) candidates() []string {
	var paths []string
	if cwd, err := l.FS.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, domain.ConfigFileName))
	}
	if dir, err := l.FS.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, domain.UserConfigDirName, domain.UserConfigFileName))
	}
	return paths
}

func (l *Loader) parse(cfg domain.Config, path string, data []byte) (domain.Config, error) {
	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return cfg, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if file.URL != "" {
		cfg.URL = file.URL
	}
	if file.RelayPath != "" {
		cfg.RelayPath = file.RelayPath
	}
	if file.RestartPath != "" {
		cfg.RestartPath = file.RestartPath
	}
	if file.Output != "" {
		cfg.Output = file.Output
	}

	durations := []struct {
		key   string
		value string
		dst   *time.Duration
	}{
		{"timing.restart_delay", file.Timing.RestartDelay, &cfg.Timing.RestartDelay},
		{"timing.probe_timeout", file.Timing.ProbeTimeout, &cfg.Timing.ProbeTimeout},
		{"timing.retry_interval", file.Timing.RetryInterval, &cfg.Timing.RetryInterval},
	}
	for _, d := range durations {
		if d.value == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.value)
		if err != nil {
			return cfg, zerr.With(zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path), "key", d.key)
		}
		*d.dst = parsed
	}

	if err := cfg.Validate(); err != nil {
		return cfg, zerr.With(err, "path", path)
	}

	if l.Logger != nil {
		l.Logger.Info("using config " + path)
	}
	return cfg, nil
}
