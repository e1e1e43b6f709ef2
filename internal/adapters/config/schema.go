package config

// File is the on-disk shape of swu.yaml.
type File struct {
	URL         string     `yaml:"url"`
	RelayPath   string     `yaml:"relay_path"`
	RestartPath string     `yaml:"restart_path"`
	Output      string     `yaml:"output"`
	Timing      TimingFile `yaml:"timing"`
}

// TimingFile holds the restart flow durations as Go duration strings ("3s", "500ms").
type TimingFile struct {
	RestartDelay  string `yaml:"restart_delay"`
	ProbeTimeout  string `yaml:"probe_timeout"`
	RetryInterval string `yaml:"retry_interval"`
}
