package config

import (
	"os"
)

// FileSystem abstracts the lookups the loader needs.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// Getwd returns the working directory.
	Getwd() (string, error)
	// UserConfigDir returns the per-user configuration directory.
	UserConfigDir() (string, error)
}

// OSFS implements FileSystem using the standard library.
type OSFS struct{}

// NewOSFS creates a new OSFS instance.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// ReadFile reads the entire file at path.
func (o *OSFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- path comes from the user or a fixed lookup location
	return os.ReadFile(path)
}

// Getwd returns the working directory.
func (o *OSFS) Getwd() (string, error) {
	return os.Getwd()
}

// UserConfigDir returns the per-user configuration directory.
func (o *OSFS) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}
