package ports

import "go.trai.ch/swu/internal/core/domain"

// ConfigLoader defines the interface for loading the client configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads path, or the default locations when path is empty.
	// A missing default file yields domain.DefaultConfig.
	Load(path string) (domain.Config, error)
}
