package ai

import (
	"fmt"

	"wayfare/internal/config"
	"wayfare/internal/port"
)

// Factory is a function that creates an AIClient from a provider config.
type Factory func(cfg *config.AIProviderConfig) (port.AIClient, error)

// registry of provider factories, populated explicitly via Register at
// composition time.
var providers = map[string]Factory{}

// Register registers a provider factory by name.
func Register(name string, factory Factory) {
	providers[name] = factory
}

// NewClient creates an AIClient from a provider config using the registered
// factory. Unregistered provider names yield ErrUnknownProvider.
func NewClient(cfg *config.AIProviderConfig) (port.AIClient, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Provider)
	}
	return factory(cfg)
}
