package config

import (
	"fmt"
)

// ClientConfig is the configuration view used by the terminal client.
type ClientConfig struct {
	App       App
	Crypto    Crypto
	Storage   Storage
	Adapter   Adapter
	Clipboard Clipboard
	Workers   Workers
}

// UseRemote reports whether records come from the remote vault API rather
// than the local database.
func (c *ClientConfig) UseRemote() bool {
	return c.Adapter.HTTPAddress != ""
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App:       cfg.App,
		Crypto:    cfg.Crypto,
		Storage:   cfg.Storage,
		Adapter:   cfg.Adapter,
		Clipboard: cfg.Clipboard,
		Workers:   cfg.Workers,
	}
}
