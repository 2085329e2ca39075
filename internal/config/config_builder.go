package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects configuration sources and merges them by priority.
// Sources appended later override non-zero fields of earlier ones; the JSON
// file sits between the defaults and the env/flag overrides.
type configBuilder struct {
	defaults  *StructuredConfig
	json      *StructuredConfig
	overrides []*StructuredConfig
	err       error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		overrides: make([]*StructuredConfig, 0, 2),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	sources := make([]*StructuredConfig, 0, len(b.overrides)+2)
	for _, src := range []*StructuredConfig{b.defaults, b.json} {
		if src != nil {
			sources = append(sources, src)
		}
	}
	sources = append(sources, b.overrides...)

	config := new(StructuredConfig)
	for _, cfg := range sources {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.defaults = defaultConfig()
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.overrides = append(b.overrides, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagCfg, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.overrides = append(b.overrides, flagCfg)
	return b
}

// withJSON loads the JSON file named by the last override that sets a path.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.overrides {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.json = jsonCfg

	return b
}
