// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants shared by every binary.
func (cfg *StructuredConfig) validate() error {
	if cfg.Crypto.KeyCacheTTL < 0 {
		return fmt.Errorf("%w: negative key cache ttl", ErrInvalidCryptoConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case "", DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Server.HTTPAddress != "" && cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.App.UserID == "" && cfg.App.UserToken == "" {
		return fmt.Errorf("%w: user id or user token is required", ErrInvalidAppConfigs)
	}

	if cfg.UseRemote() {
		if cfg.Adapter.RequestTimeout <= 0 {
			return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
		}
	} else if cfg.Storage.DB.DSN == "" || cfg.Storage.DB.Driver == "" {
		return fmt.Errorf("%w: driver and dsn are required without a remote address", ErrInvalidStorageConfigs)
	}

	if cfg.Clipboard.ClearAfter < 0 {
		return fmt.Errorf("%w: negative clipboard clear delay", ErrInvalidAppConfigs)
	}

	return nil
}
