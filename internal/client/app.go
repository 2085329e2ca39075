package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/secure-vault/internal/adapter"
	"github.com/MKhiriev/secure-vault/internal/config"
	"github.com/MKhiriev/secure-vault/internal/crypto"
	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/internal/service"
	"github.com/MKhiriev/secure-vault/internal/store"
	"github.com/MKhiriev/secure-vault/internal/tui"
	"github.com/MKhiriev/secure-vault/internal/utils"
	"github.com/MKhiriev/secure-vault/internal/workers"
	"github.com/MKhiriev/secure-vault/models"
)

// UI is the interactive front end driven by App.
type UI interface {
	Run(ctx context.Context, userID string) error
}

type App struct {
	userID    string
	ui        UI
	workers   *workers.Workers
	clipboard *workers.ClipboardClearer
	keys      *crypto.CachingKeyDeriver
	closers   []func() error
	logger    *logger.Logger
}

// NewApp wires the terminal client: identity, key cache, record source,
// services, background workers and the UI.
func NewApp(ctx context.Context, cfg *config.ClientConfig, build models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	userID, err := ResolveUserID(cfg.App)
	if err != nil {
		return nil, err
	}

	keys := crypto.NewCachingKeyDeriver(crypto.NewKeyDeriver(), cfg.Crypto.KeyCacheTTL)
	cipher := crypto.NewCipherEngine(keys)

	a := &App{userID: userID, keys: keys, logger: logger}

	source, err := a.newRecordSource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	services, err := service.NewServices(cipher, source, cfg.Crypto, cfg.App, build, logger)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("create services: %w", err)
	}

	a.clipboard = workers.NewClipboardClearer(workers.SystemClipboard{}, cfg.Clipboard.ClearAfter, logger)
	a.workers = workers.NewWorkers(
		workers.NewKeyCacheSweeper(keys, cfg.Workers.KeyCacheSweepInterval, logger),
		a.clipboard,
	)

	a.ui, err = tui.New(services.VaultService, services.FieldService, a.clipboard, build, logger)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return a, nil
}

func (a *App) newRecordSource(ctx context.Context, cfg *config.ClientConfig) (service.RecordSource, error) {
	if cfg.UseRemote() {
		api, err := adapter.NewHTTPVaultAdapter(cfg.Adapter, cfg.App.UserToken, a.logger)
		if err != nil {
			return nil, fmt.Errorf("create vault adapter: %w", err)
		}
		a.logger.Info().Str("func", "App.newRecordSource").Msg("using remote vault API")
		return api, nil
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, a.logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}
	a.closers = append(a.closers, storages.Close)
	a.logger.Info().Str("func", "App.newRecordSource").Str("driver", cfg.Storage.DB.Driver).Msg("using local database")

	return storages.VaultRepository, nil
}

// Run blocks in the UI until the user quits or ctx ends. On return every
// cached key is dropped and copied secrets are wiped from the clipboard.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer a.close()

	a.workers.Run(ctx)

	err := a.ui.Run(ctx, a.userID)

	cancel()
	a.clipboard.Wait()

	return err
}

func (a *App) close() {
	a.keys.Close()
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.logger.Err(err).Str("func", "App.close").Msg("failed to release resource")
		}
	}
	a.closers = nil
}

// ResolveUserID returns the stable user identifier: the configured user ID,
// or the user_id/sub claim of the configured identity token.
func ResolveUserID(cfg config.App) (string, error) {
	if cfg.UserID != "" {
		return cfg.UserID, nil
	}
	if cfg.UserToken == "" {
		return "", ErrNoIdentity
	}

	userID, err := utils.UserIDFromToken(cfg.UserToken)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoIdentity, err)
	}
	return userID, nil
}
