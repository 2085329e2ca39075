package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/internal/service"
	"github.com/MKhiriev/secure-vault/models"
)

// Copier puts a value on the clipboard and clears it after Delay.
type Copier interface {
	Copy(value string) error
	Delay() time.Duration
}

type TUI struct {
	vault     service.VaultService
	fields    service.FieldService
	board     Copier
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(vault service.VaultService, fields service.FieldService, board Copier, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if vault == nil || fields == nil {
		return nil, errNoServices
	}
	return &TUI{
		vault:     vault,
		fields:    fields,
		board:     board,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run shows the vault of userID until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context, userID string) error {
	model := newVaultModel(ctx, t.vault, t.fields, t.board, userID, t.buildInfo)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		t.logger.Err(err).Str("func", "TUI.Run").Msg("terminal UI stopped")
		return fmt.Errorf("run terminal UI: %w", err)
	}

	return nil
}
