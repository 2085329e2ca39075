package service

import (
	"github.com/MKhiriev/secure-vault/internal/app"
	"github.com/MKhiriev/secure-vault/internal/config"
	"github.com/MKhiriev/secure-vault/internal/crypto"
	"github.com/MKhiriev/secure-vault/internal/envelope"
	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/internal/utils"
	"github.com/MKhiriev/secure-vault/internal/validators"
	"github.com/MKhiriev/secure-vault/models"
)

// Services groups the services of one process. VaultService is nil when no
// record source is configured (the HTTP agent).
type Services struct {
	Reconciler     Reconciler
	FieldService   FieldService
	VaultService   VaultService
	AppInfoService AppInfoService
}

// NewServices wires the services around cipher. source may be nil.
func NewServices(
	cipher crypto.CipherEngine,
	source RecordSource,
	cfg config.Crypto,
	appCfg config.App,
	build models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	reconciler := NewReconciler(cipher, envelope.NewSniffer(), cfg.ReconcileConcurrency)

	appInfo, err := NewAppInfoService(appCfg, build, logger)
	if err != nil {
		return nil, err
	}

	services := &Services{
		Reconciler:     reconciler,
		FieldService:   NewFieldService(cipher, crypto.NewPasswordGenerator()),
		AppInfoService: appInfo,
	}

	if source != nil {
		services.VaultService = NewVaultService(
			source,
			cipher,
			reconciler,
			validators.NewVaultValidator(app.Placeholders()...),
			utils.NewUUIDGenerator(),
		)
	}

	return services, nil
}
