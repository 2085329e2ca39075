package http

import (
	"net/http"

	"github.com/MKhiriev/secure-vault/internal/utils"
	"github.com/MKhiriev/secure-vault/models"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	build := h.services.AppInfoService.GetBuildInfo(ctx)

	_, _ = utils.WriteJSON(w, models.VersionResponse{
		Version:     h.services.AppInfoService.GetAppVersion(ctx),
		BuildDate:   build.BuildDate(),
		BuildCommit: build.BuildCommit(),
	}, http.StatusOK)
}
