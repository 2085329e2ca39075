package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/internal/mock"
	"github.com/MKhiriev/secure-vault/internal/service"
	"github.com/MKhiriev/secure-vault/models"
)

func TestGetVersion_ReportsAppInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("2.4.1")
	appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("2.4.1", "2026-09-30", "f00dcafe"))

	router := NewHandler(&service.Services{AppInfoService: appInfo}, logger.Nop()).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.VersionResponse{Version: "2.4.1", BuildDate: "2026-09-30", BuildCommit: "f00dcafe"}, resp)
}
