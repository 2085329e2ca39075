package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, body string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.WriteString(body)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Nil(t, b.defaults)
	assert.Nil(t, b.json)
	assert.Empty(t, b.overrides)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_Defaults(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Second, cfg.Clipboard.ClearAfter)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, 5*time.Minute, cfg.Crypto.KeyCacheTTL)
	assert.Equal(t, 8, cfg.Crypto.ReconcileConcurrency)
}

// TestBuild_PriorityOrder checks defaults < json < env < flags.
func TestBuild_PriorityOrder(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.json = &StructuredConfig{
		App:       App{Version: "json", UserID: "json-user"},
		Clipboard: Clipboard{ClearAfter: time.Minute},
		Storage:   Storage{DB: DB{DSN: "file:json.db"}},
	}
	b.overrides = append(b.overrides,
		&StructuredConfig{App: App{UserID: "env-user"}, Storage: Storage{DB: DB{DSN: "file:env.db"}}},
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "file:flag.db"}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.App.Version)
	assert.Equal(t, "env-user", cfg.App.UserID)
	assert.Equal(t, "file:flag.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Minute, cfg.Clipboard.ClearAfter)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
}

func TestBuild_ValidationFails(t *testing.T) {
	b := newConfigBuilder()
	b.overrides = append(b.overrides, &StructuredConfig{Storage: Storage{DB: DB{Driver: "mysql"}}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// ── withEnv / withFlags / withJSON ────────────────────────────────────────────

func TestWithEnv_InvalidValueRecordsError(t *testing.T) {
	setEnvVars(t, map[string]string{"ADAPTER_RETRIES": "lots"})

	b := newConfigBuilder().withEnv()
	require.Error(t, b.err)
	assert.Empty(t, b.overrides)
}

func TestWithFlags_InvalidRecordsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "bad"})
	require.Error(t, b.err)
	assert.Empty(t, b.overrides)
}

func TestWithJSON_PathFromLastOverride(t *testing.T) {
	first := writeTempJSONConfig(t, `{"app":{"version":"first"}}`)
	second := writeTempJSONConfig(t, `{"app":{"version":"second"}}`)

	b := newConfigBuilder()
	b.overrides = append(b.overrides,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.NotNil(t, b.json)
	assert.Equal(t, "second", b.json.App.Version)
}

func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder().withJSON()
	assert.NoError(t, b.err)
	assert.Nil(t, b.json)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.overrides = append(b.overrides, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestBuild_FullPipeline(t *testing.T) {
	path := writeTempJSONConfig(t, mustJSON(t, map[string]any{
		"app":     map[string]any{"version": "9.9.9"},
		"storage": map[string]any{"db": map[string]any{"dsn": "file:from-json.db"}},
	}))
	setEnvVars(t, map[string]string{"CONFIG": path, "APP_USER_ID": "uid-env"})

	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags([]string{"-clipboard-clear", "5s"}).
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "9.9.9", cfg.App.Version)
	assert.Equal(t, "uid-env", cfg.App.UserID)
	assert.Equal(t, "file:from-json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 5*time.Second, cfg.Clipboard.ClearAfter)
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// ── ClientConfig ──────────────────────────────────────────────────────────────

func TestClientConfig_Validate(t *testing.T) {
	base := func() *ClientConfig {
		return newClientConfig(defaultConfig())
	}

	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{"no identity", func(c *ClientConfig) {}, ErrInvalidAppConfigs},
		{"user id", func(c *ClientConfig) { c.App.UserID = "uid" }, nil},
		{"user token", func(c *ClientConfig) { c.App.UserToken = "tok" }, nil},
		{"local without dsn", func(c *ClientConfig) {
			c.App.UserID = "uid"
			c.Storage.DB.DSN = ""
		}, ErrInvalidStorageConfigs},
		{"remote without timeout", func(c *ClientConfig) {
			c.App.UserID = "uid"
			c.Adapter.HTTPAddress = "http://localhost:3000"
			c.Adapter.RequestTimeout = 0
		}, ErrInvalidAdapterConfigs},
		{"remote ignores dsn", func(c *ClientConfig) {
			c.App.UserID = "uid"
			c.Adapter.HTTPAddress = "http://localhost:3000"
			c.Storage.DB.DSN = ""
		}, nil},
		{"negative clipboard delay", func(c *ClientConfig) {
			c.App.UserID = "uid"
			c.Clipboard.ClearAfter = -time.Second
		}, ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			err := c.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_UseRemote(t *testing.T) {
	c := &ClientConfig{}
	assert.False(t, c.UseRemote())
	c.Adapter.HTTPAddress = "http://localhost:3000"
	assert.True(t, c.UseRemote())
}
