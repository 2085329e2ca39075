package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.4.0", "2026-05-01", "a1b2c3")

	assert.Equal(t, "v1.4.0", info.BuildVersion())
	assert.Equal(t, "2026-05-01", info.BuildDate())
	assert.Equal(t, "a1b2c3", info.BuildCommit())
	assert.Equal(t, "Build version: v1.4.0\nBuild date: 2026-05-01\nBuild commit: a1b2c3", info.String())
}

func TestAppBuildInfo_Empty(t *testing.T) {
	info := NewAppBuildInfo("", "", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}

func TestEnvelope_IsComplete(t *testing.T) {
	assert.True(t, Envelope{CipherText: "a", Salt: "b", IV: "c"}.IsComplete())
	assert.False(t, Envelope{CipherText: "a", Salt: "b"}.IsComplete())
	assert.False(t, Envelope{}.IsComplete())
}
