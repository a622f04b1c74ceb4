package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupConfigDefaults(t *testing.T) {
	cfg := &CleanupConfig{Interval: 300}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 30*24*time.Hour, cfg.MaxAge, "an unset max-age falls back to thirty days")

	cfg = &CleanupConfig{Interval: 300, MaxAge: time.Hour}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, time.Hour, cfg.MaxAge, "an explicit max-age is kept")

	cfg = &CleanupConfig{Interval: 0}
	assert.Error(t, cfg.Validate(), "a non-positive interval is rejected")

	cfg = &CleanupConfig{Interval: 300, MaxAge: -time.Hour}
	assert.Error(t, cfg.Validate(), "a negative max-age is rejected")
}

func TestMigrationConfigValidate(t *testing.T) {
	valid := MigrationConfig{
		BaseUrl:          "http://localhost:8092",
		LedgerEndpoint:   "/v1/migrations/ledger",
		ActivityEndpoint: "/v1/migrations/activity",
		Timeout:          5000,
	}
	require.NoError(t, valid.Validate())

	broken := valid
	broken.BaseUrl = ""
	assert.Error(t, broken.Validate())

	broken = valid
	broken.BaseUrl = "not a url"
	assert.Error(t, broken.Validate())

	broken = valid
	broken.LedgerEndpoint = ""
	assert.Error(t, broken.Validate())

	broken = valid
	broken.Timeout = 0
	assert.Error(t, broken.Validate())
}
