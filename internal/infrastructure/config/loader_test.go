package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_AppliesDefaultsAndDurations(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	config, err := Decode(v)
	require.NoError(t, err)

	assert.Equal(t, 8080, config.Server.Port)
	assert.Equal(t, 15*time.Second, config.Server.ReadTimeout)
	assert.Equal(t, 30*time.Minute, config.Database.ConnMaxLifetime)
	assert.Equal(t, 10*time.Second, config.Database.QueryTimeout)
	assert.Equal(t, 8, config.Ingestion.Concurrency)
	assert.Equal(t, 10*time.Second, config.AI.Timeout)
	assert.Equal(t, 500*time.Millisecond, config.AI.RetryDelay)
	assert.Equal(t, 500*time.Millisecond, config.Inbox.Debounce)
	assert.Equal(t, "local", config.Storage.Driver)
	assert.False(t, config.Auth.Enabled)
}

func TestProcessEnvOverrides(t *testing.T) {
	t.Setenv("TC_DB_HOST", "db.internal")
	t.Setenv("TC_AI_ENABLED", "true")
	t.Setenv("TC_INGESTION_CONCURRENCY", "16")
	t.Setenv("TC_INBOX_ENTITY_ID", "acme")
	t.Setenv("TC_AUTH_ENABLED", "not-a-bool")

	v := viper.New()
	setDefaults(v)
	processEnvOverrides(v)

	config, err := Decode(v)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", config.Database.Host)
	assert.True(t, config.AI.Enabled)
	assert.Equal(t, 16, config.Ingestion.Concurrency)
	assert.Equal(t, "acme", config.Inbox.EntityID)
	assert.False(t, config.Auth.Enabled)
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("TC_ENV", "")
	assert.Equal(t, Development, getEnvironment())

	t.Setenv("TC_ENV", "PRODUCTION")
	assert.Equal(t, Production, getEnvironment())
}
