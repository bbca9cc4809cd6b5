package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8080", c.EndpointAddrHTTP)
	assert.Contains(t, c.DatabaseDSN, "ecomus")
	assert.Equal(t, 24*time.Hour, c.AccessTokenValidityDuration)
	assert.Empty(t, c.RedisAddr)
	assert.Equal(t, 5*time.Minute, c.CacheTTL)
	assert.Equal(t, "media", c.S3Bucket)
	assert.Equal(t, 15*time.Minute, c.PresignTTL)
	assert.False(t, c.RequireAdminForOrderWrites)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_NoArgs(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = []string{"server"}

	cfg := LoadConfig()
	require.NotNil(t, cfg)

	var want Config
	want.LoadDefaults()
	assert.Equal(t, want, *cfg)
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	path := writeTempJSON(t, map[string]any{
		"endpoint_addr_http": ":7000",
		"secret_key":         "from-json",
	})
	os.Args = []string{"server", "-c", path, "-a", ":9000"}

	cfg := LoadConfig()
	assert.Equal(t, ":9000", cfg.EndpointAddrHTTP)
	assert.Equal(t, "from-json", cfg.SecretKey)
}
