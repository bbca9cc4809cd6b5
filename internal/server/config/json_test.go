package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	t.Run("all fields", func(t *testing.T) {
		os.Args = []string{"server", "-config", writeTempJSON(t, map[string]any{
			"endpoint_addr_http":             ":9090",
			"database_dsn":                   "postgres://u:p@db/shop",
			"secret_key":                     "k",
			"access_token_validity_duration": "2h",
			"redis_addr":                     "redis:6379",
			"cache_ttl":                      "30s",
			"s3_root_user":                   "user",
			"s3_root_password":               "password",
			"s3_bucket":                      "bucket",
			"s3_region":                      "eu-west-1",
			"s3_base_endpoint":               "http://minio:9000",
			"presign_ttl":                    "1m",
			"require_admin_for_order_writes": true,
			"shutdown_timeout":               "3s",
			"log_level":                      "debug",
			"bootstrap_admin_email":          "owner@shop.test",
			"bootstrap_admin_password":       "pw",
		})}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, Config{
			EndpointAddrHTTP:            ":9090",
			DatabaseDSN:                 "postgres://u:p@db/shop",
			SecretKey:                   "k",
			AccessTokenValidityDuration: 2 * time.Hour,
			RedisAddr:                   "redis:6379",
			CacheTTL:                    30 * time.Second,
			S3RootUser:                  "user",
			S3RootPassword:              "password",
			S3Bucket:                    "bucket",
			S3Region:                    "eu-west-1",
			S3BaseEndpoint:              "http://minio:9000",
			PresignTTL:                  time.Minute,
			RequireAdminForOrderWrites:  true,
			ShutdownTimeout:             3 * time.Second,
			LogLevel:                    "debug",
			BootstrapAdminEmail:         "owner@shop.test",
			BootstrapAdminPassword:      "pw",
		}, *cfg)
	})

	t.Run("absent fields keep defaults", func(t *testing.T) {
		os.Args = []string{"server", "-c", writeTempJSON(t, map[string]any{"s3_bucket": "other"})}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "other", cfg.S3Bucket)
		assert.Equal(t, ":8080", cfg.EndpointAddrHTTP)
		assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	})

	t.Run("explicit empty redis disables cache", func(t *testing.T) {
		os.Args = []string{"server", "-c", writeTempJSON(t, map[string]any{"redis_addr": ""})}
		cfg := &Config{RedisAddr: "redis:6379"}
		parseJson(cfg)
		assert.Empty(t, cfg.RedisAddr)
	})

	t.Run("no config flag", func(t *testing.T) {
		os.Args = []string{"server"}
		cfg := &Config{SecretKey: "keep"}
		parseJson(cfg)
		assert.Equal(t, "keep", cfg.SecretKey)
	})

	t.Run("unreadable file panics", func(t *testing.T) {
		os.Args = []string{"server", "-c", filepath.Join(t.TempDir(), "missing.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("invalid json panics", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
		os.Args = []string{"server", "-c", path}
		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
