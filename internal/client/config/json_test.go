package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	t.Run("overlays present fields", func(t *testing.T) {
		os.Args = []string{"cli", "-c", writeFile(t, `{"server_url":"https://shop.example","request_timeout":"3s","watch_debounce":50000000}`)}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "https://shop.example", cfg.ServerURL)
		assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 50*time.Millisecond, cfg.WatchDebounce)
		assert.Equal(t, "ecomus-client.db", cfg.DatabasePath)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("no config flag leaves config alone", func(t *testing.T) {
		os.Args = []string{"cli"}
		cfg := &Config{ServerURL: "keep"}
		parseJson(cfg)
		assert.Equal(t, "keep", cfg.ServerURL)
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"cli", "-config", filepath.Join(t.TempDir(), "nope.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("bad json panics", func(t *testing.T) {
		os.Args = []string{"cli", "-c", writeFile(t, `{"request_timeout": true}`)}
		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
