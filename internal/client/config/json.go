package config

import (
	"encoding/json"
	"os"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/flagx"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/timex"
)

// JsonConfig is the on-disk shape. Absent fields keep their current value.
type JsonConfig struct {
	ServerURL      string         `json:"server_url"`
	DatabasePath   string         `json:"database_path"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	WatchDebounce  timex.Duration `json:"watch_debounce"`
	LogLevel       string         `json:"log_level"`
}

// parseJson panics when the named file cannot be read or decoded.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.WatchDebounce.Duration > 0 {
		cfg.WatchDebounce = jc.WatchDebounce.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
