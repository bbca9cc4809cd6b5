// Package config loads settings for the terminal storefront client.
// Precedence: defaults, then a JSON file named by -c/-config, then flags.
package config

import "time"

type Config struct {
	ServerURL      string
	DatabasePath   string
	RequestTimeout time.Duration
	WatchDebounce  time.Duration
	LogLevel       string
}

func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.DatabasePath = "ecomus-client.db"
	c.RequestTimeout = 10 * time.Second
	c.WatchDebounce = 150 * time.Millisecond
	c.LogLevel = "warn"
}

func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
