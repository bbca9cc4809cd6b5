package config

import (
	"flag"
	"os"
	"time"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/flagx"
)

// parseFlags reads:
//
//	-a  server base URL
//	-f  local storage file
//	-t  request timeout, seconds
//	-w  cart watch debounce, milliseconds
//	-v  log level
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f", "-t", "-w", "-v"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "storefront server base URL")
	fs.StringVar(&cfg.DatabasePath, "f", cfg.DatabasePath, "local storage file")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (seconds)")
	debounce := fs.Int("w", int(cfg.WatchDebounce.Milliseconds()), "cart watch debounce (milliseconds)")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	cfg.WatchDebounce = time.Duration(*debounce) * time.Millisecond
}
