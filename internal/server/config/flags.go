package config

import (
	"flag"
	"os"
	"time"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/flagx"
)

// parseFlags reads the short flags below; anything else on the command line
// is ignored.
//
//	-a  HTTP listen address
//	-d  PostgreSQL DSN
//	-s  JWT signing secret
//	-t  access token validity, minutes
//	-r  Redis address ("" disables the cache)
//	-l  cache TTL, seconds
//	-u  S3 access key
//	-p  S3 secret key
//	-b  S3 bucket
//	-g  S3 region
//	-e  S3 endpoint
//	-w  require admin for order PUT/DELETE
//	-v  log level
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-r", "-l", "-u", "-p", "-b", "-g", "-e", "-w", "-v"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&cfg.EndpointAddrHTTP, "a", cfg.EndpointAddrHTTP, "address and port to listen on")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "token signing secret")
	tokenMinutes := fs.Int("t", int(cfg.AccessTokenValidityDuration.Minutes()), "access token validity (minutes)")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address, empty disables caching")
	cacheSeconds := fs.Int("l", int(cfg.CacheTTL.Seconds()), "content cache TTL (seconds)")
	fs.StringVar(&cfg.S3RootUser, "u", cfg.S3RootUser, "S3 access key")
	fs.StringVar(&cfg.S3RootPassword, "p", cfg.S3RootPassword, "S3 secret key")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.S3Region, "g", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 endpoint")
	fs.BoolVar(&cfg.RequireAdminForOrderWrites, "w", cfg.RequireAdminForOrderWrites, "require admin for order updates and deletes")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.AccessTokenValidityDuration = time.Duration(*tokenMinutes) * time.Minute
	cfg.CacheTTL = time.Duration(*cacheSeconds) * time.Second
}
