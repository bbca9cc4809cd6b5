package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/flagx"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/timex"
)

// JsonConfig is the on-disk shape. Durations accept "15m" or nanoseconds.
// Pointer fields distinguish "absent" from an explicit false.
type JsonConfig struct {
	EndpointAddrHTTP            string         `json:"endpoint_addr_http"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	RedisAddr                   *string        `json:"redis_addr"`
	CacheTTL                    timex.Duration `json:"cache_ttl"`
	S3RootUser                  string         `json:"s3_root_user"`
	S3RootPassword              string         `json:"s3_root_password"`
	S3Bucket                    string         `json:"s3_bucket"`
	S3Region                    string         `json:"s3_region"`
	S3BaseEndpoint              string         `json:"s3_base_endpoint"`
	PresignTTL                  timex.Duration `json:"presign_ttl"`
	RequireAdminForOrderWrites  *bool          `json:"require_admin_for_order_writes"`
	ShutdownTimeout             timex.Duration `json:"shutdown_timeout"`
	LogLevel                    string         `json:"log_level"`
	BootstrapAdminEmail         string         `json:"bootstrap_admin_email"`
	BootstrapAdminPassword      string         `json:"bootstrap_admin_password"`
}

// parseJson panics if the named file cannot be read or decoded.
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

	setString(&cfg.EndpointAddrHTTP, jc.EndpointAddrHTTP)
	setString(&cfg.DatabaseDSN, jc.DatabaseDSN)
	setString(&cfg.SecretKey, jc.SecretKey)
	setDuration(&cfg.AccessTokenValidityDuration, jc.AccessTokenValidityDuration)
	if jc.RedisAddr != nil {
		cfg.RedisAddr = *jc.RedisAddr
	}
	setDuration(&cfg.CacheTTL, jc.CacheTTL)
	setString(&cfg.S3RootUser, jc.S3RootUser)
	setString(&cfg.S3RootPassword, jc.S3RootPassword)
	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	setDuration(&cfg.PresignTTL, jc.PresignTTL)
	if jc.RequireAdminForOrderWrites != nil {
		cfg.RequireAdminForOrderWrites = *jc.RequireAdminForOrderWrites
	}
	setDuration(&cfg.ShutdownTimeout, jc.ShutdownTimeout)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.BootstrapAdminEmail, jc.BootstrapAdminEmail)
	setString(&cfg.BootstrapAdminPassword, jc.BootstrapAdminPassword)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v timex.Duration) {
	if v.Duration > 0 {
		*dst = v.Duration
	}
}
