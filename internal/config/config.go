// Package config resolves the process configuration for the MCP server.
// Configuration is read once at startup; the resulting value is immutable
// and handed to the components that need it.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/monarch-agent/monarch-mcp/internal/types"
)

// Configuration errors. Missing credentials are fatal: the server refuses
// to start rather than failing every tool call at runtime.
var (
	ErrMissingEmail    = errors.New("MONARCH_EMAIL is not set")
	ErrMissingPassword = errors.New("MONARCH_PASSWORD is not set")
)

// Transport names accepted by MCP_TRANSPORT.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// Config is the resolved process configuration.
type Config struct {
	Credentials types.Credentials

	// BaseURL overrides the Monarch Money API base URL.
	BaseURL string

	// Transport selects the MCP transport (stdio or sse).
	Transport string

	// ListenAddr is the SSE listen address.
	ListenAddr string

	// HTTPTimeout bounds each remote call.
	HTTPTimeout time.Duration

	// RetryMax is the number of transport-level retries for failed
	// requests. Zero disables retries.
	RetryMax int

	// SentryDSN enables error tracking when set.
	SentryDSN string

	// LogLevel is the minimum slog level (debug, info, warn, error).
	LogLevel string
}

// Load reads configuration from the environment. It fails when the
// account email or password is absent; the MFA seed is optional.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("base_url", types.DefaultBaseURL)
	v.SetDefault("transport", TransportStdio)
	v.SetDefault("listen_addr", "127.0.0.1:8000")
	v.SetDefault("http_timeout", types.DefaultTimeout)
	v.SetDefault("retry_max", types.DefaultRetryMax)
	v.SetDefault("log_level", "info")

	v.AutomaticEnv()
	bind(v, "email", "MONARCH_EMAIL")
	bind(v, "password", "MONARCH_PASSWORD")
	bind(v, "mfa_secret", "MONARCH_MFA_SECRET")
	bind(v, "base_url", "MONARCH_BASE_URL")
	bind(v, "transport", "MCP_TRANSPORT")
	bind(v, "listen_addr", "MCP_LISTEN_ADDR")
	bind(v, "http_timeout", "MONARCH_HTTP_TIMEOUT")
	bind(v, "retry_max", "MONARCH_RETRY_MAX")
	bind(v, "sentry_dsn", "SENTRY_DSN")
	bind(v, "log_level", "LOG_LEVEL")

	cfg := &Config{
		Credentials: types.Credentials{
			Email:     v.GetString("email"),
			Password:  v.GetString("password"),
			MFASecret: v.GetString("mfa_secret"),
		},
		BaseURL:     v.GetString("base_url"),
		Transport:   strings.ToLower(v.GetString("transport")),
		ListenAddr:  v.GetString("listen_addr"),
		HTTPTimeout: v.GetDuration("http_timeout"),
		RetryMax:    v.GetInt("retry_max"),
		SentryDSN:   v.GetString("sentry_dsn"),
		LogLevel:    strings.ToLower(v.GetString("log_level")),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Credentials.Email == "" {
		return ErrMissingEmail
	}
	if c.Credentials.Password == "" {
		return ErrMissingPassword
	}
	if c.Transport != TransportStdio && c.Transport != TransportSSE {
		return errors.New("MCP_TRANSPORT must be stdio or sse")
	}
	if c.RetryMax < 0 {
		return errors.New("MONARCH_RETRY_MAX must not be negative")
	}
	return nil
}

func bind(v *viper.Viper, key, env string) {
	// BindEnv only errors on an empty key
	_ = v.BindEnv(key, env)
}
