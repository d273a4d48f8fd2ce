// Package config handles configuration for the portfolio server: defaults,
// an optional JSON file, environment variables (with .env.local support) and
// command-line flags, applied in that order.
package config

import (
	"errors"
	"time"
)

// Environment names recognised by the server.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds runtime settings for the portfolio server.
//
// DatabaseDSN selects persistence: empty keeps content in memory, otherwise
// it is a PostgreSQL DSN (pgx). S3Bucket empty disables the upload API.
// RedisAddr empty keeps the login limiter in process memory.
type Config struct {
	EndpointAddrHTTP      string
	EndpointAddrGRPC      string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
	AdminEmail            string
	AdminPassword         string
	CORSOrigins           []string
	Environment           string
	ExposeCredentials     bool
	RevalidateInterval    time.Duration
	S3Bucket              string
	S3Region              string
	S3BaseEndpoint        string
	S3AccessKey           string
	S3SecretKey           string
	S3PublicBaseURL       string
	RedisAddr             string
	LoginRateLimit        int
	LogBackend            string
}

// LoadDefaults populates Config with development defaults. The secret and
// the admin credentials have no defaults and must be supplied.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":3001"
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = ""
	c.TokenValidityDuration = 7 * 24 * time.Hour
	c.CORSOrigins = []string{"http://localhost:3000"}
	c.Environment = EnvDevelopment
	c.ExposeCredentials = false
	c.RevalidateInterval = 60 * time.Second
	c.S3Region = "us-east-1"
	c.LoginRateLimit = 10
	c.LogBackend = "slog"
}

// IsProduction reports whether internal error details must be hidden.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// CredentialsEndpointEnabled reports whether GET /api/auth/credentials is
// mounted. It never is in production.
func (c *Config) CredentialsEndpointEnabled() bool {
	return c.ExposeCredentials && !c.IsProduction()
}

// Validate fails when a setting the server cannot start without is missing.
func (c *Config) Validate() error {
	var errs []error
	if c.SecretKey == "" {
		errs = append(errs, errors.New("JWT secret is not configured"))
	}
	if c.AdminEmail == "" || c.AdminPassword == "" {
		errs = append(errs, errors.New("admin email and password are required"))
	}
	if c.TokenValidityDuration <= 0 {
		errs = append(errs, errors.New("token validity must be positive"))
	}
	return errors.Join(errs...)
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
