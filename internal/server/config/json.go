package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/portfolio/internal/flagx"
	"github.com/dmitrijs2005/portfolio/internal/timex"
	"gopkg.in/yaml.v3"
)

// JsonConfig is the on-disk shape of the config file, JSON or YAML. Durations
// accept both "168h" strings and integer nanoseconds. Absent keys leave the
// current value untouched.
type JsonConfig struct {
	EndpointAddrHTTP      *string         `json:"endpoint_addr_http" yaml:"endpoint_addr_http"`
	EndpointAddrGRPC      *string         `json:"endpoint_addr_grpc" yaml:"endpoint_addr_grpc"`
	DatabaseDSN           *string         `json:"database_dsn" yaml:"database_dsn"`
	SecretKey             *string         `json:"secret_key" yaml:"secret_key"`
	TokenValidityDuration *timex.Duration `json:"token_validity_duration" yaml:"token_validity_duration"`
	AdminEmail            *string         `json:"admin_email" yaml:"admin_email"`
	AdminPassword         *string         `json:"admin_password" yaml:"admin_password"`
	CORSOrigins           []string        `json:"cors_origins" yaml:"cors_origins"`
	Environment           *string         `json:"environment" yaml:"environment"`
	ExposeCredentials     *bool           `json:"expose_credentials" yaml:"expose_credentials"`
	RevalidateInterval    *timex.Duration `json:"revalidate_interval" yaml:"revalidate_interval"`
	S3Bucket              *string         `json:"s3_bucket"`
	S3Region              *string         `json:"s3_region"`
	S3BaseEndpoint        *string         `json:"s3_base_endpoint"`
	S3AccessKey           *string         `json:"s3_access_key"`
	S3SecretKey           *string         `json:"s3_secret_key"`
	S3PublicBaseURL       *string         `json:"s3_public_base_url"`
	RedisAddr             *string         `json:"redis_addr" yaml:"redis_addr"`
	LoginRateLimit        *int            `json:"login_rate_limit" yaml:"login_rate_limit"`
	LogBackend            *string         `json:"log_backend" yaml:"log_backend"`
}

// parseJson loads the file named by -c/-config, if any, into config. Files
// ending in .yaml or .yml are read as YAML.
// Unreadable files and invalid documents panic: the server must not start on
// a half-applied configuration.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := decodeConfig(jsonConfigFile, file, c); err != nil {
		panic(err)
	}

	c.apply(config)
}

func decodeConfig(name string, data []byte, c *JsonConfig) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, c)
	default:
		return json.Unmarshal(data, c)
	}
}

func (c *JsonConfig) apply(config *Config) {
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	if c.TokenValidityDuration != nil {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	setString(&config.AdminEmail, c.AdminEmail)
	setString(&config.AdminPassword, c.AdminPassword)
	if c.CORSOrigins != nil {
		config.CORSOrigins = c.CORSOrigins
	}
	setString(&config.Environment, c.Environment)
	if c.ExposeCredentials != nil {
		config.ExposeCredentials = *c.ExposeCredentials
	}
	if c.RevalidateInterval != nil {
		config.RevalidateInterval = c.RevalidateInterval.Duration
	}
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.S3AccessKey, c.S3AccessKey)
	setString(&config.S3SecretKey, c.S3SecretKey)
	setString(&config.S3PublicBaseURL, c.S3PublicBaseURL)
	setString(&config.RedisAddr, c.RedisAddr)
	if c.LoginRateLimit != nil {
		config.LoginRateLimit = *c.LoginRateLimit
	}
	setString(&config.LogBackend, c.LogBackend)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
