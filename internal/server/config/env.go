package config

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/portfolio/internal/flagx"
)

// dotEnvFiles are loaded before reading the environment. Variables that are
// already set win over file contents.
var dotEnvFiles = []string{".env.local", ".env"}

// parseEnv overlays environment variables. PORT is accepted for platforms
// that only hand out a port number.
func parseEnv(config *Config) {
	if err := flagx.LoadDotEnv(dotEnvFiles...); err != nil {
		panic(err)
	}

	var port string
	flagx.EnvString("PORT", &port)
	if port != "" {
		config.EndpointAddrHTTP = ":" + strings.TrimPrefix(port, ":")
	}
	flagx.EnvString("HTTP_ADDR", &config.EndpointAddrHTTP)
	flagx.EnvString("GRPC_ADDR", &config.EndpointAddrGRPC)
	flagx.EnvString("DATABASE_DSN", &config.DatabaseDSN)
	flagx.EnvString("JWT_SECRET", &config.SecretKey)
	flagx.EnvString("ADMIN_EMAIL", &config.AdminEmail)
	flagx.EnvString("ADMIN_PASSWORD", &config.AdminPassword)
	flagx.EnvList("CORS_ORIGINS", &config.CORSOrigins)
	flagx.EnvString("APP_ENV", &config.Environment)
	flagx.EnvString("S3_BUCKET", &config.S3Bucket)
	flagx.EnvString("S3_REGION", &config.S3Region)
	flagx.EnvString("S3_BASE_ENDPOINT", &config.S3BaseEndpoint)
	flagx.EnvString("S3_ACCESS_KEY", &config.S3AccessKey)
	flagx.EnvString("S3_SECRET_KEY", &config.S3SecretKey)
	flagx.EnvString("S3_PUBLIC_BASE_URL", &config.S3PublicBaseURL)
	flagx.EnvString("REDIS_ADDR", &config.RedisAddr)
	flagx.EnvString("LOG_BACKEND", &config.LogBackend)

	mustEnv("TOKEN_TTL", flagx.EnvDuration("TOKEN_TTL", &config.TokenValidityDuration))
	mustEnv("REVALIDATE_INTERVAL", flagx.EnvDuration("REVALIDATE_INTERVAL", &config.RevalidateInterval))
	mustEnv("EXPOSE_CREDENTIALS", flagx.EnvBool("EXPOSE_CREDENTIALS", &config.ExposeCredentials))
	mustEnv("LOGIN_RATE_LIMIT", flagx.EnvInt("LOGIN_RATE_LIMIT", &config.LoginRateLimit))
}

func mustEnv(key string, err error) {
	if err != nil {
		panic(fmt.Errorf("invalid %s: %w", key, err))
	}
}
