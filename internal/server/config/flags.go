package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/portfolio/internal/flagx"
)

var allowedFlags = []string{
	"-a", "-g", "-d", "-s", "-t", "-ae", "-ap", "-o", "-env", "-x", "-ri",
	"-b", "-rg", "-e", "-u", "-p", "-pub", "-r", "-l", "-log",
}

// parseFlags populates Config fields from command-line flags.
//
//	-a   string  HTTP bind address (":3001")
//	-g   string  gRPC health bind address (":50051")
//	-d   string  PostgreSQL DSN; empty keeps content in memory
//	-s   string  JWT HMAC secret
//	-t   int     token validity, hours
//	-ae  string  admin email
//	-ap  string  admin password
//	-o   string  comma separated CORS origins
//	-env string  development | production
//	-x   bool    expose GET /api/auth/credentials (ignored in production)
//	-ri  int     public listing revalidation window, seconds
//	-b/-rg/-e/-u/-p/-pub  S3 bucket, region, endpoint, access key, secret key, public URL
//	-r   string  Redis address for the login limiter
//	-l   int     login attempts per minute per client
//	-log string  slog | zap
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], allowedFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "gRPC health address and port")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Hours()), "token validity (in hours)")
	fs.StringVar(&config.AdminEmail, "ae", config.AdminEmail, "admin email")
	fs.StringVar(&config.AdminPassword, "ap", config.AdminPassword, "admin password")
	origins := fs.String("o", "", "comma separated CORS origins")
	fs.StringVar(&config.Environment, "env", config.Environment, "environment")
	fs.BoolVar(&config.ExposeCredentials, "x", config.ExposeCredentials, "expose credentials endpoint")
	revalidate := fs.Int("ri", int(config.RevalidateInterval.Seconds()), "revalidation window (in seconds)")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "rg", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.S3AccessKey, "u", config.S3AccessKey, "S3 access key")
	fs.StringVar(&config.S3SecretKey, "p", config.S3SecretKey, "S3 secret key")
	fs.StringVar(&config.S3PublicBaseURL, "pub", config.S3PublicBaseURL, "public base URL of uploaded images")
	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "redis address")
	fs.IntVar(&config.LoginRateLimit, "l", config.LoginRateLimit, "login attempts per minute")
	fs.StringVar(&config.LogBackend, "log", config.LogBackend, "log backend")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// only flags given explicitly replace durations, so "90m" from the
	// environment is not truncated to whole hours
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Hour
		case "ri":
			config.RevalidateInterval = time.Duration(*revalidate) * time.Second
		case "o":
			config.CORSOrigins = flagx.SplitList(*origins)
		}
	})
}
