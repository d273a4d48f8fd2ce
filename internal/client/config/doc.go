// Package config loads runtime configuration for the folio CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment: FOLIO_API_URL, FOLIO_DB, FOLIO_TIMEOUT.
//  4. Command-line flags -a, -d and -t.
//
// # JSON schema
//
//	{
//	  "server_url": "http://localhost:3001",
//	  "database_path": "folio.db",
//	  "request_timeout": "5s"
//	}
package config
