// Package config manages application configuration for the Sanctuary API.
//
// The config package loads and validates configuration from environment variables.
// All configuration is centralized here to provide a single source of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables:
//
//	cfg, _ := config.Load()
//
// Load never fails. Missing variables fall back to defaults and malformed
// values (a non-numeric PORT, an unparseable timeout) quietly revert to the
// default rather than aborting startup. Call Validate afterwards to surface
// anything incoherent; the only hard requirement it waives is DATABASE_URL,
// whose absence puts the document store into degraded mode instead of
// stopping the process.
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts)
//   - DatabaseConfig: SurrealDB connection settings
//   - LogConfig: structured logging settings
//
// # Environment Variables
//
// Key environment variables:
//
//	PORT                     - HTTP server port (default: 8000)
//	SERVER_ENV               - development, production, or test
//	SERVER_READ_TIMEOUT      - HTTP read timeout (default: 15s)
//	SERVER_WRITE_TIMEOUT     - HTTP write timeout (default: 15s)
//	SERVER_SHUTDOWN_TIMEOUT  - graceful shutdown budget (default: 10s)
//	DATABASE_URL             - SurrealDB connection URL (no default)
//	DATABASE_NAMESPACE       - Database namespace (default: sanctuary)
//	DATABASE_NAME            - Database name (default: sanctuary)
//	DATABASE_USER            - Database username (default: root)
//	DATABASE_PASS            - Database password (default: root)
//	LOG_LEVEL                - debug, info, warn, or error (default: info)
//
// DB_NAME is honored as a legacy alias for DATABASE_NAME when the latter is
// unset. DatabaseConfig additionally records whether DATABASE_URL and
// DATABASE_NAME were literally present in the environment; the diagnostics
// endpoint reports that presence without echoing the values.
package config
