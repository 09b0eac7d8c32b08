// Package config loads runtime configuration for the student portal.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string            path to the portal database file
//	-session-email bool  keep email in the persisted session record
//
// # JSON schema
//
//	{
//	  "database_path": "portal.db",
//	  "session_with_email": true
//	}
//
// Primary API
//
//   - type Config                     — holds DatabasePath and SessionWithEmail
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables; use the JSON file
// or flags to configure values.
package config
