// Package config loads runtime configuration for the crmdash CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables CRMDASH_SERVER_URL and CRMDASH_TIMEOUT.
//
// Command-line flags are owned by the cobra command tree, which uses the
// loaded values as flag defaults.
//
// # JSON schema
//
//	{
//	  "server_url": "http://localhost:3000",
//	  "timeout": "10s",
//	  "session_file": "/home/me/.config/crmdash/session.json"
//	}
package config
