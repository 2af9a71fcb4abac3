// Package config provides server configuration for keva.
//
// This package defines the server configuration structure and validation:
//
//   - spec.go: ServerConfig struct definition
//   - default.go: Default configuration values
//   - verify.go: Validation (port ranges, snapshot path, worker count)
//
// Configuration is loaded via internal/infra/confloader and supports
// files and environment variables.
package config
