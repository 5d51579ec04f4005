// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config file, using viper for
// loading and validator for struct-level checks.
package config
