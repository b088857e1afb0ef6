// Package config loads and validates the service configuration from
// environment variables (PLANTCARE_ prefix) and an optional config.yaml,
// giving the rest of the application type-safe access to server and
// database settings.
package config
