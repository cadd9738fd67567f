// Package config layers react-cli settings from defaults, an optional
// YAML file, REACT_CLI_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration operations.
var (
	// ErrInvalidConfig indicates the configuration is invalid.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrInvalidYAML indicates invalid YAML syntax in the configuration file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")
)

// ValidationError represents a single validation error with field context.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation error: field %q: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation error: field %q: %s", e.Field, e.Message)
}

// Unwrap returns ErrInvalidConfig so callers can match with errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}
