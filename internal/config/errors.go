package config

import "errors"

// Errors returned by configuration operations.
var (
	// ErrFileNotFound indicates the configuration file doesn't exist.
	ErrFileNotFound = errors.New("config file not found")

	// ErrInvalidJSON indicates the file isn't well-formed JSON.
	ErrInvalidJSON = errors.New("invalid config JSON")

	// ErrValidationFailed indicates a setting holds an unusable value.
	ErrValidationFailed = errors.New("config validation failed")
)
