package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid. Concrete failures wrap one of these.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty JWT secret or an out-of-range bcrypt cost).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN or an unknown driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, an unknown status policy).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid API client settings
	// (for example, a missing server URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
