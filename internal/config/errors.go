package config

import "errors"

var (
	// ErrNotFound indicates the configuration file does not exist.
	ErrNotFound = errors.New("config file not found")

	// ErrSyntax indicates the configuration file is not valid TOML.
	ErrSyntax = errors.New("invalid config syntax")

	// ErrInvalidData indicates a structurally valid schedule entry carries
	// an unparseable start time. Unlike per-entry format problems, which
	// skip just the offending entry, this aborts the whole run.
	ErrInvalidData = errors.New("invalid data format")
)
