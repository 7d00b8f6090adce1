package sexprdot

import "errors"

var (
	// ErrFileNotExist is returned when an input file is missing.
	ErrFileNotExist = errors.New("file does not exist")
	// ErrConfigValidation is returned when a configuration value is out of range.
	ErrConfigValidation = errors.New("configuration validation failed")
)
