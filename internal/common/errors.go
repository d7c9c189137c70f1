// Package common defines shared sentinel errors used across voicekeep
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Validation errors (bad input, declined before any I/O happens).
	ErrValidation = errors.New("validation error")

	// Storage errors (disk read/write/delete failures).
	ErrStorageIO = errors.New("storage i/o error")
)
