package store

import "errors"

var (
	// ErrAccessDenied marks a write or delete the OS rejected.
	ErrAccessDenied = errors.New("backing store access denied")

	// ErrInvalidBackup marks a restore source that is not a valid flat
	// path-to-code JSON mapping.
	ErrInvalidBackup = errors.New("invalid backup document")
)
