package service

import (
	"errors"
	"fmt"
)

// ErrHistoryDisabled is returned by ListExports when no history database is configured.
var ErrHistoryDisabled = errors.New("export history is not configured")

// LaunchFailedError reports that the OS could not open a folder.
// Fallback is true when the home directory was unknown and the current directory was opened instead.
type LaunchFailedError struct {
	Path     string
	Fallback bool
	Cause    error
}

func (e *LaunchFailedError) Error() string {
	return fmt.Sprintf("open %s: %v", e.Path, e.Cause)
}

func (e *LaunchFailedError) Unwrap() error { return e.Cause }
