package utils

import "github.com/pkg/errors"

// Error kinds, classify with errors.Cause
var (
	// ErrBadArgument marks a non-integer or non-positive dimension or an invalid option
	ErrBadArgument = errors.New("bad argument")
	// ErrTerminalUnavailable marks a failed terminal size query, callers fall back to the default board
	ErrTerminalUnavailable = errors.New("terminal unavailable")
	// ErrIOWriteFailed marks a failed write or flush to the terminal
	ErrIOWriteFailed = errors.New("io write failed")
)

// IsKind reports whether err was caused by the given kind
func IsKind(err, kind error) bool {
	return err != nil && errors.Cause(err) == kind
}
