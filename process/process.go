// Package process provides the snapshot types, collaborator interfaces and
// error kinds shared by the tree engine and the per-OS implementations
package process

import "errors"

var (
	// ErrInvalidProcessID is returned when the target is a reserved process or
	// above the platform's maximum process id. No enumeration has happened.
	ErrInvalidProcessID = errors.New("invalid process id")

	// ErrInvalidSignalName is returned when the configured signal is not known
	// on the current platform. No kill has been attempted.
	ErrInvalidSignalName = errors.New("invalid signal name")

	// ErrInvalidCast is returned when a process id does not fit the native
	// representation used by the OS call.
	ErrInvalidCast = errors.New("invalid cast")

	// ErrMalformedEntry marks a process directory record that could not be parsed.
	// Finders log and skip these records.
	ErrMalformedEntry = errors.New("malformed process entry")

	// ErrTaskJoin is returned when a concurrent unit of work did not complete normally
	ErrTaskJoin = errors.New("task join failure")
)
