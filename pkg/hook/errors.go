package hook

import "errors"

var (
	// ErrHalt is returned by a hook to stop the remaining pipeline for the
	// current stage. Dispatch reports it as a halt, not as a failure.
	ErrHalt = errors.New("hook.halt")

	// ErrLookupNotFound indicates no resolver is registered under the name.
	ErrLookupNotFound = errors.New("hook.lookup_not_found")
)
