package domain

import (
	"errors"
	"fmt"
)

// ErrStaleEpoch rejects a view model publish whose data was fetched under
// a superseded cache generation, either because the synchronizer was
// deactivated or because a settings commit invalidated everything.
var ErrStaleEpoch = errors.New("view model epoch is stale")

// TransportError is a failed exchange with the fund engine: connection
// refused, timeout, or a non-success status. During polling these are
// swallowed and retried on the next tick; on operator commands they are
// surfaced so the operator can retry explicitly.
type TransportError struct {
	Op         string
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s returned status %d", e.Op, e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ValidationError reports a settings edit field that failed coercion at
// commit time
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}
