package reconcile

import "errors"

var (
	// ErrMalformedRequest means a required request field is missing.
	ErrMalformedRequest = errors.New("malformed request")
	// ErrDeviceNotFound means no device carries the requested hostname.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrUnsupportedOperation means no rule or handler covers the vendor and command.
	ErrUnsupportedOperation = errors.New("unsupported operation")
	// ErrParseFailure means the template engine rejected the template or the text.
	ErrParseFailure = errors.New("parse failure")
	// ErrEmptyResult means a well-formed parse produced zero records.
	ErrEmptyResult = errors.New("empty result")
	// ErrNoClusterAssigned means a VM sync was requested for a device without cluster.
	ErrNoClusterAssigned = errors.New("no cluster assigned")
	// ErrStoreWrite marks a failed write of a single item.
	ErrStoreWrite = errors.New("store write failure")
)

// Retryable reports whether resubmitting the same request may succeed.
// Only store write failures are transient; every other kind needs new input,
// new rules or a store change first.
func Retryable(err error) bool {
	return errors.Is(err, ErrStoreWrite)
}
