// Package reconcile defines the contract shared by the dispatch engine and the
// reconcilers.
//
// # Contract
//
// A Reconciler receives a device and the parsed records and returns a Result:
// a batch verdict, a human-readable message, an error kind and the per-item
// Outcomes. Reconcilers never panic or return errors to the dispatcher; item
// failures are collected as outcomes and only the batch verdict is reported to
// the HTTP caller.
//
// # Registry
//
// Handler identifiers from the rule index ("syncInterfaces", "syncInventory",
// "syncVMs") are bound to reconcilers at startup through Registry.Register.
//
// # Error kinds
//
// ErrMalformedRequest, ErrDeviceNotFound, ErrUnsupportedOperation, ErrParseFailure,
// ErrEmptyResult, ErrNoClusterAssigned and ErrStoreWrite. Only ErrStoreWrite is
// retryable.
package reconcile
