package reconcile

import (
	"context"
	"fmt"

	"netcollector/core/store/models"
	"netcollector/core/textfsm"
)

// Action is what happened to a single parsed item.
type Action string

const (
	// ActionCreated means a new entity was stored.
	ActionCreated Action = "created"
	// ActionUpdated means an existing entity was updated in place.
	ActionUpdated Action = "updated"
	// ActionSkipped means the item needed no write.
	ActionSkipped Action = "skipped"
	// ActionLinked means a connection between two interfaces was created.
	ActionLinked Action = "linked"
	// ActionFailed means the item could not be processed.
	ActionFailed Action = "failed"
)

// Outcome records the result of processing one item of a batch.
type Outcome struct {
	// Item names the entity (interface name, inventory item, VM name).
	Item string `json:"item"`
	// Action is what happened to the item.
	Action Action `json:"action"`
	// Detail is a human-readable note.
	Detail string `json:"detail,omitempty"`
	// Err is set for failed items.
	Err error `json:"-"`
}

// Result is the uniform answer of a reconciliation or a dispatch.
type Result struct {
	// Success is the batch level verdict.
	Success bool `json:"result"`
	// Message is the human-readable detail returned to the caller.
	Message string `json:"detail"`
	// Err carries the failure kind; match it with errors.Is.
	Err error `json:"-"`
	// Outcomes holds the per-item results, in processing order.
	Outcomes []Outcome `json:"outcomes,omitempty"`
}

// Failure builds a failed Result of the given kind.
func Failure(kind error, format string, args ...any) Result {
	return Result{Success: false, Message: fmt.Sprintf(format, args...), Err: kind}
}

// Reconciler upserts one entity family from parsed records.
type Reconciler interface {
	Reconcile(ctx context.Context, device *models.Device, records []textfsm.Record) Result
}

// ReconcilerFunc adapts a function to the Reconciler interface.
type ReconcilerFunc func(ctx context.Context, device *models.Device, records []textfsm.Record) Result

// Reconcile calls f.
func (f ReconcilerFunc) Reconcile(ctx context.Context, device *models.Device, records []textfsm.Record) Result {
	return f(ctx, device, records)
}
