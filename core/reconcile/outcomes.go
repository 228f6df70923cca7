package reconcile

import "fmt"

// Outcomes collects per-item results of a batch.
type Outcomes struct {
	items []Outcome
}

// Add appends an outcome.
func (o *Outcomes) Add(item string, action Action, detail string) {
	o.items = append(o.items, Outcome{Item: item, Action: action, Detail: detail})
}

// Fail appends a failed outcome.
func (o *Outcomes) Fail(item string, err error) {
	o.items = append(o.items, Outcome{Item: item, Action: ActionFailed, Detail: err.Error(), Err: err})
}

// List returns the collected outcomes.
func (o *Outcomes) List() []Outcome {
	return o.items
}

// Count returns how many outcomes carry the given action.
func (o *Outcomes) Count(action Action) int {
	n := 0
	for _, it := range o.items {
		if it.Action == action {
			n++
		}
	}
	return n
}

// Summary is a short "created=1 updated=2 ..." line for logs and messages.
func (o *Outcomes) Summary() string {
	return fmt.Sprintf("created=%d updated=%d skipped=%d linked=%d failed=%d",
		o.Count(ActionCreated), o.Count(ActionUpdated), o.Count(ActionSkipped),
		o.Count(ActionLinked), o.Count(ActionFailed))
}
