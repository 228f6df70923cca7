package reconcile

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps handler identifiers from the rule index to reconcilers.
// It is filled at startup and read concurrently afterwards.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Reconciler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Reconciler)}
}

// Register binds a handler identifier. Registering the same identifier twice is an error.
func (r *Registry) Register(name string, rec Reconciler) error {
	if name == "" || rec == nil {
		return fmt.Errorf("invalid handler registration %q", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[name]; exists {
		return fmt.Errorf("handler %q already registered", name)
	}
	r.handlers[name] = rec
	return nil
}

// Lookup returns the reconciler bound to name.
func (r *Registry) Lookup(name string) (Reconciler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.handlers[name]
	return rec, ok
}

// Names returns the registered identifiers, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
