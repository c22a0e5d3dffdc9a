package emit

import (
	"fmt"
	"sync"
)

// Registry stores emitters by name, providing discovery and duplication
// safeguards. Registration order is preserved: documents are generated in
// the order their stages were wired.
type Registry struct {
	mu       sync.RWMutex
	emitters map[string]Emitter
	order    []string
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		emitters: make(map[string]Emitter),
	}
}

// Register adds an emitter by its Name(). Duplicate names return an error.
func (r *Registry) Register(emitter Emitter) error {
	if emitter == nil {
		return fmt.Errorf("emit: emitter is required")
	}
	name := emitter.Name()
	if name == "" {
		return fmt.Errorf("emit: emitter name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.emitters[name]; exists {
		return fmt.Errorf("emit: emitter %q already registered", name)
	}

	r.emitters[name] = emitter
	r.order = append(r.order, name)
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(emitter Emitter) {
	if err := r.Register(emitter); err != nil {
		panic(err)
	}
}

// Get retrieves an emitter by name.
func (r *Registry) Get(name string) (Emitter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	emitter, ok := r.emitters[name]
	if !ok {
		return nil, fmt.Errorf("emit: emitter %q not found", name)
	}
	return emitter, nil
}

// Has reports whether an emitter is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.emitters[name]
	return ok
}

// Names returns the registered emitter names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Ordered returns the registered emitters in registration order.
func (r *Registry) Ordered() []Emitter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Emitter, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.emitters[name])
	}
	return out
}
