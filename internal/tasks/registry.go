package tasks

import (
	"fmt"
	"sort"
)

// Definition binds a registry key to a task.
type Definition struct {
	Key  string
	Task Task

	seq int // registration sequence, breaks order ties
}

// Registry maps task keys to task definitions. Populated by explicit
// Register calls at startup and treated as immutable afterwards.
type Registry struct {
	defs map[string]*Definition
	next int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*Definition)}
}

// Register adds a task under the given key. Duplicate keys are rejected.
func (r *Registry) Register(key string, t Task) error {
	if key == "" {
		return fmt.Errorf("task key must not be empty")
	}
	if _, exists := r.defs[key]; exists {
		return fmt.Errorf("task key %q already registered", key)
	}
	r.defs[key] = &Definition{Key: key, Task: t, seq: r.next}
	r.next++
	return nil
}

// MustRegister registers or panics. For the static startup catalog only.
func (r *Registry) MustRegister(key string, t Task) {
	if err := r.Register(key, t); err != nil {
		panic(err)
	}
}

// Get looks up a task by key.
func (r *Registry) Get(key string) (Task, bool) {
	def, ok := r.defs[key]
	if !ok {
		return nil, false
	}
	return def.Task, true
}

// Len returns the number of registered tasks.
func (r *Registry) Len() int {
	return len(r.defs)
}

// Sorted returns all definitions ordered by the task's order key ascending,
// ties broken by registration sequence. This is the enumeration used for
// display and selection.
func (r *Registry) Sorted() []Definition {
	out := make([]Definition, 0, len(r.defs))
	for _, def := range r.defs {
		out = append(out, *def)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Task.Order() != out[j].Task.Order() {
			return out[i].Task.Order() < out[j].Task.Order()
		}
		return out[i].seq < out[j].seq
	})
	return out
}
