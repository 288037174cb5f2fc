package crypto

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Registry maps operation names to operations. Safe for concurrent use.
type Registry struct {
	mu  sync.RWMutex
	ops map[string]Operation
}

// Register adds an operation to the registry
func (r *Registry) Register(op Operation) error {
	if op == nil {
		return fmt.Errorf("cannot register nil operation")
	}

	name := op.Name()
	if name == "" {
		return fmt.Errorf("operation name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ops[name]; exists {
		return fmt.Errorf("operation %s is already registered", name)
	}

	r.ops[name] = op
	return nil
}

func (r *Registry) Get(name string) (Operation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	op, exists := r.ops[name]
	return op, exists
}

// List returns all registered operations sorted by name
func (r *Registry) List() []Operation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ops := make([]Operation, 0, len(r.ops))
	for _, op := range r.ops {
		ops = append(ops, op)
	}

	sort.Slice(ops, func(i, j int) bool {
		return ops[i].Name() < ops[j].Name()
	})

	return ops
}

// Execute runs a single named operation.
func (r *Registry) Execute(ctx context.Context, name, input string, params Params) (string, error) {
	op, ok := r.Get(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownOperation, name)
	}
	return op.Execute(ctx, input, params)
}
