package validator

import (
	"fmt"
	"slices"
	"sync"
)

// Registry maps kind names to kinds. It is append-only: a name, once
// registered, always resolves to the same kind.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]Kind
	order []string
}

func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]Kind)}
}

// DefaultRegistry returns a fresh registry holding the built-in kinds.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, k := range []Kind{
		Any(),
		String(),
		Integer(),
		Float(),
		Decimal(),
		PositiveInteger(),
		PositiveFloat(),
		PositiveDecimal(),
		NonEmptyString(),
	} {
		// built-in names are unique
		_ = r.Register(k)
	}
	return r
}

func (r *Registry) Register(k Kind) error {
	if k.Name == "" {
		return ErrInvalidKind
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.kinds[k.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateKind, k.Name)
	}
	r.kinds[k.Name] = k
	r.order = append(r.order, k.Name)
	return nil
}

func (r *Registry) Lookup(name string) (Kind, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	k, ok := r.kinds[name]
	if !ok {
		return Kind{}, fmt.Errorf("%w: %s", ErrUnknownKind, name)
	}
	return k, nil
}

// Names lists registered kinds in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}
