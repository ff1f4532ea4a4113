// Package registry tracks the identifiers a generation run has already
// produced and answers the free-name predicates used during validation.
package registry

import (
	"sync"

	"github.com/o-c-d/wsdl2phpgenerator/internal/naming"
)

// Registry records declared identifiers per namespace. It is the
// caller-owned uniqueness scope: the naming package itself never tracks
// which names exist. Safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	names map[string]map[string]struct{}
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{names: make(map[string]map[string]struct{})}
}

// Declare marks name as taken inside namespace.
func (r *Registry) Declare(namespace, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.declareLocked(namespace, name)
}

// Declared reports whether name has been declared inside namespace.
func (r *Registry) Declared(namespace, name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.declaredLocked(namespace, name)
}

// Free returns a predicate scoped to namespace for use with naming.Unique.
func (r *Registry) Free(namespace string) naming.Predicate {
	return func(candidate string) bool {
		return !r.Declared(namespace, candidate)
	}
}

// ClassName sanitizes raw as a class name, resolves collisions with names
// already declared in namespace via the counter loop, then declares the
// result. Resolution and declaration happen under one lock, so concurrent
// callers cannot be handed the same identifier.
func (r *Registry) ClassName(namespace, raw string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	free := func(candidate string) bool {
		return !r.declaredLocked(namespace, candidate)
	}
	name, err := naming.ValidateClass(raw, free)
	if err != nil {
		return "", err
	}
	name = naming.Unique(name, free, "")
	r.declareLocked(namespace, name)
	return name, nil
}

func (r *Registry) declareLocked(namespace, name string) {
	ns, ok := r.names[namespace]
	if !ok {
		ns = make(map[string]struct{})
		r.names[namespace] = ns
	}
	ns[name] = struct{}{}
}

func (r *Registry) declaredLocked(namespace, name string) bool {
	_, ok := r.names[namespace][name]
	return ok
}
