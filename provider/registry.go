package provider

import (
	"sort"
	"sync"

	"github.com/commercekit/commercekit/config"
	"github.com/commercekit/commercekit/errors"
)

// Registry maps provider names to factories. The default registry is
// populated by provider packages at init time; Create is called once per
// client, at configuration time.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a named factory. Re-registering a name replaces the factory.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Create instantiates the named provider with the given (already validated)
// configuration.
func (r *Registry) Create(name string, cfg config.Provider) (Commerce, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.Configuration("unknown provider: " + name).
			WithDetail("provider", name).
			WithDetail("registered", r.List())
	}
	return factory(cfg)
}

// List returns the sorted names of all registered factories.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry }

// Register adds a factory to the default registry.
func Register(name string, factory Factory) {
	defaultRegistry.Register(name, factory)
}
