package backend

import (
	"fmt"
	"slices"
	"sync"
)

// Factory creates a new renderer instance.
type Factory func() Renderer

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register registers a renderer factory under name, replacing any previous
// registration. Typically called from init().
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = factory
}

// Unregister removes a renderer from the registry. Used by tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Available returns the registered renderer names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Get creates the renderer registered under name.
func Get(name string) (Renderer, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownBackend, name, Available())
	}
	return factory(), nil
}

// Default returns the software renderer.
func Default() Renderer {
	return NewSoftware()
}
