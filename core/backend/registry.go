package backend

import (
	"fmt"
	"sync"
)

// Constructor is a function that creates a backend instance from its options.
type Constructor func(opts Options) (Storage, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Constructor)
)

// Register makes a backend constructor available under the given name.
// Backends call this from init(), so the name must be unique.
func Register(name string, constructor Constructor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[name]; dup {
		panic("backend: Register called twice for " + name)
	}
	registry[name] = constructor
}

// Open instantiates the backend registered under name with the given options.
func Open(name string, opts Options) (Storage, error) {
	registryMu.RLock()
	constructor, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown storage backend: %s", name)
	}
	return constructor(opts)
}

// Registered returns the names of all registered backends.
func Registered() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
