// Package casregistry maps backend names from configuration to CAS constructors.
package casregistry

import (
	"fmt"
	"sort"
	"sync"

	"xdao.co/merklize/storage"
)

// Backend is a build-time plugin that can open a storage.CAS implementation.
//
// Backends register themselves in init(); a binary must import the backend
// package (usually as a blank import) for registration to occur.
type Backend struct {
	Name        string
	Description string

	// Open constructs the CAS rooted at location (a directory or a database
	// file, depending on the backend). It returns an optional close function.
	Open func(location string) (storage.CAS, func() error, error)
}

var (
	mu       sync.RWMutex
	backends = map[string]Backend{}
)

// Register registers a backend.
func Register(b Backend) error {
	if b.Name == "" {
		return fmt.Errorf("casregistry: backend name is required")
	}
	if b.Open == nil {
		return fmt.Errorf("casregistry: backend %q missing Open", b.Name)
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := backends[b.Name]; exists {
		return fmt.Errorf("casregistry: backend %q already registered", b.Name)
	}
	backends[b.Name] = b
	return nil
}

// MustRegister is like Register but panics on error.
func MustRegister(b Backend) {
	if err := Register(b); err != nil {
		panic(err)
	}
}

// Names returns registered backend names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(backends))
	for name := range backends {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Open opens the named backend.
func Open(name, location string) (storage.CAS, func() error, error) {
	mu.RLock()
	b, ok := backends[name]
	mu.RUnlock()
	if !ok {
		return nil, nil, fmt.Errorf("unknown backend %q (registered: %v)", name, Names())
	}
	if location == "" {
		return nil, nil, fmt.Errorf("backend %q: location is required", name)
	}
	return b.Open(location)
}
