package render

import (
	"fmt"
	"sort"
	"sync"
)

// Creator builds a renderer for one session. fileName is only used for
// SceneDescription renders.
type Creator func(renderType RenderType, fileName string) (Renderer, error)

// registry holds registered renderer backends.
var (
	registryMu sync.RWMutex
	creators   = make(map[string]Creator)
)

// Register registers a renderer backend under the given name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it is replaced.
//
// Register is safe for concurrent use.
func Register(name string, creator Creator) {
	registryMu.Lock()
	defer registryMu.Unlock()
	creators[name] = creator
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(creators, name)
}

// Types returns the sorted names of all registered backends.
func Types() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(creators))
	for name := range creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := creators[name]
	return ok
}

// Create looks up the named backend and creates a renderer for a new
// session. fileName is only used when renderType is SceneDescription.
// An unregistered name returns an error wrapping ErrUnknownRenderer.
func Create(name string, renderType RenderType, fileName string) (Renderer, error) {
	registryMu.RLock()
	creator, ok := creators[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRenderer, name)
	}
	return creator(renderType, fileName)
}
