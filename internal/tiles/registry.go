package tiles

import (
	"fmt"
	"sort"
	"sync"
)

// Info contains metadata about a registered tile set.
type Info struct {
	Name  string
	Title string
}

// Factory builds a tile set.
type Factory func() *Set

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a tile set factory under name.
// Panics if the name is already registered.
func Register(name, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("tiles: set %q already registered", name))
	}
	factories[name] = f
	titles[name] = title
}

// Put registers f under name, replacing any earlier registration.
// Tile sets defined in configuration are installed this way.
func Put(name, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	factories[name] = f
	titles[name] = title
}

// List returns all registered tile sets, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for name := range factories {
		result = append(result, Info{Name: name, Title: titles[name]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Lookup builds the tile set registered under name.
func Lookup(name string) (*Set, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("tiles: unknown set %q", name)
	}
	return f(), nil
}

// Exists checks if a tile set with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
