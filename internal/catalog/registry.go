package catalog

import (
	"fmt"
	"sort"
	"sync"
)

// Table describes one category table holding product rows.
type Table struct {
	Name  string // database table name, e.g. "flower_bouquet"
	Label string // display name, e.g. "Flower Bouquets"
}

var (
	registry   = make(map[string]Table)
	registryMu sync.RWMutex
)

// Register adds a category table to the registry.
// Panics if a table with the same name is already registered.
func Register(t Table) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[t.Name]; exists {
		panic(fmt.Sprintf("table already registered: %s", t.Name))
	}

	registry[t.Name] = t
}

// Lookup returns a category table by name.
// Returns false if the name is not a registered category table.
func Lookup(name string) (Table, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	t, ok := registry[name]
	return t, ok
}

// Tables returns all registered category tables, sorted by name
// for consistent ordering.
func Tables() []Table {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]Table, 0, len(registry))
	for _, t := range registry {
		result = append(result, t)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// TableCount returns the number of registered category tables.
func TableCount() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}
