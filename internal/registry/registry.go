// Package registry provides a global registry of golf courses.
// Built-in courses register themselves in init() functions and course files
// are registered at startup, allowing the platform to discover and start
// courses without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/twin-golf/internal/golf/level"
)

// CourseInfo contains metadata about a registered course.
type CourseInfo struct {
	ID     string
	Title  string
	Levels int
}

// Factory returns a fresh copy of a course catalog.
type Factory func() level.Catalog

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]CourseInfo)
	mu        sync.RWMutex
)

// Register adds a course factory to the registry.
// Panics if a course with the same ID is already registered.
func Register(id string, f Factory) {
	if err := register(id, f); err != nil {
		panic(err)
	}
}

// RegisterCatalog adds a loaded course, returning an error on duplicate IDs.
func RegisterCatalog(c level.Catalog) error {
	return register(c.ID, func() level.Catalog { return c })
}

func register(id string, f Factory) error {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		return fmt.Errorf("registry: course %q already registered", id)
	}

	factories[id] = f

	// Get title and size by creating a temporary instance
	c := f()
	infos[id] = CourseInfo{ID: id, Title: c.Name, Levels: c.Len()}
	return nil
}

// List returns information about all registered courses, sorted by ID.
func List() []CourseInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]CourseInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create returns a new catalog for a course by its ID.
func Create(id string) (level.Catalog, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return level.Catalog{}, fmt.Errorf("registry: unknown course %q", id)
	}
	return f(), nil
}

// Exists checks if a course with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
