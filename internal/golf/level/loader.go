package level

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// Loader reads course files from a directory tree.
type Loader struct {
	Root string

	// OnSkip, when set, is called for every course file that fails to load.
	OnSkip func(path string, err error)
}

// NewLoader creates a new course loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all course files.
// Invalid files are skipped. Returns courses sorted by ID.
func (l *Loader) LoadAll() ([]Catalog, error) {
	var courses []Catalog

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !slices.Contains(FormatExtensions(), ext) {
			return nil
		}

		course, err := l.LoadFile(path)
		if err != nil {
			if l.OnSkip != nil {
				l.OnSkip(path, err)
			}
			return nil
		}

		courses = append(courses, course)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("level: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(courses, func(i, j int) bool {
		return courses[i].ID < courses[j].ID
	})
	return courses, nil
}

// LoadFile loads a single course file.
func (l *Loader) LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("level: reading file %s: %w", path, err)
	}

	course, err := ParseYAML(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("level: parsing file %s: %w", path, err)
	}
	return course, nil
}

// LoadByID loads a specific course by ID.
func (l *Loader) LoadByID(id string) (Catalog, error) {
	courses, err := l.LoadAll()
	if err != nil {
		return Catalog{}, err
	}

	for _, c := range courses {
		if c.ID == id {
			return c, nil
		}
	}
	return Catalog{}, fmt.Errorf("level: course not found: %s", id)
}
