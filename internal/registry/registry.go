// Package registry maps driver names and file extensions to driver
// implementations.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/SkyTruth/gpsdio/internal/gpserr"
)

// Entry is anything that can be registered: it has a name and the file
// extensions (without the leading dot) it claims.
type Entry interface {
	Name() string
	Extensions() []string
}

// Registry maintains a mapping of driver names to implementations.
// Names and extensions are matched case-insensitively. Registering a name
// twice replaces the earlier entry.
type Registry[T Entry] struct {
	kind string

	mu      sync.RWMutex
	entries map[string]T
}

// New creates an empty registry. kind is used in error messages,
// e.g. "compression" or "driver".
func New[T Entry](kind string) *Registry[T] {
	return &Registry[T]{
		kind:    kind,
		entries: make(map[string]T),
	}
}

// Register adds d to the registry under d.Name().
func (r *Registry[T]) Register(d T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[strings.ToLower(d.Name())] = d
}

// Resolve returns the entry registered under name.
func (r *Registry[T]) Resolve(name string) (T, error) {
	r.mu.RLock()
	d, ok := r.entries[strings.ToLower(name)]
	r.mu.RUnlock()

	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: unknown %s %q (registered: %v)", gpserr.ErrDriverNotFound, r.kind, name, r.Names())
	}
	return d, nil
}

// Detect returns the entry whose extension is the longest suffix of path,
// together with the matched extension.
func (r *Registry[T]) Detect(path string) (T, string, error) {
	var (
		best    T
		bestExt string
	)

	lower := strings.ToLower(path)

	r.mu.RLock()
	for _, d := range r.entries {
		for _, ext := range d.Extensions() {
			ext = strings.ToLower(strings.TrimPrefix(ext, "."))
			if ext == "" || !strings.HasSuffix(lower, "."+ext) {
				continue
			}
			// Longest match wins, name breaks ties so detection is stable.
			if len(ext) > len(bestExt) || (len(ext) == len(bestExt) && d.Name() < best.Name()) {
				best, bestExt = d, ext
			}
		}
	}
	r.mu.RUnlock()

	if bestExt == "" {
		var zero T
		return zero, "", fmt.Errorf("%w: can't detect %s from %q", gpserr.ErrDriverNotFound, r.kind, path)
	}
	return best, bestExt, nil
}

// Names returns the sorted list of registered names.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for _, d := range r.entries {
		names = append(names, d.Name())
	}
	sort.Strings(names)
	return names
}

// Has returns true if an entry is registered under name.
func (r *Registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[strings.ToLower(name)]
	return ok
}
