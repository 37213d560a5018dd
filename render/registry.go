// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"sort"
	"sync"
)

// Factory creates a Surface against the shared Context. The config is the
// initial size; the surface receives a fresh Configure on every compositor
// resize afterwards.
type Factory func(ctx *Context, config SurfaceConfig) (Surface, error)

// RegistryEntry is one registered presentation backend.
type RegistryEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: native swapchain backends (wgpu)
	//   - 10: software or headless backends
	Priority int

	// Factory creates surface instances.
	Factory Factory

	// Available reports if the backend can run on this system.
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages presentation backends. Every surface kind creates its
// Surface through the same registry, so bringing up a window, a layer
// surface, or a popup differs only in the configure payload, never in GPU
// plumbing.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates an empty registry. Most code uses the global one via
// Register and NewSurface.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*RegistryEntry)}
}

// Register adds a backend to the global registry. A nil available function
// means always available; re-registering a name replaces the entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// Available returns names of all available backends sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// NewSurface creates a surface using the best available backend of the
// global registry.
func NewSurface(ctx *Context, config SurfaceConfig) (Surface, error) {
	return globalRegistry.NewSurface(ctx, config)
}

// NewSurfaceByName creates a surface using a specific named backend of the
// global registry.
func NewSurfaceByName(name string, ctx *Context, config SurfaceConfig) (Surface, error) {
	return globalRegistry.NewSurfaceByName(name, ctx, config)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}
	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// Available returns names of all available backends sorted by priority
// (highest first).
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames()
}

// NewSurface creates a surface using the best available backend, falling
// through to lower-priority backends when a factory fails.
func (r *Registry) NewSurface(ctx *Context, config SurfaceConfig) (Surface, error) {
	r.mu.RLock()
	available := r.sortedNames()
	r.mu.RUnlock()

	if len(available) == 0 {
		return nil, ErrNoBackendAvailable
	}

	var lastErr error
	for _, name := range available {
		s, err := r.NewSurfaceByName(name, ctx, config)
		if err == nil {
			return s, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// NewSurfaceByName creates a surface using a specific backend.
func (r *Registry) NewSurfaceByName(name string, ctx *Context, config SurfaceConfig) (Surface, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	if !entry.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}
	return entry.Factory(ctx, config)
}

// sortedNames returns available backend names sorted by priority (highest
// first). Must be called with the lock held.
func (r *Registry) sortedNames() []string {
	if len(r.entries) == 0 {
		return nil
	}

	type entry struct {
		name     string
		priority int
	}
	entries := make([]entry, 0, len(r.entries))
	for name, e := range r.entries {
		if !e.Available() {
			continue
		}
		entries = append(entries, entry{name: name, priority: e.Priority})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].priority > entries[j].priority
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// ErrNoBackendAvailable is returned when no presentation backends are
// registered or available.
var ErrNoBackendAvailable = errors.New("render: no backend available")

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "render: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but cannot run here.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "render: backend unavailable: " + e.Name
}
