// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wayapp

import (
	"github.com/gogpu/wayapp/seat"
)

// Registry routes protocol events to their owning containers.
//
// All methods run on the single event-loop thread, so there is no locking.
// Removal during dispatch is legal: a handler may remove its own container
// (or any other) mid-dispatch, and the removal is deferred until the
// current dispatch returns, so the in-flight callback always finishes
// against valid state.
type Registry struct {
	containers map[seat.SurfaceID]Container
	order      []seat.SurfaceID

	dispatching int
	pending     []seat.SurfaceID
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{containers: make(map[seat.SurfaceID]Container)}
}

// Register adds a container and returns the identity key events for it are
// routed by. Registering an identity twice replaces the previous container
// without destroying it; the caller owns that transition.
func (r *Registry) Register(c Container) seat.SurfaceID {
	id := c.ID()
	if _, exists := r.containers[id]; !exists {
		r.order = append(r.order, id)
	}
	r.containers[id] = c
	Logger().Info("container registered", "surface", id)
	return id
}

// Lookup resolves an identity to its container. A miss is an expected
// outcome (the surface was already destroyed or the event raced with
// removal), never an error.
func (r *Registry) Lookup(id seat.SurfaceID) (Container, bool) {
	c, ok := r.containers[id]
	return c, ok
}

// Dispatch routes one event callback to the container owning id. Unknown
// identities are a no-op. It returns whether a container was found.
//
// Removals requested while fn runs are applied after fn returns.
func (r *Registry) Dispatch(id seat.SurfaceID, fn func(Container)) bool {
	c, ok := r.containers[id]
	if !ok {
		Logger().Debug("event for unknown surface dropped", "surface", id)
		return false
	}

	r.dispatching++
	defer func() {
		r.dispatching--
		if r.dispatching == 0 {
			r.flushPending()
		}
	}()

	fn(c)
	return true
}

// Remove detaches a container and releases its resources. During a
// dispatch the removal is deferred; otherwise it happens immediately.
// Removing an unknown identity is a no-op.
func (r *Registry) Remove(id seat.SurfaceID) {
	if r.dispatching > 0 {
		r.pending = append(r.pending, id)
		return
	}
	r.removeNow(id)
}

// Sweep removes every container that reported ShouldClose. Applications
// call it once per event-loop turn. It returns the number removed.
func (r *Registry) Sweep() int {
	var closing []seat.SurfaceID
	for _, id := range r.order {
		if c, ok := r.containers[id]; ok && c.ShouldClose() {
			closing = append(closing, id)
		}
	}
	for _, id := range closing {
		r.Remove(id)
	}
	return len(closing)
}

// Len reports the number of registered containers.
func (r *Registry) Len() int {
	return len(r.containers)
}

// IDs returns the registered identities in registration order.
func (r *Registry) IDs() []seat.SurfaceID {
	ids := make([]seat.SurfaceID, len(r.order))
	copy(ids, r.order)
	return ids
}

func (r *Registry) flushPending() {
	pending := r.pending
	r.pending = nil
	for _, id := range pending {
		r.removeNow(id)
	}
}

// removeNow detaches and destroys. The map delete happens before Destroy,
// so a duplicate removal request finds nothing and Destroy runs exactly
// once per container.
func (r *Registry) removeNow(id seat.SurfaceID) {
	c, ok := r.containers[id]
	if !ok {
		return
	}
	delete(r.containers, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	c.Destroy()
	Logger().Info("container removed", "surface", id)
}
