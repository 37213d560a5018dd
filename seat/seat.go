// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package seat carries the raw, protocol-side input and surface vocabulary
// delivered by a Wayland-style transport.
//
// The transport itself (connection setup, registry discovery, wire
// marshalling) is not part of this module. Everything a transport hands to
// wayapp (surface handles, configure payloads, keyboard and pointer
// events) is expressed with the types in this package, so any client
// library can be adapted by implementing SurfaceHandle and filling in the
// event structs.
package seat

// SurfaceID is the protocol object identity of one surface. It is stable
// for the lifetime of the surface and is the key under which wayapp routes
// every callback.
type SurfaceID uint32

// OutputID identifies a compositor output (monitor).
type OutputID uint32

// SurfaceHandle is the protocol-side handle for one on-screen surface.
//
// Implementations wrap the transport's surface proxy. All methods are
// invoked on the event-loop thread only.
type SurfaceHandle interface {
	// ID returns the surface's protocol object identity.
	ID() SurfaceID

	// Commit atomically applies pending surface state.
	Commit()

	// Damage marks a region of the surface as needing repaint, in buffer
	// coordinates.
	Damage(x, y, width, height int32)

	// RequestFrame asks the compositor for the next frame callback. The
	// grant arrives later as a Frame notification for this surface.
	RequestFrame()

	// SetBufferScale declares the integer scale of attached buffers.
	SetBufferScale(scale int32)

	// Destroy releases the underlying protocol object. It must be safe to
	// call exactly once; wayapp guarantees it is never called twice.
	Destroy()
}

// CursorSetter receives cursor shape requests for the pointer that is over
// one of the process's surfaces. A transport backed by the cursor-shape
// protocol forwards the request to the compositor; others may ignore it.
type CursorSetter interface {
	SetCursor(shape CursorShape)
}

// Modifiers is the self-describing modifier state of a keyboard, replaced
// wholesale on every modifier event rather than merged incrementally.
type Modifiers struct {
	Shift    bool
	Ctrl     bool
	Alt      bool
	Super    bool
	CapsLock bool
	NumLock  bool
}

// KeyEvent is one raw key press, release, or repeat.
type KeyEvent struct {
	// Raw is the hardware scan code (evdev keycode + 8, the usual XKB
	// convention).
	Raw uint32

	// Sym is the layout-resolved key symbol.
	Sym Keysym

	// Text is the UTF-8 text composed for this event. Empty when the key
	// produced no text; repeat events are not guaranteed to resupply it.
	Text string

	// Time is the protocol timestamp in milliseconds.
	Time uint32
}

// Transform is a wl_output-style buffer transform: the rotation/flip the
// compositor applies when scanning out the surface.
type Transform uint8

const (
	TransformNormal Transform = iota
	Transform90
	Transform180
	Transform270
	TransformFlipped
	TransformFlipped90
	TransformFlipped180
	TransformFlipped270
)
