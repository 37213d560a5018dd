// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wayapp

import (
	"github.com/gogpu/wayapp/seat"
)

// CompositorHandler receives compositor-level surface notifications.
type CompositorHandler interface {
	// ScaleFactorChanged reports a new output scale. Factors below 1 are
	// clamped to 1.
	ScaleFactorChanged(factor int32)

	// TransformChanged reports a new buffer transform for the outputs
	// the surface is on.
	TransformChanged(transform seat.Transform)

	// Frame is the compositor's frame grant: permission to render the
	// next frame.
	Frame(time uint32)

	// SurfaceEnter reports the surface becoming visible on an output.
	SurfaceEnter(output seat.OutputID)

	// SurfaceLeave reports the surface leaving an output.
	SurfaceLeave(output seat.OutputID)
}

// KeyboardHandler receives raw keyboard events for a focused surface.
type KeyboardHandler interface {
	KeyboardEnter()
	KeyboardLeave()
	PressKey(ev seat.KeyEvent)
	ReleaseKey(ev seat.KeyEvent)
	RepeatKey(ev seat.KeyEvent)
	UpdateModifiers(m seat.Modifiers)
}

// PointerHandler receives batched pointer frames for a surface under the
// pointer.
type PointerHandler interface {
	PointerFrame(frame []seat.PointerEvent)
}

// Container is one registered surface of any kind. The four concrete kinds
// (Window, LayerSurface, Popup, Subsurface) differ in how configure
// payloads and lifecycle notifications arrive; everything else is uniform.
type Container interface {
	CompositorHandler
	KeyboardHandler
	PointerHandler

	// ID returns the protocol identity events are routed by.
	ID() seat.SurfaceID

	// ShouldClose reports that the container was notified of closure and
	// is eligible for removal from the registry. The application decides
	// when to actually remove it.
	ShouldClose() bool

	// Destroy releases the presentation surface and the protocol handle.
	// Called exactly once, by the registry, during removal.
	Destroy()
}

// containerBase carries the state and forwarding shared by all four kinds.
// Kind-specific types embed it and add their configure and lifecycle
// handling on top.
type containerBase struct {
	rs          *RenderSurface
	shouldClose bool
}

func (b *containerBase) ID() seat.SurfaceID { return b.rs.handle.ID() }

func (b *containerBase) ShouldClose() bool { return b.shouldClose }

func (b *containerBase) Destroy() { b.rs.Destroy() }

func (b *containerBase) ScaleFactorChanged(factor int32) {
	b.render(b.rs.ScaleFactorChanged(factor))
}

func (b *containerBase) TransformChanged(transform seat.Transform) {
	// Buffers are rendered upright; the compositor applies the transform.
	Logger().Debug("transform changed",
		"surface", b.rs.handle.ID(), "transform", transform)
}

func (b *containerBase) Frame(time uint32) {
	b.render(b.rs.Render())
}

func (b *containerBase) SurfaceEnter(output seat.OutputID) {
	b.rs.SurfaceEnter(output)
}

func (b *containerBase) SurfaceLeave(output seat.OutputID) {
	b.rs.SurfaceLeave(output)
}

func (b *containerBase) KeyboardEnter() {
	b.rs.translator.FocusEnter()
	b.render(b.rs.Render())
}

func (b *containerBase) KeyboardLeave() {
	b.rs.translator.FocusLeave()
	b.render(b.rs.Render())
}

func (b *containerBase) PressKey(ev seat.KeyEvent) {
	b.rs.translator.Key(ev, true, false)
	b.render(b.rs.Render())
}

func (b *containerBase) ReleaseKey(ev seat.KeyEvent) {
	b.rs.translator.Key(ev, false, false)
	b.render(b.rs.Render())
}

func (b *containerBase) RepeatKey(ev seat.KeyEvent) {
	b.rs.translator.Key(ev, true, true)
	b.render(b.rs.Render())
}

func (b *containerBase) UpdateModifiers(m seat.Modifiers) {
	b.rs.translator.UpdateModifiers(m)
	b.render(b.rs.Render())
}

func (b *containerBase) PointerFrame(frame []seat.PointerEvent) {
	b.rs.translator.PointerFrame(frame)
	b.render(b.rs.Render())
}

// render folds a render error into the container lifecycle: surface loss is
// not locally recoverable, so the container marks itself for removal.
func (b *containerBase) render(err error) {
	if err == nil {
		return
	}
	Logger().Error("render failed, closing surface",
		"surface", b.rs.handle.ID(), "err", err)
	b.shouldClose = true
}
