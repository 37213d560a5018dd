// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ui

// Viewport is the drawable area of one surface: logical size plus the
// integer scale that maps it to physical pixels.
type Viewport struct {
	Width  uint32 // logical, ≥1
	Height uint32 // logical, ≥1
	Scale  int32  // integer, ≥1
}

// PhysicalWidth returns the viewport width in physical pixels, never zero.
func (v Viewport) PhysicalWidth() uint32 { return physical(v.Width, v.Scale) }

// PhysicalHeight returns the viewport height in physical pixels, never zero.
func (v Viewport) PhysicalHeight() uint32 { return physical(v.Height, v.Scale) }

func physical(logical uint32, scale int32) uint32 {
	if logical < 1 {
		logical = 1
	}
	s := uint64(1)
	if scale > 1 {
		s = uint64(scale)
	}
	p := uint64(logical) * s
	if p > 0xffffffff {
		p = 0xffffffff
	}
	return uint32(p)
}

// Cursor is the pointer position in logical surface coordinates.
type Cursor struct {
	X, Y float64
}

// Message is an application message emitted by widgets during an update.
// Its concrete type belongs to the application.
type Message any

// Interaction is the pointer interaction a built tree reports for the
// current cursor position. wayapp maps it to a compositor cursor shape,
// once per change.
type Interaction uint8

const (
	InteractionIdle Interaction = iota
	InteractionPointer
	InteractionText
	InteractionCrosshair
	InteractionGrab
	InteractionGrabbing
	InteractionMove
	InteractionNotAllowed
	InteractionCell
	InteractionCopy
	InteractionAlias
	InteractionNoDrop
	InteractionContextMenu
	InteractionHelp
	InteractionProgress
	InteractionWait
	InteractionAllScroll
	InteractionZoomIn
	InteractionZoomOut
	InteractionResizeHorizontal
	InteractionResizeVertical
	InteractionResizeDiagonalUp
	InteractionResizeDiagonalDown
	InteractionResizeColumn
	InteractionResizeRow
)

// Root drives one surface's retained widget tree. Implementations keep the
// widget cache across frames internally; wayapp never inspects it.
//
// All methods run on the event-loop thread. One render pass is:
//
//	Build(viewport)
//	messages, interaction := Update(events, cursor)
//	for each message: Apply(message)   // only when messages exist
//	Build(viewport)                    // rebuild, only when messages exist
//	Draw(target, cursor)
//
// so a frame's visible output always reflects application state after every
// message discovered mid-frame.
type Root interface {
	// Build constructs or rebuilds the widget tree for the current
	// application state, reusing cached widget state from earlier frames.
	Build(viewport Viewport)

	// Update applies one frame's ordered event batch to the built tree.
	// It returns the application messages the events produced and the
	// pointer interaction the tree reports at the cursor.
	Update(events []Event, cursor Cursor) ([]Message, Interaction)

	// Apply folds one application message into application state.
	Apply(message Message)

	// Draw emits the built tree's draw commands against target, the
	// backend-specific handle of the acquired frame. Toolkits assert it
	// to the concrete texture type of the presentation backend they were
	// built for.
	Draw(target any, cursor Cursor)
}

// RedrawRequester is optionally implemented by Roots that animate. When the
// most recent build wants another frame regardless of input (timers,
// transitions), RedrawRequested returns true and wayapp re-arms the frame
// callback even though the input queue was empty.
type RedrawRequester interface {
	RedrawRequested() bool
}
