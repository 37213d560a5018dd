// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package seat

// PointerEventKind discriminates the sub-events of a pointer frame.
type PointerEventKind uint8

const (
	// PointerEnter reports the pointer crossing into the surface.
	PointerEnter PointerEventKind = iota + 1

	// PointerLeave reports the pointer crossing out of the surface.
	PointerLeave

	// PointerMotion reports movement at the event's position.
	PointerMotion

	// PointerPress reports a button going down.
	PointerPress

	// PointerRelease reports a button going up.
	PointerRelease

	// PointerAxis reports scroll wheel or touchpad scrolling.
	PointerAxis
)

// String returns the kind's name for logging.
func (k PointerEventKind) String() string {
	switch k {
	case PointerEnter:
		return "enter"
	case PointerLeave:
		return "leave"
	case PointerMotion:
		return "motion"
	case PointerPress:
		return "press"
	case PointerRelease:
		return "release"
	case PointerAxis:
		return "axis"
	}
	return "unknown"
}

// AxisDelta is the scroll amount along one axis within a single pointer
// frame. Discrete carries whole wheel detents; Absolute carries the
// continuous distance in logical pixels, which high-resolution devices
// supply without any discrete step.
type AxisDelta struct {
	Absolute float64
	Discrete int32
}

// PointerEvent is one sub-event of a batched pointer frame. All sub-events
// of a frame share a logical instant and are delivered together.
type PointerEvent struct {
	Kind PointerEventKind

	// X, Y is the pointer position in logical surface coordinates. Valid
	// for Enter and Motion.
	X, Y float64

	// Button is the hardware button code (linux/input-event-codes.h).
	// Valid for Press and Release.
	Button uint32

	// Horizontal, Vertical are the scroll deltas. Valid for Axis.
	Horizontal, Vertical AxisDelta

	// Time is the protocol timestamp in milliseconds.
	Time uint32
}

// Hardware pointer button codes from linux/input-event-codes.h. These are
// the values Wayland transports deliver verbatim.
const (
	BtnLeft    uint32 = 0x110
	BtnRight   uint32 = 0x111
	BtnMiddle  uint32 = 0x112
	BtnSide    uint32 = 0x113
	BtnExtra   uint32 = 0x114
	BtnForward uint32 = 0x115
	BtnBack    uint32 = 0x116
	BtnTask    uint32 = 0x117
)
