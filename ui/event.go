// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ui

import "time"

// Modifiers is the modifier state attached to keyboard events. Plain
// booleans rather than a bitmask: callers test fields, not masks.
type Modifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
	Super bool
}

// Button is an abstract pointer button. Only a fixed set of hardware codes
// map to buttons; the toolkit model has no slot for anything else.
type Button uint8

const (
	ButtonPrimary Button = iota + 1
	ButtonSecondary
	ButtonMiddle
)

// String returns the button's name.
func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonMiddle:
		return "middle"
	}
	return "unknown"
}

// Event is one abstract input event delivered to a Root. The variant set is
// closed: KeyEvent, CursorEntered, CursorLeft, CursorMoved, ButtonEvent,
// WheelEvent, and RedrawRequested.
type Event interface {
	isEvent()
}

// KeyEvent is a key press, release, or repeat after translation.
type KeyEvent struct {
	// Key is the logical key under the active layout.
	Key Key

	// Location distinguishes left/right/numpad instances.
	Location Location

	// Physical is the layout-independent hardware key.
	Physical PhysicalKey

	// Modifiers is the state current when the event fired.
	Modifiers Modifiers

	// Text is the composed UTF-8 text, press and repeat only. Control
	// characters are never forwarded.
	Text string

	// Pressed is true for press and repeat, false for release.
	Pressed bool

	// Repeat marks an auto-repeat press.
	Repeat bool
}

// CursorEntered reports the pointer crossing into the surface.
type CursorEntered struct{}

// CursorLeft reports the pointer crossing out of the surface.
type CursorLeft struct{}

// CursorMoved reports pointer motion in logical surface coordinates.
type CursorMoved struct {
	X, Y float64
}

// ButtonEvent is an abstract pointer button transition.
type ButtonEvent struct {
	Button  Button
	Pressed bool
}

// WheelEvent is a discrete scroll step in line units.
type WheelEvent struct {
	LinesX, LinesY float64
}

// RedrawRequested is synthesized once per render pass, after the drained
// input events, so widgets can refresh time-dependent state.
type RedrawRequested struct {
	At time.Time
}

func (KeyEvent) isEvent()        {}
func (CursorEntered) isEvent()   {}
func (CursorLeft) isEvent()      {}
func (CursorMoved) isEvent()     {}
func (ButtonEvent) isEvent()     {}
func (WheelEvent) isEvent()      {}
func (RedrawRequested) isEvent() {}
