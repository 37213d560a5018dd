// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import (
	"github.com/gogpu/wayapp/internal/logging"
	"github.com/gogpu/wayapp/seat"
	"github.com/gogpu/wayapp/ui"
)

// Translator converts raw seat events into an ordered queue of abstract UI
// events. One Translator belongs to exactly one surface and is only touched
// from the event-loop thread.
//
// Events accumulate in receipt order until Drain hands them to a render
// pass. Modifier updates arrive before the key events they accompany and
// replace the whole set, so a KeyEvent always carries the state current at
// the moment the key fired.
type Translator struct {
	mods     ui.Modifiers
	pointerX float64
	pointerY float64
	events   []ui.Event
	width    uint32
	height   uint32
	lastText string
}

// NewTranslator returns a Translator with an empty queue and a 256x256
// screen, the same placeholder size surfaces start from before their first
// configure.
func NewTranslator() *Translator {
	return &Translator{width: 256, height: 256}
}

// SetScreenSize records the surface's logical size. Called on every
// configure so relative positions stay meaningful.
func (t *Translator) SetScreenSize(width, height uint32) {
	t.width = width
	t.height = height
}

// SetPointerPosition overrides the tracked pointer position.
func (t *Translator) SetPointerPosition(x, y float64) {
	t.pointerX = x
	t.pointerY = y
}

// PointerPosition returns the last known pointer position in logical
// surface coordinates.
func (t *Translator) PointerPosition() (x, y float64) {
	return t.pointerX, t.pointerY
}

// Modifiers returns the current modifier state.
func (t *Translator) Modifiers() ui.Modifiers {
	return t.mods
}

// UpdateModifiers replaces the full modifier set. The protocol's modifier
// events are self-describing, so no merging with previous state happens.
func (t *Translator) UpdateModifiers(m seat.Modifiers) {
	logging.Logger().Debug("modifiers updated",
		"ctrl", m.Ctrl, "shift", m.Shift, "alt", m.Alt, "super", m.Super)
	t.mods = ui.Modifiers{
		Shift: m.Shift,
		Ctrl:  m.Ctrl,
		Alt:   m.Alt,
		Super: m.Super,
	}
}

// FocusEnter reports keyboard focus arriving at the surface. The abstract
// event model has no focus variant, so nothing is queued.
func (t *Translator) FocusEnter() {
	logging.Logger().Debug("keyboard focus entered")
}

// FocusLeave reports keyboard focus leaving the surface.
func (t *Translator) FocusLeave() {
	logging.Logger().Debug("keyboard focus left")
}

// Key translates a press, release, or repeat and appends the result to the
// queue. Translation is total: unmapped symbols queue as unidentified keys
// rather than being dropped.
//
// Ctrl-c, ctrl-x, and ctrl-v presses are consumed as clipboard chords: a
// synthetic copy, cut, or paste key event is queued instead of the literal
// character. The matching releases pass through untouched.
func (t *Translator) Key(ev seat.KeyEvent, pressed, repeat bool) {
	key, loc := MapKey(ev.Sym)
	physical := MapPhysicalKey(ev.Sym, ev.Raw)

	if pressed && !repeat && t.mods.Ctrl {
		if chord, ok := clipboardChord(key); ok {
			logging.Logger().Debug("clipboard chord", "key", ev.Sym)
			t.events = append(t.events, ui.KeyEvent{
				Key:       ui.Named(chord),
				Location:  loc,
				Physical:  physical,
				Modifiers: t.mods,
				Pressed:   true,
			})
			return
		}
	}

	var text string
	if pressed {
		text = printableText(ev.Text)
		if repeat && text == "" {
			// Compositors are not required to resupply composed text
			// on repeats.
			text = t.lastText
		}
		if !repeat {
			t.lastText = text
		}
	}

	t.events = append(t.events, ui.KeyEvent{
		Key:       key,
		Location:  loc,
		Physical:  physical,
		Modifiers: t.mods,
		Text:      text,
		Pressed:   pressed,
		Repeat:    repeat,
	})
}

// clipboardChord returns the synthetic key for a clipboard chord, matching
// the literal logical character only.
func clipboardChord(key ui.Key) (ui.NamedKey, bool) {
	if key.IsNamed() {
		return 0, false
	}
	switch key.Char {
	case 'c':
		return ui.KeyCopy, true
	case 'x':
		return ui.KeyCut, true
	case 'v':
		return ui.KeyPaste, true
	}
	return 0, false
}

// printableText filters composed text: control characters are never
// forwarded to the toolkit.
func printableText(s string) string {
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return ""
		}
	}
	return s
}

// PointerFrame translates one batch of pointer sub-events sharing a logical
// instant. Unrecognized button codes are dropped, and axis sub-events queue
// a wheel event only when a discrete step occurred, so high-resolution
// scroll hardware cannot flood the queue.
func (t *Translator) PointerFrame(frame []seat.PointerEvent) {
	for _, ev := range frame {
		switch ev.Kind {
		case seat.PointerEnter:
			t.pointerX, t.pointerY = ev.X, ev.Y
			t.events = append(t.events, ui.CursorEntered{})

		case seat.PointerLeave:
			t.events = append(t.events, ui.CursorLeft{})

		case seat.PointerMotion:
			t.pointerX, t.pointerY = ev.X, ev.Y
			t.events = append(t.events, ui.CursorMoved{X: ev.X, Y: ev.Y})

		case seat.PointerPress:
			if button, ok := MapButton(ev.Button); ok {
				t.events = append(t.events, ui.ButtonEvent{Button: button, Pressed: true})
			}

		case seat.PointerRelease:
			if button, ok := MapButton(ev.Button); ok {
				t.events = append(t.events, ui.ButtonEvent{Button: button, Pressed: false})
			}

		case seat.PointerAxis:
			if ev.Horizontal.Discrete != 0 || ev.Vertical.Discrete != 0 {
				t.events = append(t.events, ui.WheelEvent{
					LinesX: float64(ev.Horizontal.Discrete),
					LinesY: float64(ev.Vertical.Discrete),
				})
			}
		}
	}
}

// Pending reports how many events are queued.
func (t *Translator) Pending() int {
	return len(t.events)
}

// Drain removes and returns all queued events in receipt order. Called once
// per render pass.
func (t *Translator) Drain() []ui.Event {
	events := t.events
	t.events = nil
	return events
}
