// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import (
	"testing"

	"github.com/gogpu/wayapp/seat"
	"github.com/gogpu/wayapp/ui"
)

func ctrlMods() seat.Modifiers {
	return seat.Modifiers{Ctrl: true}
}

// TestClipboardChord tests that ctrl+c emits exactly one synthetic copy
// event and zero literal 'c' presses, while the release passes through.
func TestClipboardChord(t *testing.T) {
	tr := NewTranslator()
	tr.UpdateModifiers(ctrlMods())

	ev := seat.KeyEvent{Raw: 54, Sym: seat.KeysymC, Text: "\x03"}
	tr.Key(ev, true, false)

	events := tr.Drain()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	key, ok := events[0].(ui.KeyEvent)
	if !ok {
		t.Fatalf("expected KeyEvent, got %T", events[0])
	}
	if !key.Key.IsNamed() || key.Key.Name != ui.KeyCopy {
		t.Errorf("chord key = %v, want KeyCopy", key.Key)
	}
	if !key.Pressed {
		t.Error("synthetic chord event should be a press")
	}
	if key.Text != "" {
		t.Errorf("chord text = %q, want empty", key.Text)
	}

	// The release is not suppressed.
	tr.Key(ev, false, false)
	events = tr.Drain()
	if len(events) != 1 {
		t.Fatalf("expected 1 release event, got %d", len(events))
	}
	key = events[0].(ui.KeyEvent)
	if key.Pressed {
		t.Error("expected a release")
	}
	if key.Key.IsNamed() || key.Key.Char != 'c' {
		t.Errorf("release key = %v, want literal 'c'", key.Key)
	}
}

// TestClipboardChordVariants tests cut and paste chords.
func TestClipboardChordVariants(t *testing.T) {
	tests := []struct {
		sym  seat.Keysym
		want ui.NamedKey
	}{
		{seat.KeysymX, ui.KeyCut},
		{seat.KeysymV, ui.KeyPaste},
	}

	for _, tt := range tests {
		tr := NewTranslator()
		tr.UpdateModifiers(ctrlMods())
		tr.Key(seat.KeyEvent{Sym: tt.sym}, true, false)

		events := tr.Drain()
		if len(events) != 1 {
			t.Fatalf("expected 1 event, got %d", len(events))
		}
		key := events[0].(ui.KeyEvent)
		if !key.Key.IsNamed() || key.Key.Name != tt.want {
			t.Errorf("chord(%#x) = %v, want %v", uint32(tt.sym), key.Key, tt.want)
		}
	}
}

// TestClipboardChordNotOnRepeat tests that a repeating ctrl+c passes
// through as a literal repeat instead of spamming copy events.
func TestClipboardChordNotOnRepeat(t *testing.T) {
	tr := NewTranslator()
	tr.UpdateModifiers(ctrlMods())

	tr.Key(seat.KeyEvent{Sym: seat.KeysymC}, true, true)

	events := tr.Drain()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	key := events[0].(ui.KeyEvent)
	if key.Key.IsNamed() {
		t.Errorf("repeat under ctrl = %v, want literal 'c'", key.Key)
	}
	if !key.Repeat {
		t.Error("expected repeat flag")
	}
}

// TestClipboardChordRequiresCtrl tests that plain 'c' is a literal press.
func TestClipboardChordRequiresCtrl(t *testing.T) {
	tr := NewTranslator()
	tr.Key(seat.KeyEvent{Sym: seat.KeysymC, Text: "c"}, true, false)

	events := tr.Drain()
	key := events[0].(ui.KeyEvent)
	if key.Key.IsNamed() || key.Key.Char != 'c' {
		t.Errorf("key = %v, want literal 'c'", key.Key)
	}
	if key.Text != "c" {
		t.Errorf("text = %q, want %q", key.Text, "c")
	}
}

// TestRepeatTextFallback tests that a repeat without protocol-supplied text
// substitutes the text of the most recent press.
func TestRepeatTextFallback(t *testing.T) {
	tr := NewTranslator()

	tr.Key(seat.KeyEvent{Sym: seat.KeysymA, Text: "a"}, true, false)
	tr.Key(seat.KeyEvent{Sym: seat.KeysymA}, true, true)

	events := tr.Drain()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	repeat := events[1].(ui.KeyEvent)
	if !repeat.Repeat {
		t.Fatal("second event should be a repeat")
	}
	if repeat.Text != "a" {
		t.Errorf("repeat text = %q, want %q", repeat.Text, "a")
	}
}

// TestReleaseCarriesNoText tests that release events never carry composed
// text, even when the transport supplies some.
func TestReleaseCarriesNoText(t *testing.T) {
	tr := NewTranslator()
	tr.Key(seat.KeyEvent{Sym: seat.KeysymA, Text: "a"}, false, false)

	key := tr.Drain()[0].(ui.KeyEvent)
	if key.Text != "" {
		t.Errorf("release text = %q, want empty", key.Text)
	}
}

// TestControlCharactersDropped tests that control characters are never
// forwarded as text.
func TestControlCharactersDropped(t *testing.T) {
	tr := NewTranslator()
	tr.Key(seat.KeyEvent{Sym: seat.KeysymReturn, Text: "\r"}, true, false)

	key := tr.Drain()[0].(ui.KeyEvent)
	if key.Text != "" {
		t.Errorf("text = %q, want empty (control character)", key.Text)
	}
	if !key.Key.IsNamed() || key.Key.Name != ui.KeyEnter {
		t.Errorf("key = %v, want KeyEnter", key.Key)
	}
}

// TestModifiersReplacedWholesale tests that each modifier update replaces
// the previous set instead of merging.
func TestModifiersReplacedWholesale(t *testing.T) {
	tr := NewTranslator()

	tr.UpdateModifiers(seat.Modifiers{Shift: true, Ctrl: true})
	tr.UpdateModifiers(seat.Modifiers{Alt: true})

	mods := tr.Modifiers()
	if mods.Shift || mods.Ctrl {
		t.Errorf("stale modifiers survived replacement: %+v", mods)
	}
	if !mods.Alt {
		t.Error("alt should be set")
	}
}

// TestModifiersAttachedToKeys tests that key events snapshot the modifier
// state current when they fired.
func TestModifiersAttachedToKeys(t *testing.T) {
	tr := NewTranslator()

	tr.UpdateModifiers(seat.Modifiers{Shift: true})
	tr.Key(seat.KeyEvent{Sym: seat.KeysymA, Text: "A"}, true, false)
	tr.UpdateModifiers(seat.Modifiers{})
	tr.Key(seat.KeyEvent{Sym: seat.KeysymB, Text: "b"}, true, false)

	events := tr.Drain()
	first := events[0].(ui.KeyEvent)
	second := events[1].(ui.KeyEvent)
	if !first.Modifiers.Shift {
		t.Error("first event should carry shift")
	}
	if second.Modifiers.Shift {
		t.Error("second event should not carry shift")
	}
}

// TestPointerFrameMapping tests per-kind sub-event translation.
func TestPointerFrameMapping(t *testing.T) {
	tr := NewTranslator()

	tr.PointerFrame([]seat.PointerEvent{
		{Kind: seat.PointerEnter, X: 10, Y: 20},
		{Kind: seat.PointerMotion, X: 15, Y: 25},
		{Kind: seat.PointerPress, Button: seat.BtnLeft},
		{Kind: seat.PointerRelease, Button: seat.BtnLeft},
		{Kind: seat.PointerLeave},
	})

	events := tr.Drain()
	if len(events) != 5 {
		t.Fatalf("expected 5 events, got %d", len(events))
	}

	if _, ok := events[0].(ui.CursorEntered); !ok {
		t.Errorf("events[0] = %T, want CursorEntered", events[0])
	}
	moved, ok := events[1].(ui.CursorMoved)
	if !ok || moved.X != 15 || moved.Y != 25 {
		t.Errorf("events[1] = %+v, want CursorMoved{15 25}", events[1])
	}
	press, ok := events[2].(ui.ButtonEvent)
	if !ok || press.Button != ui.ButtonPrimary || !press.Pressed {
		t.Errorf("events[2] = %+v, want primary press", events[2])
	}
	release, ok := events[3].(ui.ButtonEvent)
	if !ok || release.Pressed {
		t.Errorf("events[3] = %+v, want release", events[3])
	}
	if _, ok := events[4].(ui.CursorLeft); !ok {
		t.Errorf("events[4] = %T, want CursorLeft", events[4])
	}

	x, y := tr.PointerPosition()
	if x != 15 || y != 25 {
		t.Errorf("pointer position = (%v, %v), want (15, 25)", x, y)
	}
}

// TestPointerUnknownButtonDropped tests that unrecognized button codes
// queue nothing.
func TestPointerUnknownButtonDropped(t *testing.T) {
	tr := NewTranslator()

	tr.PointerFrame([]seat.PointerEvent{
		{Kind: seat.PointerPress, Button: seat.BtnSide},
		{Kind: seat.PointerRelease, Button: seat.BtnExtra},
	})

	if got := tr.Pending(); got != 0 {
		t.Errorf("Pending() = %d, want 0 (unknown buttons dropped)", got)
	}
}

// TestScrollSuppression tests that axis sub-events queue a wheel event only
// for non-zero discrete deltas.
func TestScrollSuppression(t *testing.T) {
	tr := NewTranslator()

	// Continuous-only delta: no event.
	tr.PointerFrame([]seat.PointerEvent{{
		Kind:     seat.PointerAxis,
		Vertical: seat.AxisDelta{Absolute: 2.5},
	}})
	if got := tr.Pending(); got != 0 {
		t.Fatalf("continuous-only scroll queued %d events, want 0", got)
	}

	// One discrete step: exactly one event.
	tr.PointerFrame([]seat.PointerEvent{{
		Kind:     seat.PointerAxis,
		Vertical: seat.AxisDelta{Absolute: 15, Discrete: 1},
	}})
	events := tr.Drain()
	if len(events) != 1 {
		t.Fatalf("expected 1 wheel event, got %d", len(events))
	}
	wheel := events[0].(ui.WheelEvent)
	if wheel.LinesY != 1 || wheel.LinesX != 0 {
		t.Errorf("wheel = %+v, want lines (0, 1)", wheel)
	}
}

// TestDrainClearsQueue tests that Drain removes everything and preserves
// receipt order.
func TestDrainClearsQueue(t *testing.T) {
	tr := NewTranslator()

	tr.Key(seat.KeyEvent{Sym: seat.KeysymA, Text: "a"}, true, false)
	tr.PointerFrame([]seat.PointerEvent{{Kind: seat.PointerMotion, X: 1, Y: 2}})

	events := tr.Drain()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if _, ok := events[0].(ui.KeyEvent); !ok {
		t.Errorf("events[0] = %T, want KeyEvent (FIFO order)", events[0])
	}
	if _, ok := events[1].(ui.CursorMoved); !ok {
		t.Errorf("events[1] = %T, want CursorMoved (FIFO order)", events[1])
	}

	if tr.Pending() != 0 {
		t.Error("queue should be empty after drain")
	}
	if again := tr.Drain(); len(again) != 0 {
		t.Errorf("second drain returned %d events, want 0", len(again))
	}
}

// TestScreenSizeTracksConfigure tests the screen-size setter.
func TestScreenSizeTracksConfigure(t *testing.T) {
	tr := NewTranslator()
	tr.SetScreenSize(640, 480)

	if tr.width != 640 || tr.height != 480 {
		t.Errorf("screen = %dx%d, want 640x480", tr.width, tr.height)
	}
}
