// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wayapp

import (
	"testing"

	"github.com/gogpu/wayapp/seat"
)

// TestWindowConfigureDefaults tests the 256 fallback for unspecified
// dimensions.
func TestWindowConfigureDefaults(t *testing.T) {
	env := newTestEnv(t)
	w := env.window(t)

	w.Configure(WindowConfigure{Width: 0, Height: 300})

	if w.rs.width != 256 || w.rs.height != 300 {
		t.Errorf("size = %dx%d, want 256x300", w.rs.width, w.rs.height)
	}
}

// TestWindowConfigureNegativeKeepsPrevious tests the recovery path for
// malformed dimensions.
func TestWindowConfigureNegativeKeepsPrevious(t *testing.T) {
	env := newTestEnv(t)
	w := env.window(t)

	w.Configure(WindowConfigure{Width: 640, Height: 480})
	w.Configure(WindowConfigure{Width: -1, Height: 500})

	if w.rs.width != 640 || w.rs.height != 500 {
		t.Errorf("size = %dx%d, want 640x500 (previous width kept)", w.rs.width, w.rs.height)
	}
}

// TestWindowConfigureIdempotent tests repeated identical payloads.
func TestWindowConfigureIdempotent(t *testing.T) {
	env := newTestEnv(t)
	w := env.window(t)

	w.Configure(WindowConfigure{Width: 400, Height: 400})
	w.Configure(WindowConfigure{Width: 400, Height: 400})

	if w.rs.width != 400 || w.rs.height != 400 {
		t.Errorf("size = %dx%d, want 400x400", w.rs.width, w.rs.height)
	}
	if w.ShouldClose() {
		t.Error("re-configure must not fail the container")
	}
}

// TestWindowCloseRequest tests the default honor and the veto hook.
func TestWindowCloseRequest(t *testing.T) {
	env := newTestEnv(t)
	w := env.window(t)

	w.RequestClose()
	if !w.ShouldClose() {
		t.Error("close request should be honored by default")
	}

	env2 := newTestEnv(t)
	w2 := env2.window(t)
	w2.OnCloseRequest(func() bool { return false })
	w2.RequestClose()
	if w2.ShouldClose() {
		t.Error("vetoed close request must not mark the window")
	}
}

// TestLayerConfigureClampsZero tests the layer (0,0) → (1,1) clamp.
func TestLayerConfigureClampsZero(t *testing.T) {
	env := newTestEnv(t)
	l, err := NewLayerSurface(env.ctx, env.handle, env.root, env.opts)
	if err != nil {
		t.Fatalf("NewLayerSurface failed: %v", err)
	}

	l.Configure(LayerConfigure{Width: 0, Height: 0})

	if l.rs.width != 1 || l.rs.height != 1 {
		t.Errorf("size = %dx%d, want 1x1", l.rs.width, l.rs.height)
	}
}

// TestLayerClosed tests the layer-shell terminal notification.
func TestLayerClosed(t *testing.T) {
	env := newTestEnv(t)
	l, err := NewLayerSurface(env.ctx, env.handle, env.root, env.opts)
	if err != nil {
		t.Fatalf("NewLayerSurface failed: %v", err)
	}

	l.Closed()
	if !l.ShouldClose() {
		t.Error("Closed should mark the container for removal")
	}
}

// TestPopupConfigureSigned tests non-positive dimensions keeping the
// previous size.
func TestPopupConfigureSigned(t *testing.T) {
	env := newTestEnv(t)
	p, err := NewPopup(env.ctx, env.handle, env.root, env.opts)
	if err != nil {
		t.Fatalf("NewPopup failed: %v", err)
	}

	p.Configure(PopupConfigure{Width: 200, Height: 100})
	p.Configure(PopupConfigure{Width: -5, Height: 0})

	if p.rs.width != 200 || p.rs.height != 100 {
		t.Errorf("size = %dx%d, want 200x100 (previous kept)", p.rs.width, p.rs.height)
	}
}

// TestPopupDone tests the popup terminal notification.
func TestPopupDone(t *testing.T) {
	env := newTestEnv(t)
	p, err := NewPopup(env.ctx, env.handle, env.root, env.opts)
	if err != nil {
		t.Fatalf("NewPopup failed: %v", err)
	}

	p.Done()
	if !p.ShouldClose() {
		t.Error("Done should mark the container for removal")
	}
}

// TestSubsurfaceResize tests parent-driven sizing.
func TestSubsurfaceResize(t *testing.T) {
	env := newTestEnv(t)
	s, err := NewSubsurface(env.ctx, env.handle, env.root, env.opts)
	if err != nil {
		t.Fatalf("NewSubsurface failed: %v", err)
	}

	s.Resize(128, 64)

	if s.rs.width != 128 || s.rs.height != 64 {
		t.Errorf("size = %dx%d, want 128x64", s.rs.width, s.rs.height)
	}
}

// TestContainerDestroyReleasesBoth tests teardown order: presentation
// surface, then protocol handle, each exactly once.
func TestContainerDestroyReleasesBoth(t *testing.T) {
	env := newTestEnv(t)
	w := env.window(t)

	w.Destroy()

	if env.surface.destroys != 1 {
		t.Errorf("surface destroys = %d, want 1", env.surface.destroys)
	}
	if env.handle.destroys != 1 {
		t.Errorf("handle destroys = %d, want 1", env.handle.destroys)
	}
}

// TestKeyboardForwarding tests that key callbacks reach the translator and
// trigger a render.
func TestKeyboardForwarding(t *testing.T) {
	env := newTestEnv(t)
	w := env.window(t)
	w.Configure(WindowConfigure{Width: 100, Height: 100})

	drawsBefore := env.root.draws
	w.PressKey(keyEventA())

	if env.root.draws != drawsBefore+1 {
		t.Errorf("draws = %d, want %d (key press renders)", env.root.draws, drawsBefore+1)
	}

	// The pass consumed the key event plus the redraw marker.
	last := env.root.updates[len(env.root.updates)-1]
	if len(last) != 2 {
		t.Errorf("last update saw %d events, want 2 (key + redraw marker)", len(last))
	}
}

// TestSeatNotificationsRender tests that focus and modifier callbacks each
// trigger a render pass, like the key and pointer forwards do.
func TestSeatNotificationsRender(t *testing.T) {
	env := newTestEnv(t)
	w := env.window(t)
	w.Configure(WindowConfigure{Width: 100, Height: 100})

	draws := env.root.draws
	w.KeyboardEnter()
	if env.root.draws != draws+1 {
		t.Errorf("draws = %d after KeyboardEnter, want %d", env.root.draws, draws+1)
	}

	w.UpdateModifiers(seat.Modifiers{Ctrl: true})
	if env.root.draws != draws+2 {
		t.Errorf("draws = %d after UpdateModifiers, want %d", env.root.draws, draws+2)
	}

	w.KeyboardLeave()
	if env.root.draws != draws+3 {
		t.Errorf("draws = %d after KeyboardLeave, want %d", env.root.draws, draws+3)
	}
}
