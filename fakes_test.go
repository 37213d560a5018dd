// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wayapp

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wayapp/render"
	"github.com/gogpu/wayapp/seat"
	"github.com/gogpu/wayapp/ui"
)

// fakeHandle is a seat.SurfaceHandle that counts protocol traffic.
type fakeHandle struct {
	id            seat.SurfaceID
	commits       int
	frameRequests int
	damages       int
	scale         int32
	destroys      int
}

func (h *fakeHandle) ID() seat.SurfaceID { return h.id }
func (h *fakeHandle) Commit()            { h.commits++ }
func (h *fakeHandle) Damage(x, y, width, height int32) {
	h.damages++
}
func (h *fakeHandle) RequestFrame()              { h.frameRequests++ }
func (h *fakeHandle) SetBufferScale(scale int32) { h.scale = scale }
func (h *fakeHandle) Destroy()                   { h.destroys++ }

// fakeSurface is a render.Surface test double.
type fakeSurface struct {
	configs    []render.SurfaceConfig
	acquires   int
	presents   int
	destroys   int
	acquireErr error
}

type fakeFrame struct {
	s *fakeSurface
}

func (f *fakeFrame) Target() any { return f.s }
func (f *fakeFrame) Present()    { f.s.presents++ }

func (s *fakeSurface) Configure(config render.SurfaceConfig) error {
	s.configs = append(s.configs, config)
	return nil
}

func (s *fakeSurface) Acquire() (render.Frame, error) {
	s.acquires++
	if s.acquireErr != nil {
		return nil, s.acquireErr
	}
	return &fakeFrame{s: s}, nil
}

func (s *fakeSurface) Destroy() { s.destroys++ }

// recordingRoot is a ui.Root that records the render cycle and plays back
// scripted messages and interactions.
type recordingRoot struct {
	builds  int
	draws   int
	applied []ui.Message
	updates [][]ui.Event

	// nextMessages is returned by the next Update and then cleared.
	nextMessages []ui.Message

	interaction ui.Interaction
	wantRedraw  bool
}

func (r *recordingRoot) Build(viewport ui.Viewport) { r.builds++ }

func (r *recordingRoot) Update(events []ui.Event, cursor ui.Cursor) ([]ui.Message, ui.Interaction) {
	r.updates = append(r.updates, events)
	messages := r.nextMessages
	r.nextMessages = nil
	return messages, r.interaction
}

func (r *recordingRoot) Apply(message ui.Message) {
	r.applied = append(r.applied, message)
}

func (r *recordingRoot) Draw(target any, cursor ui.Cursor) { r.draws++ }

func (r *recordingRoot) RedrawRequested() bool { return r.wantRedraw }

// testEnv wires a fake backend, handle, and root for one test.
type testEnv struct {
	ctx     *render.Context
	handle  *fakeHandle
	root    *recordingRoot
	surface *fakeSurface
	opts    Options
}

// newTestEnv registers a backend named after the test so parallel tests do
// not collide in the global render registry.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		handle: &fakeHandle{id: 7},
		root:   &recordingRoot{},
	}

	backend := "test/" + t.Name()
	render.Register(backend, 10, func(ctx *render.Context, config render.SurfaceConfig) (render.Surface, error) {
		env.surface = &fakeSurface{}
		return env.surface, nil
	}, nil)
	t.Cleanup(func() { render.Unregister(backend) })

	ctx, err := render.NewContext(render.NullDeviceHandle{})
	if err != nil {
		t.Fatalf("NewContext failed: %v", err)
	}
	env.ctx = ctx

	env.opts = DefaultOptions()
	env.opts.Backend = backend
	env.opts.Format = gputypes.TextureFormatBGRA8Unorm
	return env
}

func (e *testEnv) window(t *testing.T) *Window {
	t.Helper()
	w, err := NewWindow(e.ctx, e.handle, e.root, e.opts)
	if err != nil {
		t.Fatalf("NewWindow failed: %v", err)
	}
	return w
}

func keyEventA() seat.KeyEvent {
	return seat.KeyEvent{Raw: 38, Sym: seat.KeysymA, Text: "a"}
}

// stubContainer is a bare Container for registry routing tests.
type stubContainer struct {
	id          seat.SurfaceID
	shouldClose bool
	destroys    int
	frames      int
}

func (s *stubContainer) ID() seat.SurfaceID                        { return s.id }
func (s *stubContainer) ShouldClose() bool                         { return s.shouldClose }
func (s *stubContainer) Destroy()                                  { s.destroys++ }
func (s *stubContainer) ScaleFactorChanged(factor int32)           {}
func (s *stubContainer) TransformChanged(transform seat.Transform) {}
func (s *stubContainer) Frame(time uint32)                         { s.frames++ }
func (s *stubContainer) SurfaceEnter(output seat.OutputID)         {}
func (s *stubContainer) SurfaceLeave(output seat.OutputID)         {}
func (s *stubContainer) KeyboardEnter()                            {}
func (s *stubContainer) KeyboardLeave()                            {}
func (s *stubContainer) PressKey(ev seat.KeyEvent)                 {}
func (s *stubContainer) ReleaseKey(ev seat.KeyEvent)               {}
func (s *stubContainer) RepeatKey(ev seat.KeyEvent)                {}
func (s *stubContainer) UpdateModifiers(m seat.Modifiers)          {}
func (s *stubContainer) PointerFrame(frame []seat.PointerEvent)    {}
