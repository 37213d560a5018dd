// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wayapp

import (
	"github.com/gogpu/wayapp/render"
	"github.com/gogpu/wayapp/seat"
	"github.com/gogpu/wayapp/ui"
)

// WindowConfigure is a toplevel configure payload. The compositor may leave
// either dimension unspecified (zero, "client decides") or a buggy
// transport may deliver a negative one; both are recovered locally, never
// rejected.
type WindowConfigure struct {
	// Width, Height in logical pixels. Zero means unspecified and falls
	// back to the size the window was created with (256 under
	// DefaultOptions); negative means keep the previous size.
	Width  int32
	Height int32
}

// Window is a toplevel surface container.
type Window struct {
	containerBase

	defaultWidth  uint32
	defaultHeight uint32

	// allowClose, when set, can veto a compositor close request.
	allowClose func() bool
}

// NewWindow wires a toplevel surface to a toolkit root. The window stays
// dormant until its first Configure.
func NewWindow(ctx *render.Context, handle seat.SurfaceHandle, root ui.Root, opts Options) (*Window, error) {
	rs, err := newRenderSurface(ctx, handle, root, opts)
	if err != nil {
		return nil, err
	}
	return &Window{
		containerBase: containerBase{rs: rs},
		defaultWidth:  rs.width,
		defaultHeight: rs.height,
	}, nil
}

// Configure normalizes the payload and resizes. An unspecified dimension
// falls back to the creation-time default; a negative one keeps the
// previous size.
func (w *Window) Configure(configure WindowConfigure) {
	width := normalizeWindowDim(configure.Width, w.defaultWidth, w.rs.width)
	height := normalizeWindowDim(configure.Height, w.defaultHeight, w.rs.height)
	w.render(w.rs.Configure(width, height))
}

func normalizeWindowDim(dim int32, fallback, previous uint32) uint32 {
	switch {
	case dim > 0:
		return uint32(dim)
	case dim == 0:
		return fallback
	default:
		return previous
	}
}

// OnCloseRequest installs a veto hook for compositor close requests. When
// the hook returns false the request is ignored; without a hook every
// request is honored.
func (w *Window) OnCloseRequest(allow func() bool) {
	w.allowClose = allow
}

// RequestClose handles the compositor asking the window to close. Honored
// requests mark the window eligible for removal; actually removing it is
// the application's job.
func (w *Window) RequestClose() {
	if w.allowClose != nil && !w.allowClose() {
		Logger().Debug("close request vetoed", "surface", w.ID())
		return
	}
	w.shouldClose = true
}
