// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wayapp

import (
	"github.com/gogpu/wayapp/render"
	"github.com/gogpu/wayapp/seat"
	"github.com/gogpu/wayapp/ui"
)

// PopupConfigure is an xdg-popup configure payload. The protocol carries
// signed dimensions; non-positive ones keep the previous size.
type PopupConfigure struct {
	// X, Y position the popup relative to its parent's window geometry.
	X int32
	Y int32

	Width  int32
	Height int32
}

// Popup is an xdg-popup surface container (menus, tooltips).
type Popup struct {
	containerBase
}

// NewPopup wires a popup surface to a toolkit root.
func NewPopup(ctx *render.Context, handle seat.SurfaceHandle, root ui.Root, opts Options) (*Popup, error) {
	rs, err := newRenderSurface(ctx, handle, root, opts)
	if err != nil {
		return nil, err
	}
	return &Popup{containerBase: containerBase{rs: rs}}, nil
}

// Configure resizes, keeping the previous size for non-positive dimensions.
func (p *Popup) Configure(configure PopupConfigure) {
	width := p.rs.width
	if configure.Width > 0 {
		width = uint32(configure.Width)
	}
	height := p.rs.height
	if configure.Height > 0 {
		height = uint32(configure.Height)
	}
	p.render(p.rs.Configure(width, height))
}

// Done handles the xdg-popup done notification: the compositor dismissed
// the popup and it should be removed.
func (p *Popup) Done() {
	p.shouldClose = true
}
