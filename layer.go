// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wayapp

import (
	"github.com/gogpu/wayapp/render"
	"github.com/gogpu/wayapp/seat"
	"github.com/gogpu/wayapp/ui"
)

// LayerConfigure is a layer-shell configure payload. Layer surfaces always
// receive explicit dimensions; a zero dimension is still tolerated and
// clamps to one pixel downstream.
type LayerConfigure struct {
	Width  uint32
	Height uint32
}

// LayerSurface is a layer-shell surface container (panels, wallpapers,
// lock screens).
type LayerSurface struct {
	containerBase
}

// NewLayerSurface wires a layer-shell surface to a toolkit root.
func NewLayerSurface(ctx *render.Context, handle seat.SurfaceHandle, root ui.Root, opts Options) (*LayerSurface, error) {
	rs, err := newRenderSurface(ctx, handle, root, opts)
	if err != nil {
		return nil, err
	}
	return &LayerSurface{containerBase: containerBase{rs: rs}}, nil
}

// Configure resizes to the compositor-supplied dimensions.
func (l *LayerSurface) Configure(configure LayerConfigure) {
	l.render(l.rs.Configure(configure.Width, configure.Height))
}

// Closed handles the layer-shell closed notification: the compositor
// destroyed the layer surface and no further events will arrive for it.
func (l *LayerSurface) Closed() {
	l.shouldClose = true
}
