// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wayapp

import (
	"github.com/gogpu/wayapp/render"
	"github.com/gogpu/wayapp/seat"
	"github.com/gogpu/wayapp/ui"
)

// Subsurface is a child surface composited into a parent. Subsurfaces have
// no configure event of their own; the owning parent drives their size
// through Resize.
type Subsurface struct {
	containerBase
}

// NewSubsurface wires a subsurface to a toolkit root.
func NewSubsurface(ctx *render.Context, handle seat.SurfaceHandle, root ui.Root, opts Options) (*Subsurface, error) {
	rs, err := newRenderSurface(ctx, handle, root, opts)
	if err != nil {
		return nil, err
	}
	return &Subsurface{containerBase: containerBase{rs: rs}}, nil
}

// Resize adopts a parent-driven size.
func (s *Subsurface) Resize(width, height uint32) {
	s.render(s.rs.Configure(width, height))
}
