// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wayapp

import (
	"fmt"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wayapp/input"
	"github.com/gogpu/wayapp/render"
	"github.com/gogpu/wayapp/seat"
	"github.com/gogpu/wayapp/ui"
)

// RenderSurface ties one protocol surface to its presentation surface,
// input translator, and toolkit root, and paces rendering against
// compositor frame grants.
//
// Rendering is input-driven: after each pass the next frame callback is
// requested only when the pass consumed input or the root asked for an
// animation frame. An idle surface therefore renders nothing until the next
// event arrives.
type RenderSurface struct {
	handle     seat.SurfaceHandle
	surface    render.Surface
	translator *input.Translator
	root       ui.Root
	cursor     seat.CursorSetter

	format gputypes.TextureFormat
	width  uint32 // logical, ≥1
	height uint32 // logical, ≥1
	scale  int32  // ≥1

	configured      bool
	lastInteraction ui.Interaction
}

// newRenderSurface creates the surface through the backend registry and
// wires up a fresh translator. The surface stays dormant (Render is a
// no-op) until the first Configure.
func newRenderSurface(ctx *render.Context, handle seat.SurfaceHandle, root ui.Root, opts Options) (*RenderSurface, error) {
	width, height := opts.Width, opts.Height
	if width < 1 {
		width = defaultSize
	}
	if height < 1 {
		height = defaultSize
	}

	format := opts.Format
	if format == gputypes.TextureFormatUndefined {
		format = ctx.SurfaceFormat()
	}

	config := render.SurfaceConfig{Width: width, Height: height, Format: format}.Normalize()

	var (
		surface render.Surface
		err     error
	)
	if opts.Backend != "" {
		surface, err = render.NewSurfaceByName(opts.Backend, ctx, config)
	} else {
		surface, err = render.NewSurface(ctx, config)
	}
	if err != nil {
		return nil, fmt.Errorf("wayapp: creating presentation surface: %w", err)
	}

	translator := input.NewTranslator()
	translator.SetScreenSize(width, height)

	return &RenderSurface{
		handle:     handle,
		surface:    surface,
		translator: translator,
		root:       root,
		cursor:     opts.Cursor,
		format:     format,
		width:      width,
		height:     height,
		scale:      1,
	}, nil
}

// Configure adopts a new logical size, reconfigures the presentation
// surface in physical pixels, and renders once so the first frame appears
// without waiting for a separate frame grant. Dimensions are clamped to ≥1.
func (rs *RenderSurface) Configure(width, height uint32) error {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	rs.width = width
	rs.height = height
	rs.translator.SetScreenSize(width, height)

	if err := rs.reconfigure(); err != nil {
		return err
	}
	rs.configured = true
	return rs.Render()
}

// ScaleFactorChanged adopts a new buffer scale. Factors below 1 are clamped
// to 1; an unchanged factor is a no-op.
func (rs *RenderSurface) ScaleFactorChanged(factor int32) error {
	if factor < 1 {
		factor = 1
	}
	if factor == rs.scale {
		return nil
	}
	rs.scale = factor
	if !rs.configured {
		return nil
	}
	if err := rs.reconfigure(); err != nil {
		return err
	}
	return rs.Render()
}

// reconfigure pushes the current size and scale to the protocol handle and
// the presentation surface.
func (rs *RenderSurface) reconfigure() error {
	viewport := rs.Viewport()
	rs.handle.SetBufferScale(rs.scale)

	config := render.SurfaceConfig{
		Width:  viewport.PhysicalWidth(),
		Height: viewport.PhysicalHeight(),
		Format: rs.format,
	}
	if err := rs.surface.Configure(config); err != nil {
		return fmt.Errorf("wayapp: configuring presentation surface: %w", err)
	}
	return nil
}

// SurfaceEnter records the surface becoming visible on an output.
func (rs *RenderSurface) SurfaceEnter(output seat.OutputID) {
	Logger().Debug("surface entered output",
		"surface", rs.handle.ID(), "output", output)
}

// SurfaceLeave records the surface leaving an output.
func (rs *RenderSurface) SurfaceLeave(output seat.OutputID) {
	Logger().Debug("surface left output",
		"surface", rs.handle.ID(), "output", output)
}

// Viewport returns the current drawable area.
func (rs *RenderSurface) Viewport() ui.Viewport {
	return ui.Viewport{Width: rs.width, Height: rs.height, Scale: rs.scale}
}

// Render runs one full pass: drain input, build the tree, apply messages,
// draw, present. Before the first configure it does nothing; a surface must
// not draw until the compositor has sized it.
//
// When messages were produced mid-frame the tree is rebuilt before drawing,
// so the presented frame always reflects application state after every
// message.
func (rs *RenderSurface) Render() error {
	if !rs.configured {
		return nil
	}

	events := rs.translator.Drain()
	hadInput := len(events) > 0
	events = append(events, ui.RedrawRequested{At: time.Now()})

	frame, err := rs.surface.Acquire()
	if err != nil {
		return fmt.Errorf("wayapp: acquiring frame: %w", err)
	}

	x, y := rs.translator.PointerPosition()
	cursor := ui.Cursor{X: x, Y: y}
	viewport := rs.Viewport()

	rs.root.Build(viewport)
	messages, interaction := rs.root.Update(events, cursor)
	if len(messages) > 0 {
		for _, m := range messages {
			rs.root.Apply(m)
		}
		rs.root.Build(viewport)
	}
	rs.root.Draw(frame.Target(), cursor)
	frame.Present()

	rs.updateCursorShape(interaction)

	rs.handle.Damage(0, 0, int32(viewport.PhysicalWidth()), int32(viewport.PhysicalHeight()))
	if rearm := hadInput || rs.wantsRedraw(); rearm {
		rs.handle.RequestFrame()
	}
	rs.handle.Commit()
	return nil
}

// wantsRedraw reports whether the root asked for an animation frame
// independent of input.
func (rs *RenderSurface) wantsRedraw() bool {
	rr, ok := rs.root.(ui.RedrawRequester)
	return ok && rr.RedrawRequested()
}

// updateCursorShape forwards the toolkit's interaction to the seat, once
// per change rather than once per frame.
func (rs *RenderSurface) updateCursorShape(interaction ui.Interaction) {
	if interaction == rs.lastInteraction {
		return
	}
	rs.lastInteraction = interaction
	if rs.cursor == nil {
		return
	}
	shape := interactionCursor(interaction)
	Logger().Debug("cursor shape changed",
		"surface", rs.handle.ID(), "shape", shape)
	rs.cursor.SetCursor(shape)
}

// Destroy releases the presentation surface, then the protocol handle.
func (rs *RenderSurface) Destroy() {
	rs.surface.Destroy()
	rs.handle.Destroy()
}

// interactionCursor maps a toolkit interaction to the compositor cursor
// shape vocabulary.
func interactionCursor(i ui.Interaction) seat.CursorShape {
	switch i {
	case ui.InteractionPointer:
		return seat.CursorPointer
	case ui.InteractionText:
		return seat.CursorText
	case ui.InteractionCrosshair:
		return seat.CursorCrosshair
	case ui.InteractionGrab:
		return seat.CursorGrab
	case ui.InteractionGrabbing:
		return seat.CursorGrabbing
	case ui.InteractionMove:
		return seat.CursorMove
	case ui.InteractionNotAllowed:
		return seat.CursorNotAllowed
	case ui.InteractionCell:
		return seat.CursorCell
	case ui.InteractionCopy:
		return seat.CursorCopy
	case ui.InteractionAlias:
		return seat.CursorAlias
	case ui.InteractionNoDrop:
		return seat.CursorNoDrop
	case ui.InteractionContextMenu:
		return seat.CursorContextMenu
	case ui.InteractionHelp:
		return seat.CursorHelp
	case ui.InteractionProgress:
		return seat.CursorProgress
	case ui.InteractionWait:
		return seat.CursorWait
	case ui.InteractionAllScroll:
		return seat.CursorAllScroll
	case ui.InteractionZoomIn:
		return seat.CursorZoomIn
	case ui.InteractionZoomOut:
		return seat.CursorZoomOut
	case ui.InteractionResizeHorizontal:
		return seat.CursorEWResize
	case ui.InteractionResizeVertical:
		return seat.CursorNSResize
	case ui.InteractionResizeDiagonalUp:
		return seat.CursorNESWResize
	case ui.InteractionResizeDiagonalDown:
		return seat.CursorNWSEResize
	case ui.InteractionResizeColumn:
		return seat.CursorColResize
	case ui.InteractionResizeRow:
		return seat.CursorRowResize
	}
	return seat.CursorDefault
}
