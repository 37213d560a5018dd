// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"

	"github.com/gogpu/gputypes"
)

// Errors shared by all surface backends.
var (
	// ErrSurfaceLost reports that the presentation surface became
	// unusable (swapchain outdated, device lost). The owning container's
	// render path must stop; the surface cannot recover locally.
	ErrSurfaceLost = errors.New("render: surface lost")

	// ErrNotConfigured reports an Acquire before the first Configure.
	ErrNotConfigured = errors.New("render: surface not configured")
)

// PresentMode selects how presentation paces against the display.
type PresentMode uint8

const (
	// PresentModeFifo queues frames and waits for vblank. Always
	// supported.
	PresentModeFifo PresentMode = iota

	// PresentModeMailbox replaces the queued frame, trading tearing
	// protection for latency.
	PresentModeMailbox

	// PresentModeImmediate presents without waiting, possibly tearing.
	PresentModeImmediate
)

// SurfaceConfig describes the presentation surface in physical pixels.
type SurfaceConfig struct {
	// Width, Height are physical pixel dimensions, clamped to ≥1 by
	// Normalize.
	Width  uint32
	Height uint32

	// Format is the texture format frames are produced in.
	Format gputypes.TextureFormat

	// Mode is the pacing policy. Zero value is Fifo.
	Mode PresentMode
}

// DefaultSurfaceConfig returns a 256x256 Fifo config in the given format,
// the placeholder state before a compositor configure arrives.
func DefaultSurfaceConfig(format gputypes.TextureFormat) SurfaceConfig {
	return SurfaceConfig{Width: 256, Height: 256, Format: format}
}

// Normalize clamps both dimensions to at least one pixel. Zero-sized
// configures exist in the protocol ("client decides") and must never
// produce a zero-sized swapchain.
func (c SurfaceConfig) Normalize() SurfaceConfig {
	if c.Width < 1 {
		c.Width = 1
	}
	if c.Height < 1 {
		c.Height = 1
	}
	return c
}

// Frame is one acquired presentable texture.
type Frame interface {
	// Target returns the backend-specific drawable handle, passed
	// through to ui.Root.Draw for the toolkit to assert.
	Target() any

	// Present submits the frame to the compositor. The Frame is spent
	// afterwards.
	Present()
}

// Surface is one window-sized presentation surface. Implementations wrap a
// swapchain (or a test double) created against the shared Context. All
// methods run on the event-loop thread.
type Surface interface {
	// Configure sizes the surface. Called on every compositor configure
	// and scale change; repeated identical configs must be harmless.
	Configure(config SurfaceConfig) error

	// Acquire returns the next presentable frame. ErrNotConfigured
	// before the first Configure; ErrSurfaceLost when the surface cannot
	// produce frames anymore.
	Acquire() (Frame, error)

	// Destroy releases the backend resources. The Surface must not be
	// used afterwards.
	Destroy()
}
