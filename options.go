// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wayapp

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wayapp/seat"
)

// Options configures a container at creation time.
type Options struct {
	// Width, Height are the logical size used before the first configure
	// and whenever a window configure leaves a dimension unspecified.
	Width  uint32
	Height uint32

	// Format is the texture format for the presentation surface. Leave
	// zero to use the host device's surface format.
	Format gputypes.TextureFormat

	// Backend selects a presentation backend by name. Empty selects the
	// best available one.
	Backend string

	// Cursor receives cursor shape requests derived from the toolkit's
	// reported interaction. Optional.
	Cursor seat.CursorSetter
}

// DefaultOptions returns the 256x256 defaults shared by all surface kinds.
func DefaultOptions() Options {
	return Options{
		Width:  defaultSize,
		Height: defaultSize,
	}
}

// defaultSize is the fallback dimension when the compositor says "client
// decides".
const defaultSize = 256
