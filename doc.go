// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package wayapp bridges a Wayland-style compositor connection, a
// retained-mode UI toolkit, and a GPU presentation surface.
//
// The transport delivers raw protocol events tagged with a surface
// identity; wayapp routes each one through a Registry to the owning
// container (Window, LayerSurface, Popup, or Subsurface), translates input
// into the toolkit's abstract vocabulary, and runs the toolkit's
// build/update/draw cycle against a frame acquired from the shared GPU
// device. Frame pacing is input-driven: a surface that received no input
// and requests no animation stops asking the compositor for frames.
//
// Everything runs on the single event-loop thread that pumps the protocol
// queue. No type in this package is safe for concurrent use.
package wayapp
