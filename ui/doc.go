// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ui defines the abstract event vocabulary and the toolkit contract
// wayapp drives.
//
// wayapp does not implement widgets, layout, or drawing. A retained-mode UI
// toolkit plugs in by implementing Root; wayapp feeds it ordered batches of
// Event values translated from raw protocol input, runs the
// build→update→draw cycle once per granted frame, and reports the pointer
// Interaction the tree wants back to the compositor as a cursor shape.
//
// The vocabulary is deliberately toolkit-neutral: logical keys carry
// layout-dependent identity (NamedKey or character), physical keys carry
// layout-independent position (KeyCode or the raw scan code), and every
// mapping is total: an input wayapp cannot name is delivered as
// Unidentified rather than dropped.
package ui
