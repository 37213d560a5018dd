// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package input translates raw seat events into the abstract event
// vocabulary of package ui.
//
// The mapping layer is a pair of total functions: MapKey resolves a layout
// key symbol to a logical key and keyboard location, MapPhysicalKey
// resolves it to a layout-independent key code. Symbols outside both tables
// come back as unidentified values, never as missing results, so shortcut
// handling downstream degrades instead of breaking.
//
// Translator is the per-surface state machine on top: it tracks modifier
// and pointer state, intercepts clipboard chords, and queues events in
// receipt order until a render pass drains them.
package input
