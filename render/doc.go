// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render abstracts the GPU presentation surface a wayapp container
// draws into.
//
// The GPU device and queue are process-wide and arrive from the host
// through a DeviceHandle; wayapp never creates a device of its own. Each
// surface owns one Surface created through the backend registry, configured
// in physical pixels, and paced by Acquire/Present.
//
// Backends register themselves by name and priority, so a wgpu-backed
// swapchain, a test double, or a software blitter can be swapped in without
// touching the containers.
package render
