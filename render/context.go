// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// ErrNilProvider is returned when a Context is created without a device
// provider.
var ErrNilProvider = errors.New("render: nil device provider")

// Context bundles the shared GPU state every surface draws with. It is
// created once per process and handed to each container; nothing in it is
// mutated after construction, so sharing across surfaces is safe under the
// single-thread dispatch model.
type Context struct {
	provider DeviceHandle

	halDevice hal.Device
	halQueue  hal.Queue
}

// NewContext wraps a host device provider. If the provider additionally
// exposes HalDevice() any and HalQueue() any returning hal.Device and
// hal.Queue, the HAL handles are captured so wgpu-level backends can reach
// the raw device; providers without them still work for backends that only
// need the gpucontext surface.
func NewContext(provider DeviceHandle) (*Context, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}

	ctx := &Context{provider: provider}

	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	if hp, ok := provider.(halProvider); ok {
		device, ok := hp.HalDevice().(hal.Device)
		if !ok || device == nil {
			return nil, fmt.Errorf("render: provider HalDevice is not hal.Device")
		}
		queue, ok := hp.HalQueue().(hal.Queue)
		if !ok || queue == nil {
			return nil, fmt.Errorf("render: provider HalQueue is not hal.Queue")
		}
		ctx.halDevice = device
		ctx.halQueue = queue
	}

	return ctx, nil
}

// Device returns the shared gpucontext device.
func (c *Context) Device() gpucontext.Device { return c.provider.Device() }

// Queue returns the shared gpucontext queue.
func (c *Context) Queue() gpucontext.Queue { return c.provider.Queue() }

// SurfaceFormat returns the texture format the host presents with.
func (c *Context) SurfaceFormat() gputypes.TextureFormat {
	return c.provider.SurfaceFormat()
}

// Hal returns the raw HAL device and queue when the provider exposed them.
func (c *Context) Hal() (hal.Device, hal.Queue, bool) {
	if c.halDevice == nil {
		return nil, nil, false
	}
	return c.halDevice, c.halQueue, true
}

// Poll drives the device's internal queue processing when the device
// supports it. Blocking polls wait for all submitted work to finish.
// Devices without a poll hook make this a no-op.
func (c *Context) Poll(wait bool) {
	type poller interface {
		Poll(wait bool)
	}
	if d, ok := c.provider.Device().(poller); ok {
		d.Poll(wait)
	}
}
