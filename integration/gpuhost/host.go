// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuhost

import (
	"errors"
	"time"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/animtex"
)

// Common errors returned by gpuhost.
var (
	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("gpuhost: nil DeviceProvider")

	// ErrInvalidRenderer is returned when the draw context exposes no
	// gpucontext.TextureCreator.
	ErrInvalidRenderer = errors.New("gpuhost: renderer must implement gpucontext.TextureCreator")

	// ErrInvalidTexture is returned when the created texture does not
	// implement gpucontext.Texture.
	ErrInvalidTexture = errors.New("gpuhost: texture must implement gpucontext.Texture")

	// ErrTextureDestroyed is returned when rendering a destroyed texture.
	ErrTextureDestroyed = errors.New("gpuhost: texture is destroyed")
)

// Host implements animtex.Host on top of a gpucontext.DeviceProvider.
// The provider should come from gogpu.App.GPUContextProvider().
//
// Host is NOT safe for concurrent use; drive it from the application's
// frame thread.
type Host struct {
	provider   gpucontext.DeviceProvider
	clock      *animtex.ManualClock
	pixelRatio float64
}

// Option configures a Host during creation.
type Option func(*Host)

// WithDevicePixelRatio sets the ratio reported to adapters. Default 1;
// pass the windowing system's scale factor for sharp output on high-DPI
// displays.
func WithDevicePixelRatio(ratio float64) Option {
	return func(h *Host) {
		if ratio >= 1 {
			h.pixelRatio = ratio
		}
	}
}

// New creates a Host for the given device provider.
func New(provider gpucontext.DeviceProvider, opts ...Option) (*Host, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	h := &Host{
		provider:   provider,
		clock:      animtex.NewManualClock(),
		pixelRatio: 1,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// CreateTexture implements animtex.Host. The returned texture is realized
// on the GPU lazily, during the first RenderTo.
func (h *Host) CreateTexture(s *animtex.Surface) (animtex.Texture, error) {
	return &Texture{surface: s, dirty: true}, nil
}

// Clock implements animtex.Host.
func (h *Host) Clock() animtex.FrameClock { return h.clock }

// DevicePixelRatio implements animtex.Host.
func (h *Host) DevicePixelRatio() float64 { return h.pixelRatio }

// Step delivers one frame tick to all subscribed adapters. Call once per
// rendered frame, before drawing the adapters' textures.
func (h *Host) Step(dt time.Duration) { h.clock.Step(dt) }

// Provider returns the underlying device provider.
func (h *Host) Provider() gpucontext.DeviceProvider { return h.provider }
