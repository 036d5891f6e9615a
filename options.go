// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package animtex

// Option configures an Adapter during creation.
// Use functional options to customize behavior:
//
//	a, err := animtex.New(host, engine, src,
//	    animtex.WithLogicalSize(256),
//	    animtex.WithAutoplay(false))
type Option func(*config)

// config holds optional configuration for Adapter creation.
type config struct {
	autoplay     bool
	logicalSize  float64
	pixelScale   float64 // 0 means "ask the host"
	interactive  bool
	debugLogging bool
	fetcher      Fetcher
}

// defaultConfig returns the default adapter configuration.
func defaultConfig() config {
	return config{
		autoplay:     true,
		logicalSize:  512,
		pixelScale:   0, // resolved from Host.DevicePixelRatio in New
		interactive:  false,
		debugLogging: true,
		fetcher:      &HTTPFetcher{},
	}
}

// WithAutoplay controls whether playback starts as soon as a source is
// bound. Default true.
func WithAutoplay(autoplay bool) Option {
	return func(c *config) {
		c.autoplay = autoplay
	}
}

// WithLogicalSize sets the logical edge length of the animation surface.
// Physical pixels are derived from this and the device pixel scale.
// Default 512.
func WithLogicalSize(size float64) Option {
	return func(c *config) {
		c.logicalSize = size
	}
}

// WithDevicePixelScale overrides the device pixel scale. By default the
// scale is read from Host.DevicePixelRatio. Values below 1 are clamped to 1.
func WithDevicePixelScale(scale float64) Option {
	return func(c *config) {
		c.pixelScale = scale
	}
}

// WithInteractive enables pointer-event participation on hosts that
// support it. Default false.
func WithInteractive(interactive bool) Option {
	return func(c *config) {
		c.interactive = interactive
	}
}

// WithDebugLogging controls per-frame debug diagnostics (skipped blits,
// stale load discards). Default true; lifecycle and warning logs are
// unaffected.
func WithDebugLogging(enabled bool) Option {
	return func(c *config) {
		c.debugLogging = enabled
	}
}

// WithFetcher sets the transport used to fetch asset bytes.
// Default is an HTTPFetcher using http.DefaultClient.
func WithFetcher(f Fetcher) Option {
	return func(c *config) {
		if f != nil {
			c.fetcher = f
		}
	}
}
