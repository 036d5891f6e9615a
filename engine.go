// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package animtex

import "time"

// Engine creates animation instances from raw asset bytes. The asset's
// binary format is opaque to animtex and fully owned by the engine.
//
// engine/flipbook provides a reference implementation; production engines
// typically wrap a vector-animation rasterizer.
type Engine interface {
	// NewInstance decodes data and binds a new animation instance to the
	// target surface. The instance paints into target on every Render call
	// until it is disposed. Rejected or malformed data is reported as an
	// error; the adapter wraps it in *EngineCreateError.
	NewInstance(data []byte, target *Surface) (EngineInstance, error)
}

// EngineInstance is one live animation bound to exactly one draw surface.
//
// Instances are driven from the host frame loop: Advance moves the
// playback position, Render paints the current frame into the bound
// surface. Neither may block.
type EngineInstance interface {
	// Advance moves the playback clock forward by dt.
	// While paused, Advance is a no-op.
	Advance(dt time.Duration)

	// Render paints the frame at the current playback position into the
	// bound surface.
	Render() error

	// Pause freezes the playback clock.
	Pause()

	// Resume unfreezes the playback clock.
	Resume()

	// Dispose releases engine resources for this instance. Called at most
	// once by the adapter; the returned error is diagnostic only and never
	// interrupts the caller's cleanup.
	Dispose() error
}
