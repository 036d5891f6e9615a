// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package animtex

import "time"

// Host is the minimal capability surface the adapter needs from a renderer.
// It deliberately hides the host's texture and scheduling machinery so the
// core stays renderer-agnostic and testable with a fake host.
//
// Ready-made implementations live in integration/gpuhost and
// integration/ebitenhost.
type Host interface {
	// CreateTexture binds a GPU texture to the given surface. The host owns
	// the texture object; the adapter only marks it dirty and eventually
	// destroys it. The surface pointer stays valid for the texture's
	// lifetime — resizes mutate the surface in place.
	CreateTexture(s *Surface) (Texture, error)

	// Clock returns the host's per-frame clock.
	Clock() FrameClock

	// DevicePixelRatio reports the host's physical-to-logical pixel ratio.
	// Values below 1 are treated as 1.
	DevicePixelRatio() float64
}

// Texture is a host-owned GPU texture reading from a display surface.
type Texture interface {
	// MarkDirty tells the host the surface content changed and should be
	// uploaded on the next render pass. It must not block on the upload.
	MarkDirty()

	// Destroy releases the texture. Best-effort: errors are logged by the
	// adapter and never interrupt its teardown.
	Destroy() error
}

// FrameClock delivers one callback per rendered host frame.
type FrameClock interface {
	// Subscribe registers fn to run once per frame with the time elapsed
	// since the previous frame. Callbacks run on the host's frame thread;
	// there is no re-entrancy.
	Subscribe(fn func(dt time.Duration)) Subscription
}

// Subscription is an active frame-clock registration.
type Subscription interface {
	// Unsubscribe removes the callback. Idempotent.
	Unsubscribe()
}

// interactiveTarget is implemented by textures that can participate in the
// host's pointer-event dispatch. Honored when the adapter is configured
// with WithInteractive.
type interactiveTarget interface {
	SetInteractive(bool)
}
