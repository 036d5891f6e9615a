// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitenhost adapts Ebitengine into an animtex.Host.
//
// Ebitengine pulls frames through Game.Update/Draw rather than pushing a
// frame callback, so the host exposes Update to be called from the game's
// Update method and the texture exposes Draw for the game's Draw method:
//
//	func (g *game) Update() error {
//	    g.host.Update()
//	    return nil
//	}
//
//	func (g *game) Draw(screen *ebiten.Image) {
//	    g.adapter.Texture().(*ebitenhost.Texture).Draw(screen, nil)
//	}
package ebitenhost

import (
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/animtex"
)

// Host implements animtex.Host for Ebitengine games.
// The zero value is not usable; call New.
type Host struct {
	clock *animtex.ManualClock
	prev  time.Time
}

// New creates an Ebitengine-backed host.
func New() *Host {
	return &Host{clock: animtex.NewManualClock()}
}

// CreateTexture implements animtex.Host.
func (h *Host) CreateTexture(s *animtex.Surface) (animtex.Texture, error) {
	return &Texture{surface: s, dirty: true}, nil
}

// Clock implements animtex.Host.
func (h *Host) Clock() animtex.FrameClock { return h.clock }

// DevicePixelRatio implements animtex.Host, reporting the monitor's scale
// factor.
func (h *Host) DevicePixelRatio() float64 {
	if m := ebiten.Monitor(); m != nil {
		if s := m.DeviceScaleFactor(); s >= 1 {
			return s
		}
	}
	return 1
}

// Update steps the frame clock with the wall time elapsed since the last
// Update. Call once from the game's Update method.
func (h *Host) Update() {
	now := time.Now()
	if !h.prev.IsZero() {
		h.clock.Step(now.Sub(h.prev))
	}
	h.prev = now
}

// Step delivers one frame tick with an explicit delta. Useful for tests
// and fixed-timestep games.
func (h *Host) Step(dt time.Duration) { h.clock.Step(dt) }

// Texture implements animtex.Texture over an *ebiten.Image.
//
// The image is created lazily and recreated when the display surface is
// resized; pixel uploads happen in Draw/Image, not in MarkDirty, so the
// adapter's frame path never blocks on the GPU.
type Texture struct {
	mu sync.Mutex

	surface   *animtex.Surface
	img       *ebiten.Image
	scratch   []byte // premultiplied upload buffer, reused across frames
	dirty     bool
	destroyed bool
}

// MarkDirty implements animtex.Texture.
func (t *Texture) MarkDirty() {
	t.mu.Lock()
	t.dirty = true
	t.mu.Unlock()
}

// Destroy implements animtex.Texture. Idempotent.
func (t *Texture) Destroy() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.destroyed {
		return nil
	}
	t.destroyed = true
	if t.img != nil {
		t.img.Deallocate()
		t.img = nil
	}
	t.scratch = nil
	return nil
}

// Image returns the up-to-date *ebiten.Image, uploading pending pixels
// first. Returns nil after Destroy.
func (t *Texture) Image() *ebiten.Image {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.destroyed {
		return nil
	}

	w, h := t.surface.Width(), t.surface.Height()
	if t.img != nil {
		b := t.img.Bounds()
		if b.Dx() != w || b.Dy() != h {
			t.img.Deallocate()
			t.img = nil
		}
	}
	if t.img == nil {
		t.img = ebiten.NewImage(w, h)
		t.dirty = true
	}

	if t.dirty {
		// WritePixels expects premultiplied alpha; the surface stores
		// straight alpha.
		t.scratch = premultiply(t.scratch, t.surface.Data())
		t.img.WritePixels(t.scratch)
		t.dirty = false
	}
	return t.img
}

// Draw renders the texture onto screen with the given options.
// No-op after Destroy.
func (t *Texture) Draw(screen *ebiten.Image, op *ebiten.DrawImageOptions) {
	if img := t.Image(); img != nil {
		screen.DrawImage(img, op)
	}
}

// premultiply converts straight-alpha RGBA into premultiplied alpha,
// reusing dst when it has the right size.
func premultiply(dst, src []byte) []byte {
	if len(dst) != len(src) {
		dst = make([]byte, len(src))
	}
	for i := 0; i+3 < len(src); i += 4 {
		a := uint32(src[i+3])
		dst[i+0] = byte(uint32(src[i+0]) * a / 255)
		dst[i+1] = byte(uint32(src[i+1]) * a / 255)
		dst[i+2] = byte(uint32(src[i+2]) * a / 255)
		dst[i+3] = byte(a)
	}
	return dst
}
