// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuhost

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/animtex"
)

// textureDestroyer is the interface for destroying GPU textures.
// This matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// Texture implements animtex.Texture over a lazily created GPU texture.
//
// The wrapper's identity is stable for the adapter's lifetime; when the
// display surface is resized in place the underlying GPU texture is
// recreated on the next RenderTo, with the old one destroyed only after
// the new upload completed (the GPU may still be reading it before that).
type Texture struct {
	mu sync.Mutex

	surface *animtex.Surface
	gpu     any // realized GPU texture
	oldGPU  any // previous texture awaiting deferred destruction
	width   int // realized dimensions
	height  int

	dirty       bool
	interactive bool
	destroyed   bool
}

// MarkDirty implements animtex.Texture. It only flags the pending upload;
// the actual GPU write happens in RenderTo.
func (t *Texture) MarkDirty() {
	t.mu.Lock()
	t.dirty = true
	t.mu.Unlock()
}

// SetInteractive marks the texture as a pointer-event target for the
// application's hit testing. gpuhost itself routes no events; the flag is
// readable via Interactive.
func (t *Texture) SetInteractive(v bool) {
	t.mu.Lock()
	t.interactive = v
	t.mu.Unlock()
}

// Interactive reports whether the texture participates in pointer events.
func (t *Texture) Interactive() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.interactive
}

// Destroy implements animtex.Texture. Idempotent.
func (t *Texture) Destroy() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.destroyed {
		return nil
	}
	t.destroyed = true

	if t.oldGPU != nil {
		if d, ok := t.oldGPU.(textureDestroyer); ok {
			d.Destroy()
		}
		t.oldGPU = nil
	}
	if t.gpu != nil {
		if d, ok := t.gpu.(textureDestroyer); ok {
			d.Destroy()
		}
		t.gpu = nil
	}
	return nil
}

// RenderTo uploads pending pixels and draws the texture into dc at (x, y).
// Call from the application's draw pass with the drawer obtained from
// gogpu.Context.AsTextureDrawer().
//
// The GPU texture is created on first use and recreated after a surface
// resize; in both cases the upload runs through the creator, which waits
// for the GPU internally, so destroying the previous texture afterwards is
// safe.
func (t *Texture) RenderTo(dc gpucontext.TextureDrawer, x, y float32) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.destroyed {
		return ErrTextureDestroyed
	}

	w, h := t.surface.Width(), t.surface.Height()

	// A resized surface invalidates the realized texture. Keep the old one
	// alive until the replacement's upload has made the GPU idle.
	if t.gpu != nil && (w != t.width || h != t.height) {
		if t.oldGPU != nil {
			if d, ok := t.oldGPU.(textureDestroyer); ok {
				d.Destroy()
			}
		}
		t.oldGPU = t.gpu
		t.gpu = nil
	}

	if t.gpu == nil {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrInvalidRenderer
		}
		realTex, err := creator.NewTextureFromRGBA(w, h, t.surface.Data())
		if err != nil {
			return fmt.Errorf("gpuhost: NewTextureFromRGBA failed: %w", err)
		}
		t.gpu = realTex
		t.width, t.height = w, h
		t.dirty = false

		// NewTextureFromRGBA's WriteTexture waits for the GPU, so the old
		// texture's descriptor heap entries are no longer in use.
		if t.oldGPU != nil {
			if d, ok := t.oldGPU.(textureDestroyer); ok {
				d.Destroy()
			}
			t.oldGPU = nil
			animtex.Logger().Debug("gpuhost: recreated texture after resize",
				slog.Int("width", w), slog.Int("height", h))
		}
	} else if t.dirty {
		if updater, ok := t.gpu.(gpucontext.TextureUpdater); ok {
			if err := updater.UpdateData(t.surface.Data()); err != nil {
				return fmt.Errorf("gpuhost: texture update failed: %w", err)
			}
		}
		t.dirty = false
	}

	gpuTex, ok := t.gpu.(gpucontext.Texture)
	if !ok {
		return ErrInvalidTexture
	}
	return dc.DrawTexture(gpuTex, x, y)
}
