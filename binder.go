// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package animtex

import "log/slog"

// binder owns the lifecycle of at most one engine instance. Creating a new
// instance always disposes the previous one first; disposal failures are
// logged and never prevent the new bind.
//
// binder is not safe for concurrent use; the adapter serializes access
// under its own mutex.
type binder struct {
	engine   Engine
	instance EngineInstance
	playing  bool
	disposed bool // guards double-dispose of the current instance
}

func newBinder(engine Engine) *binder {
	return &binder{engine: engine}
}

// bound reports whether a live instance exists.
func (b *binder) bound() bool {
	return b.instance != nil
}

// bind disposes any previous instance, then creates a new one from data
// targeting surface. On engine rejection the previous instance is already
// gone — callers on the reload path must only invoke bind after the fetch
// succeeded, so a fetch failure never unbinds working content.
func (b *binder) bind(data []byte, surface *Surface, source string, autoplay bool) error {
	b.dispose()

	inst, err := b.engine.NewInstance(data, surface)
	if err != nil {
		return &EngineCreateError{Source: source, Err: err}
	}
	b.instance = inst
	b.disposed = false
	b.playing = autoplay
	if !autoplay {
		inst.Pause()
	}
	return nil
}

// dispose pauses and releases the current instance, if any. Errors are
// logged at warn level and swallowed — disposal never fails observably.
// Safe to call repeatedly.
func (b *binder) dispose() {
	if b.instance == nil || b.disposed {
		return
	}
	b.instance.Pause()
	if err := b.instance.Dispose(); err != nil {
		Logger().Warn("animtex: engine dispose failed", slog.Any("error", err))
	}
	b.disposed = true
	b.instance = nil
	b.playing = false
}

// pause freezes playback. No-op when nothing is bound, so callers may
// invoke it before the first load completes.
func (b *binder) pause() {
	b.playing = false
	if b.instance != nil {
		b.instance.Pause()
	}
}

// resume unfreezes playback. No-op when nothing is bound.
func (b *binder) resume() {
	b.playing = true
	if b.instance != nil {
		b.instance.Resume()
	}
}
