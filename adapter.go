// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package animtex

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// State describes the adapter lifecycle.
//
// The only repeatable transition is Loading → Ready (source swaps);
// StateDestroyed is absorbing.
type State int

const (
	// StateUninitialized is the state after New, before Start.
	StateUninitialized State = iota

	// StateLoading covers the first load and the commit phase of a swap.
	StateLoading

	// StateReady means a source is bound and the frame pump may blit.
	StateReady

	// StateDestroyed is terminal; no operation leaves it.
	StateDestroyed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateDestroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Adapter synchronizes one animation-engine instance with a host
// renderer's frame loop, exposing the engine's output as a host texture.
//
// Construction is pure: New allocates no surfaces and performs no I/O.
// Call Start to run the first load; after it returns the first frame is
// already present and the frame pump is running. All methods are safe for
// concurrent use; frame callbacks and loads interleave only at the fetch.
type Adapter struct {
	mu sync.Mutex

	host   Host
	cfg    config
	source string

	state      State
	pair       *SurfacePair
	binder     *binder
	texture    Texture
	sub        Subscription
	playIntent bool

	// generation invalidates in-flight loads: each load captures the value
	// at its start and discards its result if a newer load (or a destroy)
	// has moved it on by the time the fetch resolves.
	generation uint64
}

// New creates an adapter bound to host and engine for the given source.
// No surfaces are allocated and no bytes are fetched until Start.
//
// The device pixel scale defaults to host.DevicePixelRatio(), clamped to a
// minimum of 1; override it with WithDevicePixelScale.
func New(host Host, engine Engine, source string, opts ...Option) (*Adapter, error) {
	if host == nil {
		return nil, ErrNilHost
	}
	if engine == nil {
		return nil, ErrNilEngine
	}
	if source == "" {
		return nil, ErrEmptySource
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logicalSize <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, cfg.logicalSize)
	}
	if cfg.pixelScale == 0 {
		cfg.pixelScale = host.DevicePixelRatio()
	}
	if cfg.pixelScale < 1 {
		cfg.pixelScale = 1
	}

	return &Adapter{
		host:       host,
		cfg:        cfg,
		source:     source,
		state:      StateUninitialized,
		binder:     newBinder(engine),
		playIntent: cfg.autoplay,
	}, nil
}

// Start runs the initial load of the configured source. On success the
// adapter is ready and the frame pump is enabled.
//
// Start returns *FetchError or *EngineCreateError on failure; the adapter
// stays constructed but not ready, and a later SetSource can still succeed.
// Callers that want fire-and-forget initialization run Start on their own
// goroutine and route the error to a log.
func (a *Adapter) Start(ctx context.Context) error {
	a.mu.Lock()
	source := a.source
	a.mu.Unlock()
	return a.load(ctx, source)
}

// SetSource fetches and binds a new animation source.
//
// The previous content keeps playing until the new source is fully bound:
// a failed fetch leaves readiness and the bound instance untouched and
// returns *FetchError to the caller. Overlapping SetSource calls are
// latest-wins; a superseded call returns ErrSuperseded.
func (a *Adapter) SetSource(ctx context.Context, source string) error {
	if source == "" {
		return ErrEmptySource
	}
	return a.load(ctx, source)
}

// load runs one full load cycle: fetch → dispose-old → resize → bind-new →
// prime blit → ready. The fetch runs outside the lock; the commit re-checks
// the generation so stale completions discard their result instead of
// rebinding a destroyed or already-replaced adapter.
func (a *Adapter) load(ctx context.Context, source string) error {
	a.mu.Lock()
	if a.state == StateDestroyed {
		a.mu.Unlock()
		return ErrDestroyed
	}
	a.generation++
	gen := a.generation
	if a.state == StateUninitialized {
		a.state = StateLoading
	}
	fetcher := a.cfg.fetcher
	a.mu.Unlock()

	data, ferr := fetcher.Fetch(ctx, source)

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state == StateDestroyed {
		a.debugLog("load discarded: adapter destroyed", slog.String("source", source))
		return ErrDestroyed
	}
	if gen != a.generation {
		a.debugLog("load discarded: superseded", slog.String("source", source))
		return ErrSuperseded
	}
	if ferr != nil {
		// Previous ready state, surfaces, and instance are untouched.
		return ferr
	}

	return a.commitLocked(data, source)
}

// commitLocked applies a successfully fetched asset. No suspension points:
// the frame pump never observes a partially bound state because readiness
// flips only after the priming blit.
func (a *Adapter) commitLocked(data []byte, source string) error {
	prev := a.state
	a.state = StateLoading

	a.binder.dispose()

	if err := a.provisionLocked(); err != nil {
		return err
	}

	if err := a.binder.bind(data, a.pair.Draw, source, a.playIntent); err != nil {
		// The old instance is already gone; the display surface keeps its
		// last blitted pixels but the adapter is no longer ready.
		return err
	}

	// Priming render+blit so the first visible frame exists before Ready
	// is observable.
	if err := a.binder.instance.Render(); err != nil {
		a.binder.dispose()
		return &EngineCreateError{Source: source, Err: fmt.Errorf("priming render: %w", err)}
	}
	blit(a.pair)
	a.texture.MarkDirty()

	a.source = source
	a.state = StateReady
	a.enableLocked()

	Logger().Info("animtex: source bound",
		slog.String("source", source),
		slog.Int("size", a.pair.Width()),
		slog.String("from", prev.String()))
	return nil
}

// provisionLocked sizes the surface pair for the current configuration and
// lazily creates the host texture on first use. The texture is created
// exactly once per adapter; resizes mutate the display surface in place so
// texture identity is preserved.
func (a *Adapter) provisionLocked() error {
	if a.pair == nil {
		pair, err := NewSurfacePair(a.cfg.logicalSize, a.cfg.pixelScale)
		if err != nil {
			return err
		}
		a.pair = pair
	} else if _, err := a.pair.Resize(a.cfg.logicalSize, a.cfg.pixelScale); err != nil {
		return err
	}

	if a.texture == nil {
		tex, err := a.host.CreateTexture(a.pair.Display)
		if err != nil {
			return fmt.Errorf("animtex: texture creation failed: %w", err)
		}
		a.texture = tex
		if it, ok := tex.(interactiveTarget); ok && a.cfg.interactive {
			it.SetInteractive(true)
		}
	}
	return nil
}

// Resize changes the logical size at runtime (for example after a layout
// or device-pixel-ratio change). If the physical size actually changes,
// both surfaces are reallocated in place, the current frame is re-rendered
// and re-blitted, and the texture is marked dirty — its identity is never
// recreated.
func (a *Adapter) Resize(logicalSize float64) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state == StateDestroyed {
		return ErrDestroyed
	}
	if logicalSize <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidSize, logicalSize)
	}
	a.cfg.logicalSize = logicalSize
	if a.pair == nil {
		// Applied on the next load.
		return nil
	}

	changed, err := a.pair.Resize(logicalSize, a.cfg.pixelScale)
	if err != nil || !changed {
		return err
	}
	if a.binder.bound() {
		if rerr := a.binder.instance.Render(); rerr != nil {
			Logger().Warn("animtex: re-render after resize failed", slog.Any("error", rerr))
		}
	}
	blit(a.pair)
	if a.texture != nil {
		a.texture.MarkDirty()
	}
	return nil
}

// Pause freezes playback. Safe to call before the first load completes.
func (a *Adapter) Pause() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.playIntent = false
	a.binder.pause()
}

// Play resumes playback. Safe to call before the first load completes.
func (a *Adapter) Play() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.playIntent = true
	a.binder.resume()
}

// Enable subscribes the frame pump to the host clock. Idempotent: enabling
// an enabled adapter registers nothing. The pump callback is a silent no-op
// until the adapter is ready, so Enable may be called eagerly before Start.
func (a *Adapter) Enable() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enableLocked()
}

func (a *Adapter) enableLocked() {
	if a.state == StateDestroyed || a.sub != nil {
		return
	}
	a.sub = a.host.Clock().Subscribe(a.onFrame)
}

// Disable unsubscribes the frame pump from the host clock. Idempotent.
func (a *Adapter) Disable() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.disableLocked()
}

func (a *Adapter) disableLocked() {
	if a.sub == nil {
		return
	}
	a.sub.Unsubscribe()
	a.sub = nil
}

// onFrame is the per-frame pump: advance, render, blit, mark dirty.
// Exactly one blit/upload cycle per host frame while ready; otherwise a
// silent no-op (covers the window between an eager Enable and the load
// completing). Never blocks on the GPU — MarkDirty only flags the upload.
func (a *Adapter) onFrame(dt time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != StateReady || !a.binder.bound() {
		return
	}

	a.binder.instance.Advance(dt)
	if err := a.binder.instance.Render(); err != nil {
		Logger().Warn("animtex: render failed", slog.Any("error", err))
		return
	}
	if blit(a.pair) {
		a.texture.MarkDirty()
	}
}

// Destroy tears the adapter down exactly once: the frame pump is disabled,
// the engine instance is paused and disposed, and the host texture is
// destroyed. Cleanup is best-effort — errors are logged, never returned.
//
// A second Destroy is a guarded no-op reported at warn level. Loads still
// in flight detect the destroyed state when their fetch resolves and
// discard their result.
func (a *Adapter) Destroy() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state == StateDestroyed {
		Logger().Warn("animtex: Destroy called on destroyed adapter")
		return nil
	}

	a.disableLocked()
	a.binder.dispose()
	if a.texture != nil {
		if err := a.texture.Destroy(); err != nil {
			Logger().Warn("animtex: texture destroy failed", slog.Any("error", err))
		}
		a.texture = nil
	}
	a.state = StateDestroyed

	Logger().Info("animtex: adapter destroyed", slog.String("source", a.source))
	return nil
}

// IsReady reports whether a source is bound and the pump may blit.
func (a *Adapter) IsReady() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state == StateReady
}

// State returns the current lifecycle state.
func (a *Adapter) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Source returns the currently bound source identifier. During a swap this
// is the previous source until the new one is fully bound.
func (a *Adapter) Source() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.source
}

// Texture returns the host texture, or nil before the first successful
// load. The texture identity never changes for the adapter's lifetime.
func (a *Adapter) Texture() Texture {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.texture
}

// debugLog emits a debug record unless per-frame diagnostics are disabled.
func (a *Adapter) debugLog(msg string, attrs ...any) {
	if !a.cfg.debugLogging {
		return
	}
	Logger().Debug("animtex: "+msg, attrs...)
}
