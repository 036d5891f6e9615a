// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package animtex

import (
	"context"
	"errors"
	"time"
)

// fakeSub is a fakeClock registration.
type fakeSub struct {
	fn      func(dt time.Duration)
	removed bool
}

func (s *fakeSub) Unsubscribe() { s.removed = true }

// fakeClock implements FrameClock for testing. Tick drives all active
// subscriptions synchronously, like a host frame loop.
type fakeClock struct {
	subs []*fakeSub
}

func (c *fakeClock) Subscribe(fn func(dt time.Duration)) Subscription {
	s := &fakeSub{fn: fn}
	c.subs = append(c.subs, s)
	return s
}

func (c *fakeClock) tick(dt time.Duration) {
	for _, s := range c.subs {
		if !s.removed {
			s.fn(dt)
		}
	}
}

// active returns the number of live subscriptions.
func (c *fakeClock) active() int {
	n := 0
	for _, s := range c.subs {
		if !s.removed {
			n++
		}
	}
	return n
}

// fakeTexture implements Texture (and the interactive capability).
type fakeTexture struct {
	surface     *Surface
	dirty       int
	destroyed   int
	destroyErr  error
	interactive bool
}

func (t *fakeTexture) MarkDirty() { t.dirty++ }

func (t *fakeTexture) Destroy() error {
	t.destroyed++
	return t.destroyErr
}

func (t *fakeTexture) SetInteractive(v bool) { t.interactive = v }

// fakeHost implements Host for testing.
type fakeHost struct {
	clock     *fakeClock
	dpr       float64
	textures  []*fakeTexture
	createErr error
}

func newFakeHost(dpr float64) *fakeHost {
	return &fakeHost{clock: &fakeClock{}, dpr: dpr}
}

func (h *fakeHost) CreateTexture(s *Surface) (Texture, error) {
	if h.createErr != nil {
		return nil, h.createErr
	}
	t := &fakeTexture{surface: s}
	h.textures = append(h.textures, t)
	return t, nil
}

func (h *fakeHost) Clock() FrameClock { return h.clock }

func (h *fakeHost) DevicePixelRatio() float64 { return h.dpr }

// fakeInstance implements EngineInstance.
type fakeInstance struct {
	target     *Surface
	data       []byte
	advanced   time.Duration
	rendered   int
	paused     bool
	disposed   int
	renderErr  error
	disposeErr error
}

func (i *fakeInstance) Advance(dt time.Duration) {
	if !i.paused {
		i.advanced += dt
	}
}

func (i *fakeInstance) Render() error {
	if i.renderErr != nil {
		return i.renderErr
	}
	i.rendered++
	// Paint a recognizable byte pattern so blits are observable.
	data := i.target.Data()
	for j := range data {
		data[j] = byte(i.rendered)
	}
	return nil
}

func (i *fakeInstance) Pause()  { i.paused = true }
func (i *fakeInstance) Resume() { i.paused = false }

func (i *fakeInstance) Dispose() error {
	i.disposed++
	return i.disposeErr
}

// fakeEngine implements Engine.
type fakeEngine struct {
	instances []*fakeInstance
	createErr error
}

func (e *fakeEngine) NewInstance(data []byte, target *Surface) (EngineInstance, error) {
	if e.createErr != nil {
		return nil, e.createErr
	}
	inst := &fakeInstance{target: target, data: data}
	e.instances = append(e.instances, inst)
	return inst, nil
}

// last returns the most recently created instance.
func (e *fakeEngine) last() *fakeInstance {
	if len(e.instances) == 0 {
		return nil
	}
	return e.instances[len(e.instances)-1]
}

var errFakeNotFound = errors.New("not found")

// fakeFetcher implements Fetcher with canned responses. The optional
// onFetch hook runs mid-fetch — outside the adapter lock — which lets
// tests interleave a Destroy or a competing SetSource with an in-flight
// load without goroutines.
type fakeFetcher struct {
	responses map[string][]byte
	errs      map[string]error
	calls     []string
	onFetch   func(source string)
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		responses: make(map[string][]byte),
		errs:      make(map[string]error),
	}
}

func (f *fakeFetcher) Fetch(_ context.Context, source string) ([]byte, error) {
	f.calls = append(f.calls, source)
	if f.onFetch != nil {
		hook := f.onFetch
		f.onFetch = nil // run once to avoid recursion
		hook(source)
	}
	if err, ok := f.errs[source]; ok {
		return nil, err
	}
	if data, ok := f.responses[source]; ok {
		return data, nil
	}
	return nil, &FetchError{Source: source, StatusCode: 404, Err: errFakeNotFound}
}
