// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package animtex

import (
	"sync"
	"time"
)

// ManualClock is a FrameClock driven by the embedder: call Step once per
// rendered frame with the elapsed time since the previous frame.
//
// Host integrations that have no push-style frame callback of their own
// (integration/gpuhost, integration/ebitenhost) embed a ManualClock and
// step it from the application's frame loop.
type ManualClock struct {
	mu   sync.Mutex
	subs map[*manualSub]struct{}
}

// NewManualClock creates an empty manual clock.
func NewManualClock() *ManualClock {
	return &ManualClock{subs: make(map[*manualSub]struct{})}
}

// Subscribe implements FrameClock.
func (c *ManualClock) Subscribe(fn func(dt time.Duration)) Subscription {
	s := &manualSub{clock: c, fn: fn}
	c.mu.Lock()
	c.subs[s] = struct{}{}
	c.mu.Unlock()
	return s
}

// Step delivers one frame tick to every active subscription.
// Callbacks run synchronously on the caller's goroutine, matching the
// no-re-entrancy contract of FrameClock.
func (c *ManualClock) Step(dt time.Duration) {
	c.mu.Lock()
	subs := make([]*manualSub, 0, len(c.subs))
	for s := range c.subs {
		subs = append(subs, s)
	}
	c.mu.Unlock()

	for _, s := range subs {
		s.fn(dt)
	}
}

// Active returns the number of live subscriptions.
func (c *ManualClock) Active() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}

type manualSub struct {
	clock *ManualClock
	fn    func(dt time.Duration)
	once  sync.Once
}

// Unsubscribe implements Subscription. Idempotent.
func (s *manualSub) Unsubscribe() {
	s.once.Do(func() {
		s.clock.mu.Lock()
		delete(s.clock.subs, s)
		s.clock.mu.Unlock()
	})
}
