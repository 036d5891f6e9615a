// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package animtex

import (
	"errors"
	"testing"
)

func TestBinderBindDisposesPrevious(t *testing.T) {
	engine := &fakeEngine{}
	b := newBinder(engine)
	surface := NewSurface(4, 4)

	if err := b.bind([]byte("one"), surface, "one.anim", true); err != nil {
		t.Fatalf("bind() error = %v", err)
	}
	if err := b.bind([]byte("two"), surface, "two.anim", true); err != nil {
		t.Fatalf("second bind() error = %v", err)
	}

	if len(engine.instances) != 2 {
		t.Fatalf("created %d instances, want 2", len(engine.instances))
	}
	if engine.instances[0].disposed != 1 {
		t.Error("first instance not disposed before rebind")
	}
	if !engine.instances[0].paused {
		t.Error("first instance not paused before disposal")
	}
}

func TestBinderDisposeIsGuarded(t *testing.T) {
	engine := &fakeEngine{}
	b := newBinder(engine)

	// Dispose with nothing bound is a no-op.
	b.dispose()

	if err := b.bind([]byte("x"), NewSurface(4, 4), "x.anim", true); err != nil {
		t.Fatalf("bind() error = %v", err)
	}
	b.dispose()
	b.dispose() // caller bug, must not panic or double-free

	if engine.instances[0].disposed != 1 {
		t.Errorf("instance disposed %d times, want 1", engine.instances[0].disposed)
	}
}

func TestBinderDisposalErrorSwallowed(t *testing.T) {
	engine := &fakeEngine{}
	b := newBinder(engine)

	if err := b.bind([]byte("x"), NewSurface(4, 4), "x.anim", true); err != nil {
		t.Fatalf("bind() error = %v", err)
	}
	engine.instances[0].disposeErr = errors.New("teardown fault")

	// The disposal error must not prevent the new bind.
	if err := b.bind([]byte("y"), NewSurface(4, 4), "y.anim", true); err != nil {
		t.Fatalf("rebind after disposal error = %v, want nil", err)
	}
	if !b.bound() {
		t.Error("bound() = false after rebind, want true")
	}
}

func TestBinderCreateErrorWrapped(t *testing.T) {
	engine := &fakeEngine{createErr: errors.New("bad magic")}
	b := newBinder(engine)

	err := b.bind([]byte("x"), NewSurface(4, 4), "x.anim", true)
	var ee *EngineCreateError
	if !errors.As(err, &ee) {
		t.Fatalf("bind() error = %v, want *EngineCreateError", err)
	}
	if ee.Source != "x.anim" {
		t.Errorf("EngineCreateError.Source = %q, want %q", ee.Source, "x.anim")
	}
	if b.bound() {
		t.Error("bound() = true after failed bind")
	}
}

func TestBinderPauseResumeUnbound(t *testing.T) {
	b := newBinder(&fakeEngine{})

	// Callers may pause/resume before the first load completes.
	b.pause()
	b.resume()

	if err := b.bind([]byte("x"), NewSurface(4, 4), "x.anim", false); err != nil {
		t.Fatalf("bind() error = %v", err)
	}
	if b.playing {
		t.Error("playing = true after bind with autoplay=false")
	}
}
