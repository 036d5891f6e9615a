// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenhost

import (
	"bytes"
	"testing"
	"time"
)

func TestPremultiply(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		want []byte
	}{
		{"opaque unchanged", []byte{200, 100, 50, 255}, []byte{200, 100, 50, 255}},
		{"transparent zeroes", []byte{200, 100, 50, 0}, []byte{0, 0, 0, 0}},
		{"half alpha halves", []byte{200, 100, 50, 128}, []byte{100, 50, 25, 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := premultiply(nil, tt.src)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("premultiply(%v) = %v, want %v", tt.src, got, tt.want)
			}
		})
	}
}

func TestPremultiplyReusesBuffer(t *testing.T) {
	src := []byte{10, 20, 30, 255, 40, 50, 60, 255}
	dst := make([]byte, len(src))

	out := premultiply(dst, src)
	if &out[0] != &dst[0] {
		t.Error("premultiply reallocated a correctly sized buffer")
	}
}

func TestHostStepDrivesClock(t *testing.T) {
	h := New()

	var got time.Duration
	h.Clock().Subscribe(func(dt time.Duration) { got += dt })

	h.Step(16 * time.Millisecond)
	if got != 16*time.Millisecond {
		t.Errorf("subscriber received %v, want 16ms", got)
	}
}

func TestHostUpdateSkipsFirstFrame(t *testing.T) {
	h := New()

	ticks := 0
	h.Clock().Subscribe(func(time.Duration) { ticks++ })

	// The first Update has no previous frame time, so no tick is emitted.
	h.Update()
	if ticks != 0 {
		t.Errorf("ticks after first Update = %d, want 0", ticks)
	}

	h.Update()
	if ticks != 1 {
		t.Errorf("ticks after second Update = %d, want 1", ticks)
	}
}
