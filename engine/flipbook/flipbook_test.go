// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package flipbook

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/gogpu/animtex"
)

// testAsset builds a 2x2, 2-frame asset at the given rate. Frame n is
// filled with the byte value n+1 so renders are distinguishable.
func testAsset(t *testing.T, fps int) []byte {
	t.Helper()

	frame := func(v byte) []byte {
		f := make([]byte, 2*2*4)
		for i := range f {
			f[i] = v
		}
		return f
	}
	data, err := Encode(&Animation{
		Width:  2,
		Height: 2,
		FPS:    fps,
		Frames: [][]byte{frame(1), frame(2)},
	})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	return data
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	data := testAsset(t, 10)

	anim, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if anim.Width != 2 || anim.Height != 2 || anim.FPS != 10 || len(anim.Frames) != 2 {
		t.Errorf("Decode() = %dx%d @ %d fps, %d frames; want 2x2 @ 10 fps, 2 frames",
			anim.Width, anim.Height, anim.FPS, len(anim.Frames))
	}
	if anim.Duration() != 200*time.Millisecond {
		t.Errorf("Duration() = %v, want 200ms", anim.Duration())
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	valid := testAsset(t, 10)

	badMagic := bytes.Clone(valid)
	copy(badMagic, "NOPE")

	badVersion := bytes.Clone(valid)
	badVersion[5] = 99

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"empty", nil, ErrTruncated},
		{"short header", valid[:10], ErrTruncated},
		{"bad magic", badMagic, ErrBadMagic},
		{"bad version", badVersion, ErrBadVersion},
		{"truncated body", valid[:len(valid)-3], ErrTruncated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.data); !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestInstancePlayback(t *testing.T) {
	target := animtex.NewSurface(2, 2)
	inst, err := Engine{}.NewInstance(testAsset(t, 10), target)
	if err != nil {
		t.Fatalf("NewInstance() error = %v", err)
	}

	// Frame 0 at t=0.
	if err := inst.Render(); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if target.Data()[0] != 1 {
		t.Errorf("frame byte = %d at t=0, want 1", target.Data()[0])
	}

	// Frame 1 at t=100ms (10 fps).
	inst.Advance(100 * time.Millisecond)
	if err := inst.Render(); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if target.Data()[0] != 2 {
		t.Errorf("frame byte = %d at t=100ms, want 2", target.Data()[0])
	}

	// Looped back to frame 0 at t=200ms.
	inst.Advance(100 * time.Millisecond)
	if err := inst.Render(); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if target.Data()[0] != 1 {
		t.Errorf("frame byte = %d at t=200ms, want 1 (loop)", target.Data()[0])
	}
}

func TestInstancePauseFreezesClock(t *testing.T) {
	target := animtex.NewSurface(2, 2)
	inst, err := Engine{}.NewInstance(testAsset(t, 10), target)
	if err != nil {
		t.Fatalf("NewInstance() error = %v", err)
	}

	inst.Pause()
	inst.Advance(time.Second)
	_ = inst.Render()
	if target.Data()[0] != 1 {
		t.Error("playback advanced while paused")
	}

	inst.Resume()
	inst.Advance(100 * time.Millisecond)
	_ = inst.Render()
	if target.Data()[0] != 2 {
		t.Error("playback did not advance after resume")
	}
}

func TestInstanceScalesToSurface(t *testing.T) {
	// Surface larger than the 2x2 asset: nearest-neighbor upscale.
	target := animtex.NewSurface(8, 8)
	inst, err := Engine{}.NewInstance(testAsset(t, 10), target)
	if err != nil {
		t.Fatalf("NewInstance() error = %v", err)
	}
	if err := inst.Render(); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	data := target.Data()
	if data[0] == 0 || data[len(data)-1] == 0 {
		t.Error("scaled render left surface corners unpainted")
	}
}

func TestInstanceDispose(t *testing.T) {
	target := animtex.NewSurface(2, 2)
	inst, err := Engine{}.NewInstance(testAsset(t, 10), target)
	if err != nil {
		t.Fatalf("NewInstance() error = %v", err)
	}

	if err := inst.Dispose(); err != nil {
		t.Fatalf("Dispose() error = %v", err)
	}
	if err := inst.Dispose(); err != nil {
		t.Fatalf("second Dispose() error = %v", err)
	}
	if err := inst.Render(); !errors.Is(err, ErrDisposed) {
		t.Errorf("Render() after Dispose error = %v, want ErrDisposed", err)
	}
}
