// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package flipbook is a small reference animation engine for animtex.
//
// It decodes a self-contained binary flipbook asset (a fixed-rate sequence
// of raw RGBA frames) and rasterizes the frame for the current playback
// position into the bound surface, scaling when the surface and asset
// dimensions differ. It exists so the adapter can be exercised end to end
// without an external vector-animation engine.
package flipbook

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/animtex"
)

// Asset format: a 14-byte header followed by frameCount raw NRGBA frames.
//
//	offset  size  field
//	0       4     magic "FLBK"
//	4       2     version (big endian, currently 1)
//	6       2     width in pixels
//	8       2     height in pixels
//	10      2     frame count (>= 1)
//	12      2     frames per second (>= 1)
//	14      ...   frames, frameCount * width * height * 4 bytes
const (
	headerSize = 14
	version    = 1
)

var magic = [4]byte{'F', 'L', 'B', 'K'}

// Decoding errors.
var (
	// ErrBadMagic is returned when data does not start with the FLBK magic.
	ErrBadMagic = errors.New("flipbook: bad magic")

	// ErrBadVersion is returned for an unsupported format version.
	ErrBadVersion = errors.New("flipbook: unsupported version")

	// ErrTruncated is returned when data is shorter than the header claims.
	ErrTruncated = errors.New("flipbook: truncated asset")

	// ErrBadHeader is returned for zero dimensions, frame count, or rate.
	ErrBadHeader = errors.New("flipbook: invalid header field")

	// ErrDisposed is returned by Render after the instance was disposed.
	ErrDisposed = errors.New("flipbook: instance is disposed")
)

// Animation is a decoded flipbook asset.
type Animation struct {
	Width  int
	Height int
	FPS    int
	Frames [][]byte // raw NRGBA, Width*Height*4 bytes each
}

// Duration returns the total playback duration of one loop.
func (a *Animation) Duration() time.Duration {
	return time.Duration(len(a.Frames)) * time.Second / time.Duration(a.FPS)
}

// Decode parses a flipbook asset.
func Decode(data []byte) (*Animation, error) {
	if len(data) < headerSize {
		return nil, ErrTruncated
	}
	if [4]byte(data[:4]) != magic {
		return nil, ErrBadMagic
	}
	if v := binary.BigEndian.Uint16(data[4:6]); v != version {
		return nil, fmt.Errorf("%w: %d", ErrBadVersion, v)
	}

	width := int(binary.BigEndian.Uint16(data[6:8]))
	height := int(binary.BigEndian.Uint16(data[8:10]))
	frames := int(binary.BigEndian.Uint16(data[10:12]))
	fps := int(binary.BigEndian.Uint16(data[12:14]))
	if width == 0 || height == 0 || frames == 0 || fps == 0 {
		return nil, fmt.Errorf("%w: %dx%d, %d frames @ %d fps", ErrBadHeader, width, height, frames, fps)
	}

	frameSize := width * height * 4
	if len(data) != headerSize+frames*frameSize {
		return nil, fmt.Errorf("%w: have %d bytes, want %d", ErrTruncated, len(data), headerSize+frames*frameSize)
	}

	a := &Animation{Width: width, Height: height, FPS: fps, Frames: make([][]byte, frames)}
	body := data[headerSize:]
	for i := range a.Frames {
		a.Frames[i] = body[i*frameSize : (i+1)*frameSize : (i+1)*frameSize]
	}
	return a, nil
}

// Encode serializes an animation into the flipbook wire format.
func Encode(a *Animation) ([]byte, error) {
	if a.Width <= 0 || a.Height <= 0 || len(a.Frames) == 0 || a.FPS <= 0 {
		return nil, fmt.Errorf("%w: %dx%d, %d frames @ %d fps", ErrBadHeader, a.Width, a.Height, len(a.Frames), a.FPS)
	}
	if a.Width > 0xFFFF || a.Height > 0xFFFF || len(a.Frames) > 0xFFFF || a.FPS > 0xFFFF {
		return nil, fmt.Errorf("%w: field exceeds uint16", ErrBadHeader)
	}

	frameSize := a.Width * a.Height * 4
	out := make([]byte, headerSize, headerSize+len(a.Frames)*frameSize)
	copy(out[:4], magic[:])
	binary.BigEndian.PutUint16(out[4:6], version)
	binary.BigEndian.PutUint16(out[6:8], uint16(a.Width))
	binary.BigEndian.PutUint16(out[8:10], uint16(a.Height))
	binary.BigEndian.PutUint16(out[10:12], uint16(len(a.Frames)))
	binary.BigEndian.PutUint16(out[12:14], uint16(a.FPS))

	for i, frame := range a.Frames {
		if len(frame) != frameSize {
			return nil, fmt.Errorf("%w: frame %d has %d bytes, want %d", ErrBadHeader, i, len(frame), frameSize)
		}
		out = append(out, frame...)
	}
	return out, nil
}

// Engine implements animtex.Engine for flipbook assets.
// The zero value is ready to use.
type Engine struct{}

// NewInstance decodes data and binds a playback instance to target.
func (Engine) NewInstance(data []byte, target *animtex.Surface) (animtex.EngineInstance, error) {
	anim, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return &instance{anim: anim, target: target}, nil
}

// instance is one flipbook playback bound to a surface.
type instance struct {
	mu       sync.Mutex
	anim     *Animation
	target   *animtex.Surface
	elapsed  time.Duration
	paused   bool
	disposed bool
}

// Advance moves the playback clock. No-op while paused.
func (i *instance) Advance(dt time.Duration) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.paused || i.disposed {
		return
	}
	i.elapsed += dt
}

// Render paints the frame for the current playback position into the bound
// surface, scaling with nearest-neighbor when the surface size differs
// from the asset's intrinsic size. Playback loops.
func (i *instance) Render() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.disposed {
		return ErrDisposed
	}

	n := int(i.elapsed.Seconds() * float64(i.anim.FPS))
	frame := i.anim.Frames[n%len(i.anim.Frames)]

	w, h := i.target.Width(), i.target.Height()
	if w == i.anim.Width && h == i.anim.Height {
		copy(i.target.Data(), frame)
		return nil
	}

	src := &image.NRGBA{
		Pix:    frame,
		Stride: i.anim.Width * 4,
		Rect:   image.Rect(0, 0, i.anim.Width, i.anim.Height),
	}
	xdraw.NearestNeighbor.Scale(i.target, i.target.Bounds(), src, src.Rect, xdraw.Src, nil)
	return nil
}

// Pause freezes the playback clock.
func (i *instance) Pause() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.paused = true
}

// Resume unfreezes the playback clock.
func (i *instance) Resume() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.paused = false
}

// Dispose releases the instance. Further Render calls fail with
// ErrDisposed; repeated Dispose calls are no-ops.
func (i *instance) Dispose() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.disposed = true
	i.anim = nil
	return nil
}
