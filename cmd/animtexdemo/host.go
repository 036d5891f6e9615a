package main

import (
	"context"
	"math"

	"github.com/gogpu/animtex"
	"github.com/gogpu/animtex/engine/flipbook"
)

// softwareHost is a headless animtex.Host: textures are plain surfaces and
// the frame clock is stepped manually by the demo loop.
type softwareHost struct {
	clock *animtex.ManualClock
	dpr   float64
}

func newSoftwareHost(dpr float64) *softwareHost {
	return &softwareHost{clock: animtex.NewManualClock(), dpr: dpr}
}

func (h *softwareHost) CreateTexture(s *animtex.Surface) (animtex.Texture, error) {
	return &softwareTexture{surface: s}, nil
}

func (h *softwareHost) Clock() animtex.FrameClock { return h.clock }

func (h *softwareHost) DevicePixelRatio() float64 { return h.dpr }

// softwareTexture counts uploads instead of performing them.
type softwareTexture struct {
	surface *animtex.Surface
	uploads int
}

func (t *softwareTexture) MarkDirty() { t.uploads++ }

func (t *softwareTexture) Destroy() error { return nil }

// memoryFetcher serves one in-memory asset for any source identifier.
type memoryFetcher struct {
	src []byte
}

func (f memoryFetcher) Fetch(context.Context, string) ([]byte, error) {
	return f.src, nil
}

// generateAsset builds a one-second looping flipbook: a bright orbiting
// dot with a fading trail on a dark background.
func generateAsset() ([]byte, error) {
	const (
		size   = 64
		frames = 30
		fps    = 30
	)

	anim := &flipbook.Animation{Width: size, Height: size, FPS: fps}
	for f := 0; f < frames; f++ {
		frame := make([]byte, size*size*4)
		for i := 0; i < len(frame); i += 4 {
			frame[i+2] = 40 // dark blue backdrop
			frame[i+3] = 255
		}

		// Dot positions for this frame and a short trail behind it.
		for trail := 0; trail < 6; trail++ {
			angle := 2 * math.Pi * float64(f-trail) / frames
			cx := size/2 + int(float64(size)*0.35*math.Cos(angle))
			cy := size/2 + int(float64(size)*0.35*math.Sin(angle))
			brightness := byte(255 - trail*40)
			stamp(frame, size, cx, cy, 3, brightness)
		}
		anim.Frames = append(anim.Frames, frame)
	}
	return flipbook.Encode(anim)
}

// stamp fills a square of the given radius around (cx, cy).
func stamp(frame []byte, size, cx, cy, r int, v byte) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			if x < 0 || x >= size || y < 0 || y >= size {
				continue
			}
			i := (y*size + x) * 4
			frame[i+0] = v
			frame[i+1] = v
			frame[i+2] = v
			frame[i+3] = 255
		}
	}
}
