package animtex

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
)

// minPhysicalSize is the smallest allowed physical surface dimension.
// Degenerate 0x0 or 1x1 GPU resources are rejected by some backends.
const minPhysicalSize = 2

// PhysicalSize converts a logical size and device pixel scale into a
// physical pixel dimension: max(2, floor(logical*scale)). Scales below 1
// are clamped to 1.
func PhysicalSize(logical, scale float64) int {
	if scale < 1 {
		scale = 1
	}
	px := int(math.Floor(logical * scale))
	if px < minPhysicalSize {
		px = minPhysicalSize
	}
	return px
}

// Surface represents a rectangular pixel buffer in RGBA format.
//
// A Surface's identity (the pointer) is stable across resizes: Resize on the
// owning SurfacePair mutates the buffer in place, so a host texture bound to
// a Surface stays bound after a resize.
type Surface struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewSurface creates a new surface with the given dimensions.
func NewSurface(width, height int) *Surface {
	return &Surface{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the surface in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the height of the surface in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Data returns the raw pixel data (RGBA format).
func (s *Surface) Data() []uint8 {
	return s.data
}

// Clear fills the entire surface with transparent black.
func (s *Surface) Clear() {
	for i := range s.data {
		s.data[i] = 0
	}
}

// resize replaces the backing buffer with one of the given dimensions.
// The Surface pointer itself is unchanged. Content is not preserved.
func (s *Surface) resize(width, height int) {
	s.width = width
	s.height = height
	s.data = make([]uint8, width*height*4)
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return color.NRGBA{}
	}
	i := (y*s.width + x) * 4
	return color.NRGBA{R: s.data[i], G: s.data[i+1], B: s.data[i+2], A: s.data[i+3]}
}

// Set implements the draw.Image interface.
func (s *Surface) Set(x, y int, c color.Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	i := (y*s.width + x) * 4
	s.data[i+0] = n.R
	s.data[i+1] = n.G
	s.data[i+2] = n.B
	s.data[i+3] = n.A
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}

// ToImage converts the surface to an image.NRGBA.
func (s *Surface) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.data)
	return img
}

// SavePNG saves the surface content to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, s.ToImage())
}

// SurfacePair holds the two surfaces the adapter renders through: the
// engine paints into Draw, and the host texture reads from Display.
// Both surfaces always share identical pixel dimensions.
type SurfacePair struct {
	Draw    *Surface
	Display *Surface
}

// NewSurfacePair allocates a draw/display surface pair sized for the given
// logical size and device pixel scale.
// Returns ErrInvalidSize if logical is not positive.
func NewSurfacePair(logical, scale float64) (*SurfacePair, error) {
	if logical <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, logical)
	}
	px := PhysicalSize(logical, scale)
	return &SurfacePair{
		Draw:    NewSurface(px, px),
		Display: NewSurface(px, px),
	}, nil
}

// Resize adjusts both surfaces to the physical size implied by logical and
// scale. If the surfaces already match, Resize is a no-op and returns false.
// Otherwise both buffers are reallocated in place — the Surface pointers are
// preserved so any host texture bound to Display stays valid — and Resize
// returns true so the caller knows to refresh the texture content.
//
// Resize is safe to call before any engine is bound (it seeds an empty first
// frame) and at any later time for a hot resize.
func (p *SurfacePair) Resize(logical, scale float64) (changed bool, err error) {
	if logical <= 0 {
		return false, fmt.Errorf("%w: %v", ErrInvalidSize, logical)
	}
	px := PhysicalSize(logical, scale)
	if p.Draw.width == px && p.Draw.height == px &&
		p.Display.width == px && p.Display.height == px {
		return false, nil
	}
	p.Draw.resize(px, px)
	p.Display.resize(px, px)
	return true, nil
}

// Width returns the shared physical width of the pair.
func (p *SurfacePair) Width() int {
	return p.Display.width
}

// Height returns the shared physical height of the pair.
func (p *SurfacePair) Height() int {
	return p.Display.height
}
