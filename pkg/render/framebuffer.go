// Package render turns traced colors into pictures: it owns the camera,
// the per-frame parallel driver, framebuffers, and the terminal presenter.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"sync"

	"github.com/taigrr/tracer/pkg/math3d"
)

// ErrFramebufferSize is returned for framebuffers without any pixels.
var ErrFramebufferSize = errors.New("framebuffer has no pixels")

// Framebuffer is a 2D array of pixels. In the terminal each cell shows two
// rows using half-block characters (▀).
type Framebuffer struct {
	Width  int
	Height int
	Pixels []color.RGBA // Row-major pixel data
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	width, height = max(width, 0), max(height, 0)
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

// Validate reports ErrFramebufferSize for empty or inconsistent buffers.
func (fb *Framebuffer) Validate() error {
	if fb == nil || fb.Width <= 0 || fb.Height <= 0 {
		return ErrFramebufferSize
	}
	if len(fb.Pixels) != fb.Width*fb.Height {
		return fmt.Errorf("%dx%d framebuffer holds %d pixels: %w", fb.Width, fb.Height, len(fb.Pixels), ErrFramebufferSize)
	}
	return nil
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c color.RGBA) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// SetPixel sets a pixel at (x, y) to the given color.
// Bounds checking is performed.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// SetColor stores a [0,1] color at (x, y), quantized to 8 bits per channel.
func (fb *Framebuffer) SetColor(x, y int, c math3d.Vec3) {
	fb.SetPixel(x, y, ToRGBA(c))
}

// ToRGBA scales a color by 255 and truncates each channel. Channels are
// saturated first.
func ToRGBA(c math3d.Vec3) color.RGBA {
	c = c.Saturate()
	return color.RGBA{
		R: uint8(c.X * 255),
		G: uint8(c.Y * 255),
		B: uint8(c.Z * 255),
		A: 255,
	}
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, fb.ToImage()); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}

// DoubleBuffer pairs a back buffer being rendered with a front buffer being
// shown. Swap exchanges them.
type DoubleBuffer struct {
	mu          sync.Mutex
	front, back *Framebuffer
}

// NewDoubleBuffer creates two framebuffers of the given size.
func NewDoubleBuffer(width, height int) *DoubleBuffer {
	return &DoubleBuffer{
		front: NewFramebuffer(width, height),
		back:  NewFramebuffer(width, height),
	}
}

// Back returns the buffer to render into.
func (d *DoubleBuffer) Back() *Framebuffer {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.back
}

// Front returns the most recently completed frame.
func (d *DoubleBuffer) Front() *Framebuffer {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.front
}

// Swap presents the back buffer.
func (d *DoubleBuffer) Swap() {
	d.mu.Lock()
	d.front, d.back = d.back, d.front
	d.mu.Unlock()
}

// Resize replaces both buffers when the size changed.
func (d *DoubleBuffer) Resize(width, height int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.back.Width == width && d.back.Height == height {
		return
	}
	d.front = NewFramebuffer(width, height)
	d.back = NewFramebuffer(width, height)
}
