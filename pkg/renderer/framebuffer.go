package renderer

import (
	"image"
	"image/color"
)

// Framebuffer holds the rendered image as row-major, top-to-bottom RGBA bytes.
// Distinct pixels may be written concurrently.
type Framebuffer struct {
	img *image.RGBA
}

// NewFramebuffer allocates a width x height buffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the buffer width in pixels
func (fb *Framebuffer) Width() int {
	return fb.img.Rect.Dx()
}

// Height returns the buffer height in pixels
func (fb *Framebuffer) Height() int {
	return fb.img.Rect.Dy()
}

// Bytes returns the width*height*4 interleaved R,G,B,A bytes
func (fb *Framebuffer) Bytes() []byte {
	return fb.img.Pix
}

// Image returns the buffer as an image for encoders
func (fb *Framebuffer) Image() *image.RGBA {
	return fb.img
}

// Set writes a pixel in raster coordinates (row 0 at the top)
func (fb *Framebuffer) Set(x, y int, c color.RGBA) {
	fb.img.SetRGBA(x, y, c)
}

// At reads a pixel in raster coordinates
func (fb *Framebuffer) At(x, y int) color.RGBA {
	return fb.img.RGBAAt(x, y)
}
