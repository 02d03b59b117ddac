package houtveilig

import "image"

// Canvas is the in-memory pixel buffer of a single square icon.
type Canvas struct {
	*image.NRGBA
}

// NewCanvas allocates a transparent size*size canvas.
func NewCanvas(size int) *Canvas {
	return &Canvas{image.NewNRGBA(image.Rect(0, 0, size, size))}
}

// Size returns the edge length of the canvas in pixels.
func (c *Canvas) Size() int {
	return c.Bounds().Dx()
}

// Rasterize draws the icon on a new size*size canvas,
// classifying every pixel row by row, from left to right.
func Rasterize(size int, pal Palette) *Canvas {
	c := NewCanvas(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c.SetNRGBA(x, y, pal.Color(Classify(x, y, size), y, size))
		}
	}
	return c
}

// Scanlines returns the raw image data of the canvas: each row of pixels is
// prefixed with the filter type byte 0 (no filtering).
func (c *Canvas) Scanlines() []byte {
	b := c.Bounds()
	rowSize := b.Dx() * 4
	raw := make([]byte, 0, b.Dy()*(rowSize+1))

	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := c.PixOffset(b.Min.X, y)
		raw = append(raw, 0)
		raw = append(raw, c.Pix[off:off+rowSize]...)
	}
	return raw
}
