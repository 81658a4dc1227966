package pixkit

import (
	"github.com/gogpu/gputypes"
)

// Pixmap is a fixed-size RGBA8 pixel buffer with software drawing routines.
//
// Pixels are stored row-major, four bytes each in R, G, B, A order, with
// straight alpha. Geometry outside the buffer is clipped silently; no
// drawing method returns an error or panics for out-of-range coordinates.
//
// A Pixmap is not safe for concurrent mutation.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a zeroed pixmap. Negative sizes are treated as zero.
func NewPixmap(width, height int) *Pixmap {
	width = max(width, 0)
	height = max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// NewPixmapFromPixels wraps pixels without copying. The slice must hold
// exactly width*height*4 bytes.
func NewPixmapFromPixels(width, height int, pixels []uint8) (*Pixmap, error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	if len(pixels) != width*height*4 {
		return nil, &PixelSizeError{Width: width, Height: height, Got: len(pixels)}
	}
	return &Pixmap{width: width, height: height, data: pixels}, nil
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Format returns the texture format matching Data's layout.
func (p *Pixmap) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Clone returns a deep copy.
func (p *Pixmap) Clone() *Pixmap {
	data := make([]uint8, len(p.data))
	copy(data, p.data)
	return &Pixmap{width: p.width, height: p.height, data: data}
}

// Contains reports whether (x, y) addresses a pixel.
func (p *Pixmap) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < p.width && y < p.height
}

// Set writes a pixel. Writes outside the pixmap are ignored.
func (p *Pixmap) Set(x, y int, c RGBA32) {
	if p.Contains(x, y) {
		p.SetUnchecked(x, y, c)
	}
}

// SetUnchecked writes a pixel without bounds checking.
// The caller must ensure (x, y) is inside the pixmap.
func (p *Pixmap) SetUnchecked(x, y int, c RGBA32) {
	i := (x + y*p.width) * 4
	p.data[i+0] = uint8(c >> 24)
	p.data[i+1] = uint8(c >> 16)
	p.data[i+2] = uint8(c >> 8)
	p.data[i+3] = uint8(c)
}

// Get reads a pixel. Reads outside the pixmap return 0.
func (p *Pixmap) Get(x, y int) RGBA32 {
	if !p.Contains(x, y) {
		return 0
	}
	return p.GetUnchecked(x, y)
}

// GetUnchecked reads a pixel without bounds checking.
func (p *Pixmap) GetUnchecked(x, y int) RGBA32 {
	i := (x + y*p.width) * 4
	return RGBA32(uint32(p.data[i])<<24 | uint32(p.data[i+1])<<16 | uint32(p.data[i+2])<<8 | uint32(p.data[i+3]))
}

// Fill sets every pixel to c.
func (p *Pixmap) Fill(c RGBA32) {
	r, g, b, a := c.Unpack()
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// FillColor sets every pixel to a float color.
func (p *Pixmap) FillColor(c Color) {
	p.Fill(c.RGBA32())
}

// DrawLine draws a line from (x0, y0) to (x1, y1), both endpoints included,
// using Bresenham's algorithm. Pixels outside the pixmap are clipped.
func (p *Pixmap) DrawLine(x0, y0, x1, y1 int, c RGBA32) {
	dx := x1 - x0
	dy := y1 - y0
	stepX, stepY := 1, 1
	if dx < 0 {
		dx = -dx
		stepX = -1
	}
	if dy < 0 {
		dy = -dy
		stepY = -1
	}
	dx <<= 1
	dy <<= 1

	x, y := x0, y0
	p.Set(x, y, c)
	if dx > dy {
		fraction := dy - (dx >> 1)
		for x != x1 {
			if fraction >= 0 {
				y += stepY
				fraction -= dx
			}
			x += stepX
			fraction += dy
			p.Set(x, y, c)
		}
		return
	}

	fraction := dx - (dy >> 1)
	for y != y1 {
		if fraction >= 0 {
			x += stepX
			fraction -= dy
		}
		y += stepY
		fraction += dx
		p.Set(x, y, c)
	}
}

// HLine draws a horizontal line between x1 and x2 inclusive on row y.
func (p *Pixmap) HLine(x1, x2, y int, c RGBA32) {
	if y < 0 || y >= p.height {
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if x1 >= p.width || x2 < 0 {
		return
	}
	x1 = max(x1, 0)
	x2 = min(x2, p.width-1)
	for x := x1; x <= x2; x++ {
		p.SetUnchecked(x, y, c)
	}
}

// VLine draws a vertical line between y1 and y2 inclusive on column x.
func (p *Pixmap) VLine(y1, y2, x int, c RGBA32) {
	if x < 0 || x >= p.width {
		return
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	if y1 >= p.height || y2 < 0 {
		return
	}
	y1 = max(y1, 0)
	y2 = min(y2, p.height-1)
	for y := y1; y <= y2; y++ {
		p.SetUnchecked(x, y, c)
	}
}

// FillRect fills the w×h rectangle whose top-left corner is (x, y).
func (p *Pixmap) FillRect(x, y, w, h int, c RGBA32) {
	if w <= 0 || h <= 0 {
		return
	}
	for row := max(y, 0); row < min(y+h, p.height); row++ {
		p.HLine(x, x+w-1, row, c)
	}
}

// DrawRect outlines the w×h rectangle whose top-left corner is (x, y).
func (p *Pixmap) DrawRect(x, y, w, h int, c RGBA32) {
	if w <= 0 || h <= 0 {
		return
	}
	right, bottom := x+w-1, y+h-1
	p.HLine(x, right, y, c)
	p.HLine(x, right, bottom, c)
	p.VLine(y, bottom, x, c)
	p.VLine(y, bottom, right, c)
}
