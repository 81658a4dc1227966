package pixkit

import (
	"image/color"
	"math"
)

// RGBA32 is a packed pixel value laid out as R<<24 | G<<16 | B<<8 | A.
//
// Channels are straight (not premultiplied) 8-bit values. RGBA32 is both the
// wire format of Pixmap.Set/Get and the domain of Blend.
type RGBA32 uint32

// PackRGBA packs four channels into an RGBA32.
func PackRGBA(r, g, b, a uint8) RGBA32 {
	return RGBA32(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// R returns the red channel.
func (c RGBA32) R() uint8 { return uint8(c >> 24) }

// G returns the green channel.
func (c RGBA32) G() uint8 { return uint8(c >> 16) }

// B returns the blue channel.
func (c RGBA32) B() uint8 { return uint8(c >> 8) }

// A returns the alpha channel.
func (c RGBA32) A() uint8 { return uint8(c) }

// Unpack returns the four channels.
func (c RGBA32) Unpack() (r, g, b, a uint8) {
	return c.R(), c.G(), c.B(), c.A()
}

// RGBA implements color.Color. The result is alpha-premultiplied as the
// interface requires.
func (c RGBA32) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}.RGBA()
}

// Color converts the packed value to a float color.
func (c RGBA32) Color() Color {
	return Color{
		R: float32(c.R()) / 255,
		G: float32(c.G()) / 255,
		B: float32(c.B()) / 255,
		A: float32(c.A()) / 255,
	}
}

// RGBA32FromColor converts any color.Color to a straight-alpha RGBA32.
func RGBA32FromColor(c color.Color) RGBA32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return PackRGBA(n.R, n.G, n.B, n.A)
}

// Color is a straight-alpha color with float32 components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Common colors.
var (
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Transparent = Color{0, 0, 0, 0}
)

// RGB creates an opaque color.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA32 packs the color, rounding each component to the nearest byte.
func (c Color) RGBA32() RGBA32 {
	return PackRGBA(unitToByte(c.R), unitToByte(c.G), unitToByte(c.B), unitToByte(c.A))
}

// FloatBits packs the color into a single float32 for vertex streams.
//
// The bytes are laid out A<<24 | B<<16 | G<<8 | R, so that a little-endian
// reader sees R,G,B,A, and bit 24 is cleared so the value never encodes a
// NaN. The alpha channel therefore loses its lowest bit.
func (c Color) FloatBits() float32 {
	bits := uint32(unitToByte(c.A))<<24 |
		uint32(unitToByte(c.B))<<16 |
		uint32(unitToByte(c.G))<<8 |
		uint32(unitToByte(c.R))
	return math.Float32frombits(bits & 0xfeffffff)
}

// ColorFromFloatBits reverses FloatBits.
func ColorFromFloatBits(f float32) Color {
	bits := math.Float32bits(f)
	return Color{
		R: float32(bits&0xff) / 255,
		G: float32((bits>>8)&0xff) / 255,
		B: float32((bits>>16)&0xff) / 255,
		A: float32((bits>>24)&0xff) / 255,
	}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.RGBA32().RGBA()
}

// ColorFromColor converts a standard color.Color.
func ColorFromColor(c color.Color) Color {
	return RGBA32FromColor(c).Color()
}

// Hex parses "RGB", "RGBA", "RRGGBB" or "RRGGBBAA", with an optional leading
// '#'. Unrecognized lengths yield opaque black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3:
		r, g, b = parseHex(hex[0:1])*17, parseHex(hex[1:2])*17, parseHex(hex[2:3])*17
	case 4:
		r, g, b = parseHex(hex[0:1])*17, parseHex(hex[1:2])*17, parseHex(hex[2:3])*17
		a = parseHex(hex[3:4]) * 17
	case 6:
		r, g, b = parseHex(hex[0:2]), parseHex(hex[2:4]), parseHex(hex[4:6])
	case 8:
		r, g, b, a = parseHex(hex[0:2]), parseHex(hex[2:4]), parseHex(hex[4:6]), parseHex(hex[6:8])
	default:
		return Black
	}

	return PackRGBA(uint8(r), uint8(g), uint8(b), uint8(a)).Color()
}

// parseHex stops at the first non-hex digit.
func parseHex(s string) uint32 {
	var v uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		v *= 16
		switch {
		case '0' <= c && c <= '9':
			v += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			v += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			v += uint32(c - 'A' + 10)
		default:
			return v / 16
		}
	}
	return v
}

func unitToByte(x float32) uint8 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 255
	}
	return uint8(x*255 + 0.5)
}
