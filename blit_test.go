package pixkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// numbered fills a pixmap with distinct opaque pixels so copies can be traced
// back to their source coordinates.
func numbered(w, h int) *Pixmap {
	pm := NewPixmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pm.Set(x, y, PackRGBA(uint8(x+1), uint8(y+1), 0x40, 0xff))
		}
	}
	return pm
}

func TestDrawRegion_SameSizeCopy(t *testing.T) {
	src := numbered(4, 3)
	dst := NewPixmap(6, 5)
	dst.DrawRegion(src, 1, 2, 1, 0, 3, 3, 3, 3, BlitOptions{})

	for y := 0; y < 5; y++ {
		for x := 0; x < 6; x++ {
			want := RGBA32(0)
			if x >= 1 && x < 4 && y >= 2 && y < 5 {
				want = src.Get(x, y-2)
			}
			assert.Equal(t, want, dst.Get(x, y), "dst(%d,%d)", x, y)
		}
	}
}

func TestDrawRegion_ClipsAllSides(t *testing.T) {
	tests := []struct {
		name   string
		x, y   int
		copied map[[2]int][2]int // dst -> src
	}{
		{
			name: "top left overhang",
			x:    -1, y: -1,
			copied: map[[2]int][2]int{{0, 0}: {1, 1}, {1, 0}: {2, 1}, {0, 1}: {1, 2}, {1, 1}: {2, 2}},
		},
		{
			name: "bottom right overhang",
			x:    2, y: 2,
			copied: map[[2]int][2]int{{2, 2}: {0, 0}},
		},
		{
			name:   "fully outside",
			x:      5, y: -7,
			copied: map[[2]int][2]int{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := numbered(3, 3)
			dst := NewPixmap(3, 3)
			dst.Draw(src, tt.x, tt.y, BlitOptions{})

			for y := 0; y < 3; y++ {
				for x := 0; x < 3; x++ {
					want := RGBA32(0)
					if s, ok := tt.copied[[2]int{x, y}]; ok {
						want = src.Get(s[0], s[1])
					}
					assert.Equal(t, want, dst.Get(x, y), "dst(%d,%d)", x, y)
				}
			}
		})
	}
}

func TestDrawRegion_SourceOriginOutside(t *testing.T) {
	src := numbered(2, 2)
	dst := NewPixmap(3, 3)
	dst.DrawRegion(src, 0, 0, -1, -1, 3, 3, 3, 3, BlitOptions{})

	// Pixels mapped from negative source coordinates are skipped.
	assert.Zero(t, dst.Get(0, 0))
	assert.Zero(t, dst.Get(1, 0))
	assert.Zero(t, dst.Get(0, 1))
	assert.Equal(t, src.Get(0, 0), dst.Get(1, 1))
	assert.Equal(t, src.Get(1, 1), dst.Get(2, 2))
}

func TestDrawRegion_ZeroSizeNoop(t *testing.T) {
	src := numbered(2, 2)
	sizes := [][4]int{{0, 2, 2, 2}, {2, 0, 2, 2}, {2, 2, 0, 2}, {2, 2, 2, 0}}
	for _, s := range sizes {
		for _, opts := range []BlitOptions{{}, {Filtering: true}, {Blending: true}} {
			dst := NewPixmap(4, 4)
			dst.DrawRegion(src, 0, 0, 0, 0, s[0], s[1], s[2], s[3], opts)
			assert.Empty(t, setPixels(dst), "sizes %v opts %+v", s, opts)
		}
	}
}

func TestDrawRegion_Blending(t *testing.T) {
	src := NewPixmap(2, 1)
	src.Set(0, 0, 0x0a141e80)
	src.Set(1, 0, 0x11223300)
	dst := NewPixmap(2, 1)
	dst.Fill(0x64788cff)

	dst.Draw(src, 0, 0, BlitOptions{Blending: true})

	assert.Equal(t, RGBA32(0x323c46ff), dst.Get(0, 0))
	// A transparent source pixel short-circuits to the source value.
	assert.Equal(t, RGBA32(0x11223300), dst.Get(1, 0))
}

func TestDrawRegion_NearestUpscale(t *testing.T) {
	src := NewPixmap(2, 2)
	src.Set(0, 0, red)
	src.Set(1, 0, green)
	src.Set(0, 1, blue)
	src.Set(1, 1, white)

	dst := NewPixmap(4, 4)
	dst.DrawRegion(src, 0, 0, 0, 0, 2, 2, 4, 4, BlitOptions{})

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, src.Get(x/2, y/2), dst.Get(x, y), "dst(%d,%d)", x, y)
		}
	}
}

func TestDrawRegion_NearestDownscaleClipped(t *testing.T) {
	src := numbered(4, 4)
	dst := NewPixmap(2, 2)
	dst.DrawRegion(src, 1, 0, 0, 0, 4, 4, 2, 2, BlitOptions{})

	assert.Zero(t, dst.Get(0, 0), "column left of the blit was written")
	assert.Zero(t, dst.Get(0, 1), "column left of the blit was written")
	assert.Equal(t, src.Get(0, 2), dst.Get(1, 1))
}

func TestDrawRegion_BilinearUniform(t *testing.T) {
	const c RGBA32 = 0xc8643296
	src := NewPixmap(4, 4)
	src.Fill(c)
	dst := NewPixmap(9, 7)
	dst.DrawRegion(src, 0, 0, 0, 0, 4, 4, 9, 7, BlitOptions{Filtering: true})

	for y := 0; y < 7; y++ {
		for x := 0; x < 9; x++ {
			require.Equal(t, c, dst.Get(x, y), "dst(%d,%d)", x, y)
		}
	}
}

func TestDrawRegion_BilinearGradient(t *testing.T) {
	src := NewPixmap(2, 1)
	src.Set(0, 0, PackRGBA(0, 0, 0, 255))
	src.Set(1, 0, PackRGBA(200, 0, 0, 255))

	dst := NewPixmap(4, 1)
	dst.DrawRegion(src, 0, 0, 0, 0, 2, 1, 4, 1, BlitOptions{Filtering: true})

	for x, w := range []uint8{0, 50, 100, 150} {
		got := dst.Get(x, 0)
		assert.Equal(t, w, got.R(), "dst(%d,0) red", x)
		assert.Equal(t, uint8(255), got.A(), "dst(%d,0) alpha", x)
	}
}

func TestDrawRegion_BilinearClipped(t *testing.T) {
	src := numbered(3, 3)
	dst := NewPixmap(4, 4)
	dst.DrawRegion(src, -2, 2, 0, 0, 3, 3, 6, 6, BlitOptions{Filtering: true})

	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			require.Zero(t, dst.Get(x, y), "row %d above the blit was written", y)
		}
	}
	assert.NotZero(t, dst.Get(0, 3), "visible part of the blit")
}

func TestBlend(t *testing.T) {
	tests := []struct {
		name     string
		src, dst RGBA32
		want     RGBA32
	}{
		{"transparent source returns source", 0x12345600, 0xffffffff, 0x12345600},
		{"transparent destination returns destination", 0xff0000ff, 0xabcdef00, 0xabcdef00},
		{"half over opaque", 0x0a141e80, 0x64788cff, 0x323c46ff},
		{"opaque over opaque", 0xffffffff, 0x000000ff, 0x020202ff},
		{"faint over faint", 0xff000001, 0x00ff0001, 0x80800002},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Blend(tt.src, tt.dst),
				"Blend(%#08x, %#08x)", uint32(tt.src), uint32(tt.dst))
		})
	}
}
