// Package pixkit provides a software pixel raster engine for Go.
//
// # Overview
//
// pixkit keeps an RGBA8 image in CPU memory and draws into it directly:
// clipped pixel access, Bresenham lines, rectangles, fills, and region blits
// with nearest-neighbor or bilinear resampling and alpha blending. The
// resulting bytes are ready for upload as a [gputypes.TextureFormatRGBA8Unorm]
// texture.
//
// # Quick Start
//
//	import "github.com/gogpu/pixkit"
//
//	pm := pixkit.NewPixmap(256, 256)
//	pm.Fill(pixkit.PackRGBA(0, 0, 0, 255))
//	pm.DrawLine(0, 0, 255, 255, pixkit.PackRGBA(255, 0, 0, 255))
//	pm.FillRect(32, 32, 64, 64, pixkit.Hex("#3080ff").RGBA32())
//
//	sprite, _, err := pixkit.Decode(f)
//	if err != nil {
//		return err
//	}
//	pm.DrawRegion(sprite, 100, 100, 0, 0, sprite.Width(), sprite.Height(),
//		sprite.Width()*2, sprite.Height()*2, pixkit.BlitOptions{Filtering: true})
//
//	pm.SavePNG("out.png")
//
// # Pixel Format
//
// Pixels are stored row-major as R, G, B, A bytes with no row padding and
// straight (non-premultiplied) alpha. [RGBA32] packs one pixel as
// R<<24 | G<<16 | B<<8 | A. [Color] holds float channels in [0, 1] and can be
// packed into a single float32 vertex attribute with [Color.FloatBits].
//
// # Clipping
//
// Every drawing operation clips silently against the pixmap bounds.
// Out-of-range coordinates are never an error and never wrap into an
// adjacent row.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Text layout in the text sub-package uses a y-up space instead; see its
// package documentation.
//
// # Sub-packages
//
//   - buffer: growable int32/float32/float64 lists used for vertex streams
//   - text: glyph atlases, glyph layout and the font vertex cache
//   - cache: reference-counted asset cache for fonts and atlases
//
// # Thread Safety
//
// A Pixmap is not safe for concurrent use. [SetLogger] and [Logger] are.
package pixkit
