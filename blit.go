package pixkit

import "math"

// BlitOptions selects how DrawRegion resamples and composites.
type BlitOptions struct {
	// Filtering selects bilinear instead of nearest-neighbor resampling when
	// the source and destination sizes differ. Ignored for same-size copies.
	Filtering bool

	// Blending composites source over destination with Blend for same-size
	// copies instead of overwriting.
	Blending bool
}

// Draw copies all of src to (x, y) without scaling.
func (p *Pixmap) Draw(src *Pixmap, x, y int, opts BlitOptions) {
	p.DrawRegion(src, x, y, 0, 0, src.width, src.height, src.width, src.height, opts)
}

// DrawRegion copies the srcWidth×srcHeight region of src at (srcX, srcY)
// into the dstWidth×dstHeight region of p at (x, y).
//
// Equal sizes copy pixel for pixel, blending when opts.Blending is set.
// Differing sizes resample with nearest-neighbor or, when opts.Filtering is
// set, bilinear interpolation. Both source and destination are clipped per
// axis; any zero size makes the call a no-op.
func (p *Pixmap) DrawRegion(src *Pixmap, x, y, srcX, srcY, srcWidth, srcHeight, dstWidth, dstHeight int, opts BlitOptions) {
	if srcWidth == 0 || srcHeight == 0 || dstWidth == 0 || dstHeight == 0 {
		return
	}
	if srcWidth < 0 || srcHeight < 0 || dstWidth < 0 || dstHeight < 0 {
		return
	}

	switch {
	case srcWidth == dstWidth && srcHeight == dstHeight:
		p.copyRegion(src, x, y, srcX, srcY, srcWidth, srcHeight, opts.Blending)
	case opts.Filtering:
		p.blitBilinear(src, x, y, srcX, srcY, srcWidth, srcHeight, dstWidth, dstHeight)
	default:
		p.blitNearest(src, x, y, srcX, srcY, srcWidth, srcHeight, dstWidth, dstHeight)
	}
}

// copyRegion walks source and destination rows and columns in lock-step.
func (p *Pixmap) copyRegion(src *Pixmap, x, y, srcX, srcY, width, height int, blending bool) {
	for i := 0; i < height; i++ {
		sy, dy := srcY+i, y+i
		if sy < 0 || dy < 0 {
			continue
		}
		if sy >= src.height || dy >= p.height {
			break
		}
		for j := 0; j < width; j++ {
			sx, dx := srcX+j, x+j
			if sx < 0 || dx < 0 {
				continue
			}
			if sx >= src.width || dx >= p.width {
				break
			}
			c := src.GetUnchecked(sx, sy)
			if blending {
				c = Blend(c, p.GetUnchecked(dx, dy))
			}
			p.SetUnchecked(dx, dy, c)
		}
	}
}

// blitNearest scales with 16.16 fixed-point source steps.
func (p *Pixmap) blitNearest(src *Pixmap, x, y, srcX, srcY, srcWidth, srcHeight, dstWidth, dstHeight int) {
	xRatio := (srcWidth<<16)/dstWidth + 1
	yRatio := (srcHeight<<16)/dstHeight + 1

	for i := 0; i < dstHeight; i++ {
		sy := ((i * yRatio) >> 16) + srcY
		dy := i + y
		if sy < 0 || dy < 0 {
			continue
		}
		if sy >= src.height || dy >= p.height {
			break
		}
		for j := 0; j < dstWidth; j++ {
			sx := ((j * xRatio) >> 16) + srcX
			dx := j + x
			if sx < 0 || dx < 0 {
				continue
			}
			if sx >= src.width || dx >= p.width {
				break
			}
			p.SetUnchecked(dx, dy, src.GetUnchecked(sx, sy))
		}
	}
}

// blitBilinear interpolates between each sampled pixel and its neighbors one
// step (rounded ratio, at least one pixel) to the right and below. Neighbors
// outside the source region fall back to the sampled pixel.
func (p *Pixmap) blitBilinear(src *Pixmap, x, y, srcX, srcY, srcWidth, srcHeight, dstWidth, dstHeight int) {
	xRatio := float32(srcWidth-1) / float32(dstWidth)
	yRatio := float32(srcHeight-1) / float32(dstHeight)
	rx := max(int(math.Round(float64(xRatio))), 1)
	ry := max(int(math.Round(float64(yRatio))), 1)
	right := min(srcX+srcWidth, src.width)
	bottom := min(srcY+srcHeight, src.height)

	for i := 0; i < dstHeight; i++ {
		fy := yRatio*float32(i) + float32(srcY)
		sy := int(math.Floor(float64(fy)))
		yDiff := fy - float32(sy)
		dy := i + y
		if sy < 0 || dy < 0 {
			continue
		}
		if sy >= src.height || dy >= p.height {
			break
		}
		for j := 0; j < dstWidth; j++ {
			fx := xRatio*float32(j) + float32(srcX)
			sx := int(math.Floor(float64(fx)))
			xDiff := fx - float32(sx)
			dx := j + x
			if sx < 0 || dx < 0 {
				continue
			}
			if sx >= src.width || dx >= p.width {
				break
			}

			hasRight := sx+rx < right
			hasBelow := sy+ry < bottom
			c1 := src.GetUnchecked(sx, sy)
			c2, c3, c4 := c1, c1, c1
			if hasRight {
				c2 = src.GetUnchecked(sx+rx, sy)
			}
			if hasBelow {
				c3 = src.GetUnchecked(sx, sy+ry)
			}
			if hasRight && hasBelow {
				c4 = src.GetUnchecked(sx+rx, sy+ry)
			}

			ta := (1 - xDiff) * (1 - yDiff)
			tb := xDiff * (1 - yDiff)
			tc := (1 - xDiff) * yDiff
			td := xDiff * yDiff

			r := lerpChannel(c1.R(), c2.R(), c3.R(), c4.R(), ta, tb, tc, td)
			g := lerpChannel(c1.G(), c2.G(), c3.G(), c4.G(), ta, tb, tc, td)
			b := lerpChannel(c1.B(), c2.B(), c3.B(), c4.B(), ta, tb, tc, td)
			a := lerpChannel(c1.A(), c2.A(), c3.A(), c4.A(), ta, tb, tc, td)
			p.SetUnchecked(dx, dy, PackRGBA(r, g, b, a))
		}
	}
}

func lerpChannel(c1, c2, c3, c4 uint8, ta, tb, tc, td float32) uint8 {
	v := float32(c1)*ta + float32(c2)*tb + float32(c3)*tc + float32(c4)*td
	return uint8(min(v+0.5, 255))
}

// Blend composites src over dst with integer arithmetic.
//
// A fully transparent src returns src itself and a fully transparent dst
// returns dst. Otherwise the destination alpha is reduced by the source
// coverage and each color channel becomes
// (dst*dstAlpha + src + srcAlpha) / (dstAlpha + srcAlpha). The flat
// +srcAlpha term differs from Porter-Duff "over"; it is kept so output
// matches existing assets pixel for pixel.
func Blend(src, dst RGBA32) RGBA32 {
	srcA := uint32(src & 0xff)
	if srcA == 0 {
		return src
	}
	dstA := uint32(dst & 0xff)
	if dstA == 0 {
		return dst
	}

	dstR := uint32(dst>>24) & 0xff
	dstG := uint32(dst>>16) & 0xff
	dstB := uint32(dst>>8) & 0xff

	dstA -= dstA * srcA / 255
	a := dstA + srcA
	dstR = (dstR*dstA + uint32(src>>24)&0xff + srcA) / a
	dstG = (dstG*dstA + uint32(src>>16)&0xff + srcA) / a
	dstB = (dstB*dstA + uint32(src>>8)&0xff + srcA) / a
	return RGBA32(dstR<<24 | dstG<<16 | dstB<<8 | a)
}
