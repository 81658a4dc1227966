package pixkit

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	// Decoders registered for Decode.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	c := p.Get(x, y)
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// ToImage copies the pixmap into an *image.NRGBA. Both share the same byte
// layout, so the copy is exact.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage converts any image into a new pixmap with straight alpha.
func FromImage(img image.Image) *Pixmap {
	b := img.Bounds()
	pm := NewPixmap(b.Dx(), b.Dy())
	if pm.width == 0 || pm.height == 0 {
		return pm
	}

	if n, ok := img.(*image.NRGBA); ok {
		rowBytes := pm.width * 4
		for y := 0; y < pm.height; y++ {
			start := n.PixOffset(b.Min.X, b.Min.Y+y)
			copy(pm.data[y*rowBytes:(y+1)*rowBytes], n.Pix[start:start+rowBytes])
		}
		return pm
	}

	dst := &image.NRGBA{Pix: pm.data, Stride: pm.width * 4, Rect: image.Rect(0, 0, pm.width, pm.height)}
	xdraw.Copy(dst, image.Point{}, img, b, xdraw.Src, nil)
	return pm
}

// Decode reads an image in any registered format (PNG, JPEG, GIF, BMP, TIFF,
// WebP) and returns it as a pixmap together with the format name.
func Decode(r io.Reader) (*Pixmap, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("pixkit: decode: %w", err)
	}
	pm := FromImage(img)
	Logger().Debug("pixkit: decoded image", "format", format, "width", pm.width, "height", pm.height)
	return pm, format, nil
}

// EncodePNG writes the pixmap as PNG.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.ToImage())
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := p.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
