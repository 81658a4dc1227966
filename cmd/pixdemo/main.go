// Command pixdemo renders a demo image with the pixkit raster engine and
// the text vertex cache.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/pixkit"
	"github.com/gogpu/pixkit/text"
)

func main() {
	var (
		width   = flag.Int("width", 640, "image width")
		height  = flag.Int("height", 400, "image height")
		output  = flag.String("output", "demo.png", "output file")
		sprite  = flag.String("sprite", "", "optional image to draw scaled (png, jpeg, gif, bmp, tiff, webp)")
		message = flag.String("text", "The quick brown fox jumps over the lazy dog.", "text to render")
		verbose = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		pixkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	pm := pixkit.NewPixmap(*width, *height)
	drawBackground(pm)
	drawShapes(pm)

	if *sprite != "" {
		if err := drawSprite(pm, *sprite); err != nil {
			log.Fatalf("Failed to draw sprite: %v", err)
		}
	}

	lib := text.NewFontLibrary(2)
	if err := lib.Register("goregular", goregular.TTF); err != nil {
		log.Fatalf("Failed to register font: %v", err)
	}
	if err := drawText(pm, lib, *message); err != nil {
		log.Fatalf("Failed to draw text: %v", err)
	}

	if err := pm.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

func drawBackground(pm *pixkit.Pixmap) {
	h := pm.Height()
	for y := 0; y < h; y++ {
		t := float32(y) / float32(max(h-1, 1))
		c := pixkit.Color{R: 0.1 + t*0.2, G: 0.15 + t*0.2, B: 0.3 + t*0.3, A: 1}
		pm.HLine(0, pm.Width()-1, y, c.RGBA32())
	}
}

func drawShapes(pm *pixkit.Pixmap) {
	pm.FillRect(20, 20, 120, 80, pixkit.Hex("#ff9900").RGBA32())
	pm.DrawRect(160, 20, 120, 80, pixkit.White.RGBA32())

	// A fan of lines from a common center.
	cx, cy := 380, 60
	for i := 0; i < 16; i++ {
		a := float64(i) * math.Pi / 8
		x := cx + int(45*math.Cos(a))
		y := cy + int(45*math.Sin(a))
		pm.DrawLine(cx, cy, x, y, pixkit.Hex("#7fdfff").RGBA32())
	}

	// A translucent square blended over the filled rectangle.
	glass := pixkit.NewPixmap(60, 60)
	glass.Fill(pixkit.PackRGBA(40, 200, 120, 128))
	pm.Draw(glass, 100, 50, pixkit.BlitOptions{Blending: true})
}

func drawSprite(pm *pixkit.Pixmap, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	img, _, err := pixkit.Decode(f)
	if err != nil {
		return err
	}
	pm.DrawRegion(img, pm.Width()-170, 20, 0, 0, img.Width(), img.Height(), 150, 150,
		pixkit.BlitOptions{Filtering: true})
	return nil
}

// drawText lays out message twice, small and wrapped and large and
// centered, and copies each glyph quad from the atlas into pm.
func drawText(pm *pixkit.Pixmap, lib *text.FontLibrary, message string) error {
	h, err := lib.Acquire("goregular", 18)
	if err != nil {
		return err
	}
	defer lib.Release(h)
	font := h.Value()

	var cache text.FontCache

	body := text.DefaultTextOptions()
	body.Color = pixkit.White
	body.TargetWidth = float32(pm.Width() - 40)
	body.Wrap = text.WrapWordChar
	cache.AddText(font, message, 20, float32(pm.Height()-210), body)

	title := body
	title.Scale = 2
	title.Align = text.AlignCenter
	title.Wrap = text.WrapNone
	cache.AddText(font, "pixkit", 20, float32(pm.Height()-130), title)

	rasterizeQuads(pm, font.Atlas(), cache.Vertices())
	return nil
}

// rasterizeQuads draws unrotated glyph quads from a y-up vertex stream into
// pm, flipping y. Scaled quads are resampled into a scratch pixmap first so
// they can still be blended.
func rasterizeQuads(pm, atlas *pixkit.Pixmap, v []float32) {
	aw, ah := float32(atlas.Width()), float32(atlas.Height())
	for q := 0; q+text.FloatsPerGlyph <= len(v); q += text.FloatsPerGlyph {
		bl := v[q : q+text.VertexSize]
		tr := v[q+2*text.VertexSize : q+3*text.VertexSize]

		x := round(bl[0])
		y := pm.Height() - round(tr[1])
		w := round(tr[0]) - x
		hgt := round(tr[1]) - round(bl[1])

		sx, sy := round(bl[3]*aw), round(tr[4]*ah)
		sw, sh := round(tr[3]*aw)-sx, round(bl[4]*ah)-sy
		if w <= 0 || hgt <= 0 || sw <= 0 || sh <= 0 {
			continue
		}

		if w == sw && hgt == sh {
			pm.DrawRegion(atlas, x, y, sx, sy, sw, sh, w, hgt, pixkit.BlitOptions{Blending: true})
			continue
		}
		scratch := pixkit.NewPixmap(w, hgt)
		scratch.DrawRegion(atlas, 0, 0, sx, sy, sw, sh, w, hgt, pixkit.BlitOptions{Filtering: true})
		pm.Draw(scratch, x, y, pixkit.BlitOptions{Blending: true})
	}
}

func round(f float32) int {
	return int(math.Round(float64(f)))
}
