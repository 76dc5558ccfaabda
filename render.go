package iconforge

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// Render draws the icon at the given edge length and returns the image.
// The result is always size x size, and fully opaque when the background is.
func Render(size int, opts ...Option) (image.Image, error) {
	o := newOptions(opts)
	g, err := Layout(size, o.lines)
	if err != nil {
		return nil, err
	}
	return render(g, o)
}

func render(g Geometry, o options) (image.Image, error) {
	var ctxOpts []gg.ContextOption
	if o.renderer != nil {
		ctxOpts = append(ctxOpts, gg.WithRenderer(o.renderer))
	}

	dc := gg.NewContext(g.Size, g.Size, ctxOpts...)
	defer func() {
		_ = dc.Close()
	}()

	dc.ClearWithColor(o.background)
	fg := o.foreground
	dc.SetRGBA(fg.R, fg.G, fg.B, fg.A)

	// Strokes are whole-pixel boxes; filled, they keep hard edges.
	for _, r := range g.Strokes() {
		dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
		if err := dc.Fill(); err != nil {
			return nil, fmt.Errorf("iconforge: fill %v: %w", r, err)
		}
	}
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("iconforge: flush: %w", err)
	}

	Logger().Debug("icon rendered",
		"size", g.Size,
		"padding", g.Padding,
		"outline", g.OutlineWidth,
		"line_width", g.LineWidth,
		"line_spacing", g.LineSpacing,
		"lines", len(g.Lines))

	img := dc.Image()
	if o.background.A < 1 {
		return img, nil
	}
	return flatten(img, o.background), nil
}

// flatten composites img over an opaque background so every pixel ends up
// with full alpha and encoders can drop the alpha channel.
func flatten(img image.Image, bg gg.RGBA) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, image.NewUniform(bg.Color()), image.Point{}, draw.Src)
	draw.Draw(dst, b, img, b.Min, draw.Over)
	return dst
}
