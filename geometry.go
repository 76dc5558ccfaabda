package iconforge

import (
	"fmt"
	"image"
)

// DefaultLineCount is the number of form-field lines drawn inside the frame.
const DefaultLineCount = 3

// Segment is a horizontal line from X0 to X1 (both inclusive) at row Y.
type Segment struct {
	X0, X1, Y int
}

// Geometry describes where the icon's shapes go on a Size x Size canvas.
// All values are derived from Size with integer (floor) division.
type Geometry struct {
	Size         int
	Padding      int
	OutlineWidth int
	LineWidth    int
	LineSpacing  int

	// FrameMin and FrameMax are the inclusive corners of the frame outline.
	FrameMin image.Point
	FrameMax image.Point

	Lines []Segment
}

// Layout computes the geometry of an icon with the given edge length and
// number of interior lines.
//
// The frame spans (S/4, S/4) to (S-S/4, S-S/4) with stroke width
// max(2, S/16). Lines are spaced (S-2P)/(n+1) apart, inset S/8 from the
// frame on each side, with stroke width max(1, S/32).
func Layout(size, lines int) (Geometry, error) {
	if size <= 0 {
		return Geometry{}, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if lines < 0 {
		return Geometry{}, fmt.Errorf("%w: %d", ErrInvalidLineCount, lines)
	}

	pad := size / 4
	g := Geometry{
		Size:         size,
		Padding:      pad,
		OutlineWidth: max(2, size/16),
		LineWidth:    max(1, size/32),
		LineSpacing:  (size - 2*pad) / (lines + 1),
		FrameMin:     image.Pt(pad, pad),
		FrameMax:     image.Pt(size-pad, size-pad),
		Lines:        make([]Segment, 0, lines),
	}

	inset := size / 8
	for i := 1; i <= lines; i++ {
		g.Lines = append(g.Lines, Segment{
			X0: pad + inset,
			X1: size - pad - inset,
			Y:  pad + i*g.LineSpacing,
		})
	}
	return g, nil
}

// Bounds returns the canvas rectangle.
func (g Geometry) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.Size, g.Size)
}

// Frame returns the pixel boxes covered by the frame outline. The stroke
// grows inward from the frame's outer edge; when it would meet itself the
// frame is a single solid box.
func (g Geometry) Frame() []image.Rectangle {
	outer := image.Rectangle{Min: g.FrameMin, Max: g.FrameMax.Add(image.Pt(1, 1))}
	w := g.OutlineWidth
	if outer.Dx() <= 2*w || outer.Dy() <= 2*w {
		return clipBoxes(g.Bounds(), outer)
	}

	x0, y0, x1, y1 := outer.Min.X, outer.Min.Y, outer.Max.X, outer.Max.Y
	return clipBoxes(g.Bounds(),
		image.Rect(x0, y0, x1, y0+w),     // top
		image.Rect(x0, y1-w, x1, y1),     // bottom
		image.Rect(x0, y0+w, x0+w, y1-w), // left
		image.Rect(x1-w, y0+w, x1, y1-w), // right
	)
}

// LineBoxes returns one pixel box per interior line, each centred on its
// segment's row.
func (g Geometry) LineBoxes() []image.Rectangle {
	boxes := make([]image.Rectangle, 0, len(g.Lines))
	for _, s := range g.Lines {
		top := s.Y - g.LineWidth/2
		boxes = append(boxes, image.Rect(s.X0, top, s.X1+1, top+g.LineWidth))
	}
	return clipBoxes(g.Bounds(), boxes...)
}

// Strokes returns every pixel box painted in the foreground colour: the
// frame first, then the lines.
func (g Geometry) Strokes() []image.Rectangle {
	return append(g.Frame(), g.LineBoxes()...)
}

func clipBoxes(bounds image.Rectangle, boxes ...image.Rectangle) []image.Rectangle {
	out := make([]image.Rectangle, 0, len(boxes))
	for _, b := range boxes {
		b = b.Intersect(bounds)
		if b.Empty() {
			continue
		}
		out = append(out, b)
	}
	return out
}
