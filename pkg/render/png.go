package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/boxflow/pkg/scene"
)

// RenderPNG rasterizes l with the same palette as [RenderSVG]. The image is
// the root size times the scale (default 1), at least 1×1 pixel.
func RenderPNG(l scene.Layout, opts ...Option) ([]byte, error) {
	r := newRenderer(opts...)

	w := max(1, int(math.Ceil(l.Width*r.scale)))
	h := max(1, int(math.Ceil(l.Height*r.scale)))
	dc := gg.NewContext(w, h)
	dc.Scale(r.scale, r.scale)

	dc.SetHexColor(rootFill)
	dc.Clear()

	lineWidth := 1 / r.scale
	for _, n := range l.Nodes {
		dc.DrawRectangle(n.AbsX, n.AbsY, n.Width, n.Height)
		dc.SetHexColor(fillFor(n.Depth))
		dc.FillPreserve()
		dc.SetHexColor(strokeColor)
		dc.SetLineWidth(lineWidth)
		dc.Stroke()
	}

	if r.labels {
		dc.SetHexColor(textColor)
		for _, n := range l.Nodes {
			// The built-in face is 13px; anchor its top at the inset.
			dc.DrawStringAnchored(n.Label(), n.AbsX+labelInset, n.AbsY+labelInset, 0, 1)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
