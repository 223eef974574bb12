package render

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/boxflow/pkg/scene"
)

// Option configures the SVG and PNG renderers.
type Option func(*renderer)

type renderer struct {
	scale  float64
	labels bool
}

// WithScale sets the PNG resolution multiplier. Values ≤ 0 are ignored.
func WithScale(s float64) Option {
	return func(r *renderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// WithLabels draws node labels.
func WithLabels() Option { return func(r *renderer) { r.labels = true } }

func newRenderer(opts ...Option) renderer {
	r := renderer{scale: 1}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Palette: one fill per nesting depth, repeating.
var (
	fills = []string{"#dbeafe", "#dcfce7", "#fef3c7", "#fce7f3", "#ede9fe", "#e0f2fe"}

	rootFill    = "#ffffff"
	strokeColor = "#334155"
	textColor   = "#0f172a"
)

const (
	labelSize  = 12.0
	labelInset = 4.0
)

func fillFor(depth int) string {
	if depth <= 0 {
		return fills[0]
	}
	return fills[(depth-1)%len(fills)]
}

// RenderSVG draws l as an SVG document sized to the root. Nodes are drawn in
// document order so children paint over their parents.
func RenderSVG(l scene.Layout, opts ...Option) []byte {
	r := newRenderer(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.Width, l.Height, l.Width, l.Height)
	fmt.Fprintf(&buf, `  <rect class="root" x="0" y="0" width="%.2f" height="%.2f" fill="%s" stroke="%s"/>`+"\n",
		l.Width, l.Height, rootFill, strokeColor)

	for _, n := range l.Nodes {
		buf.WriteString(`  <rect class="`)
		buf.WriteString(n.Kind)
		buf.WriteString(`" id="`)
		writeEscaped(&buf, "node-"+n.ID)
		fmt.Fprintf(&buf, `" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s"/>`+"\n",
			n.AbsX, n.AbsY, n.Width, n.Height, fillFor(n.Depth), strokeColor)
	}

	if r.labels {
		for _, n := range l.Nodes {
			fmt.Fprintf(&buf, `  <text x="%.2f" y="%.2f" font-family="sans-serif" font-size="%.0f" fill="%s">`,
				n.AbsX+labelInset, n.AbsY+labelInset+labelSize, labelSize, textColor)
			writeEscaped(&buf, n.Label())
			buf.WriteString("</text>\n")
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func writeEscaped(buf *bytes.Buffer, s string) {
	_ = xml.EscapeText(buf, []byte(s))
}
