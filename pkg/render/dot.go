package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/boxflow/pkg/scene"
)

// rootID names the root in DOT output; layout documents leave it implicit.
const rootID = "__root__"

// ToDOT converts the node hierarchy of l to Graphviz DOT. Each node is labeled
// with its label and size; boxes are drawn filled, leaves plain.
func ToDOT(l scene.Layout) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.25;\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  %q [label=%q, style=\"rounded,bold\"];\n", rootID, fmt.Sprintf("root\n%gx%g", l.Width, l.Height))
	for _, n := range l.Nodes {
		label := fmt.Sprintf("%s\n%gx%g", n.Label(), n.Width, n.Height)
		if n.IsBox() {
			fmt.Fprintf(&buf, "  %q [label=%q, style=\"rounded,filled\", fillcolor=%q];\n", n.ID, label, fillFor(n.Depth))
		} else {
			fmt.Fprintf(&buf, "  %q [label=%q];\n", n.ID, label)
		}
	}

	buf.WriteString("\n")
	for _, n := range l.Nodes {
		parent := n.Parent
		if parent == "" {
			parent = rootID
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", parent, n.ID)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderGraphSVG lays out [ToDOT] with Graphviz and returns the SVG.
func RenderGraphSVG(ctx context.Context, l scene.Layout) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(ToDOT(l)))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized svg tag with one whose
// width and height match the viewBox.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
