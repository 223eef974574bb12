// Package render draws computed layout documents.
//
// Every renderer takes a [scene.Layout] and works only from the absolute
// positions stored in it, so a layout read back from disk or from a cache
// renders exactly like a freshly computed one.
//
//   - [RenderSVG]: one rectangle per node, hand-written SVG
//   - [RenderPNG]: the same picture rasterized with fogleman/gg
//   - [ToDOT]: the node hierarchy as a Graphviz digraph
//   - [RenderGraphSVG]: that digraph laid out and drawn by Graphviz
//
// Fill colors cycle by nesting depth. Labels are off by default; [WithLabels]
// draws each node's label (meta "label", else its id) in its top-left corner.
//
//	svg := render.RenderSVG(l, render.WithLabels())
//	png, err := render.RenderPNG(l, render.WithScale(2))
package render
