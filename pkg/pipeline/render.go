package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/boxflow/pkg/render"
	"github.com/matzehuels/boxflow/pkg/scene"
)

// Render generates output artifacts for l in every format of opts.Formats.
// It does no caching; see [Runner.Render].
func Render(ctx context.Context, l scene.Layout, opts Options) (map[string][]byte, error) {
	renderOpts := []render.Option{render.WithScale(opts.Scale)}
	if opts.Labels {
		renderOpts = append(renderOpts, render.WithLabels())
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatJSON:
			data, err = scene.MarshalLayout(l)
		case FormatSVG:
			data = render.RenderSVG(l, renderOpts...)
		case FormatPNG:
			data, err = render.RenderPNG(l, renderOpts...)
		case FormatDOT:
			data = []byte(render.ToDOT(l))
		case FormatGraph:
			data, err = render.RenderGraphSVG(ctx, l)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
